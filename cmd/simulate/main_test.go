package main

import "testing"

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		name    string
		tps     int
		frames  int
		wantErr bool
	}{
		{"defaults", 60, 3600, false},
		{"zero frames", 60, 0, false},
		{"zero tps", 0, 3600, true},
		{"negative tps", -30, 3600, true},
		{"negative frames", 60, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFlags(tt.tps, tt.frames)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFlags(%d, %d) error = %v, wantErr %v", tt.tps, tt.frames, err, tt.wantErr)
			}
		})
	}
}
