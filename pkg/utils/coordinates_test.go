package utils

import "testing"

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name           string
		worldX, worldY float64
		wantX, wantY   float64
	}{
		{"origin is viewport center", 0, 0, 299, 338},
		{"top left corner", -299, 338, 0, 0},
		{"bottom right corner", 299, -338, 598, 676},
		{"player spawn", 0, -314.25, 299, 652.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.worldX, tt.worldY, 598, 676)
			if sx != tt.wantX || sy != tt.wantY {
				t.Errorf("WorldToScreen(%f, %f) = (%f, %f), want (%f, %f)",
					tt.worldX, tt.worldY, sx, sy, tt.wantX, tt.wantY)
			}
		})
	}
}
