package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func initTestFS(t *testing.T) {
	t.Helper()
	assets := fstest.MapFS{
		"assets/config/resources.yaml":  {Data: []byte("version: \"1.0\"\n")},
		"assets/images/player_a_01.png": {Data: []byte("png")},
	}
	data := fstest.MapFS{
		"data/game.yaml": {Data: []byte("baseSpeed: 500\n")},
	}
	Init(assets, data)
	t.Cleanup(Reset)
}

func TestNotInitialized(t *testing.T) {
	Reset()

	if IsInitialized() {
		t.Fatal("expected IsInitialized() to be false after Reset()")
	}
	if _, err := ReadFile("assets/config/resources.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile: expected ErrNotInitialized, got %v", err)
	}
	if _, err := Open("data/game.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open: expected ErrNotInitialized, got %v", err)
	}
	if _, err := Glob("assets/*"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob: expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/game.yaml") {
		t.Error("nothing exists before Init()")
	}
}

func TestReadFile(t *testing.T) {
	initTestFS(t)

	tests := []struct {
		name     string
		path     string
		expected string
		wantErr  bool
	}{
		{"assets path", "assets/config/resources.yaml", "version: \"1.0\"\n", false},
		{"data path", "data/game.yaml", "baseSpeed: 500\n", false},
		{"dot slash prefix", "./data/game.yaml", "baseSpeed: 500\n", false},
		{"unknown prefix", "images/player.png", "", true},
		{"missing file", "assets/missing.png", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected an error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", tt.path, err)
			}
			if string(data) != tt.expected {
				t.Errorf("ReadFile(%s) = %q, want %q", tt.path, data, tt.expected)
			}
		})
	}
}

func TestExistsGlobReadDir(t *testing.T) {
	initTestFS(t)

	if !Exists("assets/images/player_a_01.png") {
		t.Error("player image should exist")
	}
	if Exists("assets/images/enemy_a_01.png") {
		t.Error("enemy image should not exist")
	}

	matches, err := Glob("assets/images/*.png")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 1 || matches[0] != "assets/images/player_a_01.png" {
		t.Errorf("unexpected glob result %v", matches)
	}

	entries, err := ReadDir("data")
	if err == nil {
		t.Errorf("bare directory name has no known prefix, got %d entries", len(entries))
	}
	entries, err = ReadDir("assets/config")
	if err != nil || len(entries) != 1 {
		t.Errorf("ReadDir(assets/config) = %d entries, %v", len(entries), err)
	}
}
