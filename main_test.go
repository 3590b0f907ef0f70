package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneName, 64, 64)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, but got none", tt.sceneName)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for %q, got %T", tt.sceneName, sc)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if sc == nil {
				t.Fatal("Expected a scene")
			}
			if sc.SamplingConfig.Width != 64 || sc.SamplingConfig.Height != 64 {
				t.Errorf("Expected 64x64 config, got %dx%d", sc.SamplingConfig.Width, sc.SamplingConfig.Height)
			}
			if err := sc.Preprocess(); err != nil {
				t.Errorf("Scene failed preprocessing: %v", err)
			}
		})
	}
}
