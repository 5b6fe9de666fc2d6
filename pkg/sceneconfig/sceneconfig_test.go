package sceneconfig

import (
	"strings"
	"testing"
)

func TestDecode_ValidDocument(t *testing.T) {
	doc := `{
		"lookFrom": [0, 1, 3],
		"lookAt": [0, 0, 0],
		"width": 400,
		"aspectRatio": 1.777,
		"vfov": 40,
		"samplesPerPixel": 50
	}`
	cfg, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if cfg.Width != 400 {
		t.Errorf("Width = %d, want 400", cfg.Width)
	}
	if cfg.Up.Y != 1 {
		t.Errorf("Up defaulted to %v, want (0,1,0)", cfg.Up)
	}
}

func TestDecode_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero width", `{"width":0,"aspectRatio":1,"vfov":40,"samplesPerPixel":10}`},
		{"negative aspect ratio", `{"width":10,"aspectRatio":-1,"vfov":40,"samplesPerPixel":10}`},
		{"vfov out of range", `{"width":10,"aspectRatio":1,"vfov":200,"samplesPerPixel":10}`},
		{"zero samples", `{"width":10,"aspectRatio":1,"vfov":40,"samplesPerPixel":0}`},
		{"negative defocus angle", `{"width":10,"aspectRatio":1,"vfov":40,"samplesPerPixel":10,"defocusAngle":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("expected Decode to reject %s", tt.name)
			}
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("not json")); err == nil {
		t.Error("expected Decode to fail on malformed JSON")
	}
}
