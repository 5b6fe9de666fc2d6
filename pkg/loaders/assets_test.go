package loaders

import (
	"path/filepath"
	"testing"
)

func TestImagePath_RelativeUsesEnvBaseDir(t *testing.T) {
	t.Setenv("RTW_IMAGES", filepath.Join("some", "base"))
	got := ImagePath("tex.png")
	want := filepath.Join("some", "base", "tex.png")
	if got != want {
		t.Errorf("ImagePath = %q, want %q", got, want)
	}
}

func TestImagePath_RelativeFallsBackToAssetsDir(t *testing.T) {
	t.Setenv("RTW_IMAGES", "")
	got := ImagePath("tex.png")
	want := filepath.Join("assets", "tex.png")
	if got != want {
		t.Errorf("ImagePath = %q, want %q", got, want)
	}
}

func TestObjPath_AbsolutePassesThrough(t *testing.T) {
	t.Setenv("RTW_OBJS", filepath.Join("some", "base"))
	abs, err := filepath.Abs("mesh.obj")
	if err != nil {
		t.Fatal(err)
	}
	if got := ObjPath(abs); got != abs {
		t.Errorf("ObjPath(%q) = %q, want the absolute path unchanged", abs, got)
	}
}
