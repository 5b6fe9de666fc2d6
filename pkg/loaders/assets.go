package loaders

import (
	"os"
	"path/filepath"
)

// ImagePath resolves a texture asset reference. Absolute paths pass
// through untouched; relative paths are prepended with $RTW_IMAGES when
// set, falling back to the conventional ./assets directory.
func ImagePath(name string) string { return resolveAsset("RTW_IMAGES", name) }

// ObjPath resolves a mesh asset reference the same way, via $RTW_OBJS.
func ObjPath(name string) string { return resolveAsset("RTW_OBJS", name) }

func resolveAsset(envVar, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if base := os.Getenv(envVar); base != "" {
		return filepath.Join(base, name)
	}
	return filepath.Join("assets", name)
}
