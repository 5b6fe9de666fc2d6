// Wavefront OBJ/MTL loading. This file owns tokenizing the text format and
// resolving MTL material fields into core.Material values;
// pkg/primitives.NewMesh turns the resolved faces into a BVH.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/primitives"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// LoadOBJ parses path (and its referenced .mtl, if any `mtllib` directive is
// present) and returns the resolved triangular faces ready for
// primitives.NewMesh. Faces without an assigned material fall back to a
// mid-grey Lambertian.
func LoadOBJ(path string) ([]primitives.Face, error) {
	path = ObjPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		positions []vec3.Point3
		normals   []vec3.UnitVec3
		uvs       [][2]float64
		materials = map[string]core.Material{}
		current   core.Material = material.NewLambertian(vec3.Color{X: 0.5, Y: 0.5, Z: 0.5})
		faces     []primitives.Face
	)

	dir := filepath.Dir(path)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: %w", path, lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: %w", path, lineNo, err)
			}
			unit, ok := vec3.Normalize(n)
			if !ok {
				continue // degenerate normal; faces using it fall back to the flat normal
			}
			normals = append(normals, unit)
		case "vt":
			u, v, err := parseUV(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: %w", path, lineNo, err)
			}
			uvs = append(uvs, [2]float64{u, v})
		case "mtllib":
			mtlPath := filepath.Join(dir, fields[1])
			parsed, err := LoadMTL(mtlPath)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: %w", path, lineNo, err)
			}
			materials = parsed
		case "usemtl":
			if m, ok := materials[fields[1]]; ok {
				current = m
			}
		case "f":
			face, err := parseOBJFace(fields[1:], positions, normals, uvs, current)
			if err != nil {
				return nil, fmt.Errorf("loaders: %s:%d: %w", path, lineNo, err)
			}
			faces = append(faces, face...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read %s: %w", path, err)
	}
	return faces, nil
}

func parseVec3(fields []string) (vec3.Vec3, error) {
	if len(fields) < 3 {
		return vec3.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float64
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vec3.Vec3{}, fmt.Errorf("parse component %d: %w", i, err)
		}
		v[i] = f
	}
	return vec3.New(v[0], v[1], v[2]), nil
}

func parseUV(fields []string) (float64, float64, error) {
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return u, v, nil
}

// objVertex is one corner reference of an "f" line: v/vt/vn, 1-based,
// vt/vn optional (0 means absent).
type objVertex struct {
	v, vt, vn int
}

func parseOBJVertex(tok string) (objVertex, error) {
	parts := strings.Split(tok, "/")
	idx := make([]int, 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		if parts[i] == "" {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return objVertex{}, fmt.Errorf("parse face index %q: %w", tok, err)
		}
		idx[i] = n
	}
	return objVertex{v: idx[0], vt: idx[1], vn: idx[2]}, nil
}

// parseOBJFace triangulates an "f" line with a triangle fan (valid for the
// convex polygons OBJ exporters emit) and resolves each corner's position,
// normal, and UV.
func parseOBJFace(tokens []string, positions []vec3.Point3, normals []vec3.UnitVec3, uvs [][2]float64, mat core.Material) ([]primitives.Face, error) {
	if len(tokens) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(tokens))
	}
	corners := make([]objVertex, len(tokens))
	for i, tok := range tokens {
		ov, err := parseOBJVertex(tok)
		if err != nil {
			return nil, err
		}
		corners[i] = ov
	}

	resolve := func(ov objVertex) (vec3.Point3, vec3.UnitVec3, bool, [2]float64, bool, error) {
		pi := objIndex(ov.v, len(positions))
		if pi < 0 || pi >= len(positions) {
			return vec3.Point3{}, vec3.UnitVec3{}, false, [2]float64{}, false, fmt.Errorf("vertex index %d out of range", ov.v)
		}
		p := positions[pi]
		var n vec3.UnitVec3
		hasN := false
		if ov.vn != 0 {
			ni := objIndex(ov.vn, len(normals))
			if ni >= 0 && ni < len(normals) {
				n, hasN = normals[ni], true
			}
		}
		var uv [2]float64
		hasUV := false
		if ov.vt != 0 {
			ui := objIndex(ov.vt, len(uvs))
			if ui >= 0 && ui < len(uvs) {
				uv, hasUV = uvs[ui], true
			}
		}
		return p, n, hasN, uv, hasUV, nil
	}

	var faces []primitives.Face
	p0, n0, hasN0, uv0, hasUV0, err := resolve(corners[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i+1 < len(corners); i++ {
		p1, n1, hasN1, uv1, hasUV1, err := resolve(corners[i])
		if err != nil {
			return nil, err
		}
		p2, n2, hasN2, uv2, hasUV2, err := resolve(corners[i+1])
		if err != nil {
			return nil, err
		}
		faces = append(faces, primitives.Face{
			V0: p0, V1: p1, V2: p2,
			HasNormals: hasN0 && hasN1 && hasN2,
			N0:         n0, N1: n1, N2: n2,
			HasUVs: hasUV0 && hasUV1 && hasUV2,
			UV0:    uv0, UV1: uv1, UV2: uv2,
			Mat: mat,
		})
	}
	return faces, nil
}

// objIndex converts a 1-based OBJ index (negative meaning "relative to the
// end of the list so far") to a 0-based slice index.
func objIndex(i, count int) int {
	if i > 0 {
		return i - 1
	}
	return count + i
}

// LoadMTL parses a Wavefront MTL file into named core.Material values,
// mapping its fields onto the Disney principled BSDF:
// Kd/map_Kd -> base color, Ns/Pr/Pm/Ps/Pc/Pcr/aniso -> roughness / metallic
// / sheen / clearcoat / clearcoat gloss / anisotropic, Ni -> ior, Tf -> spec
// transmission, Ke/map_Ke -> emission (folded in as a reflective
// DiffuseLight), d/map_d -> alpha (as a Mix against Transparent).
func LoadMTL(path string) (map[string]core.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	result := map[string]core.Material{}
	var name string
	disney := material.NewDisney(vec3.Color{X: 0.8, Y: 0.8, Z: 0.8})
	var emission vec3.Color
	var emissionTex core.Texture
	var alpha float64 = 1
	var alphaTex core.Texture

	flush := func() {
		if name == "" {
			return
		}
		var mat core.Material = disney
		switch {
		case emissionTex != nil:
			mat = material.NewDiffuseLightTextureWithReflection(emissionTex, disney)
		case emission.X > 0 || emission.Y > 0 || emission.Z > 0:
			mat = material.NewDiffuseLightWithReflection(emission, disney)
		}
		if alpha < 1 || alphaTex != nil {
			// Mix's ratio is P(choose the transparent branch), so an
			// opacity value must be inverted on the way in.
			ratioTex := alphaTex
			if ratioTex == nil {
				ratioTex = texture.NewSolid(vec3.Color{X: 1 - alpha, Y: 1 - alpha, Z: 1 - alpha})
			}
			mat = material.NewMixTexture(mat, material.NewTransparent(), ratioTex)
		}
		result[name] = mat
	}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "newmtl":
			flush()
			name = fields[1]
			disney = material.NewDisney(vec3.Color{X: 0.8, Y: 0.8, Z: 0.8})
			emission = vec3.Color{}
			emissionTex = nil
			alpha = 1
			alphaTex = nil
		case "Kd":
			c, err := parseVec3(fields[1:])
			if err == nil {
				disney.BaseColor = c
			}
		case "map_Kd":
			tex, err := loadTextureFile(dir, fields[1], false)
			if err == nil {
				disney.BaseColorTexture = tex
			}
		case "Ns":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				// Ns is a Phong exponent in [0,1000]; invert to a roughness.
				disney.Roughness = 1 - clamp01(v/1000)
			}
		case "Pr":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.Roughness = v
			}
		case "Pm":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.Metallic = v
			}
		case "Ps":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.Sheen = v
			}
		case "Pc":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.Clearcoat = v
			}
		case "Pcr":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.ClearcoatGloss = v
			}
		case "aniso":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.Anisotropic = v
			}
		case "Ni":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				disney.IOR = v
			}
		case "Tf":
			c, err := parseVec3(fields[1:])
			if err == nil {
				disney.SpecTrans = clamp01((c.X + c.Y + c.Z) / 3)
			}
		case "Ke":
			c, err := parseVec3(fields[1:])
			if err == nil {
				emission = c
			}
		case "map_Ke":
			tex, err := loadTextureFile(dir, fields[1], false)
			if err == nil {
				emissionTex = tex
			}
		case "d":
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				alpha = v
			}
		case "map_d":
			// Alpha masks are coverage data, not color, so they bypass
			// sRGB decoding; the opacity value is inverted into Mix's
			// transparent-branch probability.
			tex, err := loadTextureFile(dir, fields[1], true)
			if err == nil {
				alphaTex = invertTexture{tex}
			}
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return result, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// invertTexture maps an opacity texture onto Mix's transparency ratio
// (1 - value per channel).
type invertTexture struct{ inner core.Texture }

func (i invertTexture) Value(u, v float64, p vec3.Point3) vec3.Color {
	c := i.inner.Value(u, v, p)
	return vec3.Color{X: 1 - c.X, Y: 1 - c.Y, Z: 1 - c.Z}
}

func loadTextureFile(dir, name string, raw bool) (core.Texture, error) {
	img, err := DecodeImage(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	return texture.NewImage(img, raw, true), nil
}
