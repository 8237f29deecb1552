// Package mesh loads a model file into a flat, non-indexed triangle list
// ready to be copied into a vertex buffer.
package mesh

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// Mesh is a triangle list. Positions holds three floats per vertex and
// VertexCount vertices, three per triangle. Normals and TexCoords, when the
// source has them, run parallel to Positions.
type Mesh struct {
	Positions []float32
	Normals   []float32
	TexCoords []float32

	VertexCount int
	// Faces counts source polygons before triangulation.
	Faces int
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return m.VertexCount / 3
}

// Load reads the model at path, choosing the parser by extension:
// .obj for Wavefront OBJ, .gltf and .glb for glTF 2.0.
func Load(path string) (*Mesh, error) {
	var (
		m   *Mesh
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		m, err = loadOBJ(path)
	case ".gltf", ".glb":
		m, err = loadGLTF(path)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q for %s", ext, path)
	}
	if err != nil {
		return nil, err
	}
	if m.VertexCount == 0 {
		return nil, fmt.Errorf("mesh %s has no triangles", path)
	}

	log.Printf("Loaded mesh %s", path)
	log.Printf("\tVertex count: %d", m.VertexCount)
	log.Printf("\tTexture coords count: %d", len(m.TexCoords)/2)
	log.Printf("\tNormals count: %d", len(m.Normals)/3)
	log.Printf("\tFaces count: %d", m.Faces)
	return m, nil
}

// builder accumulates triangles, keeping the optional attributes parallel
// to the positions once any vertex carries them.
type builder struct {
	m          Mesh
	hasNormals bool
	hasUVs     bool
}

func (b *builder) vertex(pos [3]float32, normal *[3]float32, uv *[2]float32) {
	b.m.Positions = append(b.m.Positions, pos[0], pos[1], pos[2])
	if b.hasNormals {
		n := [3]float32{}
		if normal != nil {
			n = *normal
		}
		b.m.Normals = append(b.m.Normals, n[0], n[1], n[2])
	}
	if b.hasUVs {
		t := [2]float32{}
		if uv != nil {
			t = *uv
		}
		b.m.TexCoords = append(b.m.TexCoords, t[0], t[1])
	}
	b.m.VertexCount++
}

func (b *builder) mesh() *Mesh {
	m := b.m
	return &m
}
