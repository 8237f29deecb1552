package mesh

import (
	"fmt"
	"log"
	"os"

	"github.com/sheenobu/go-obj/obj"
)

// loadOBJ parses a Wavefront OBJ file. Polygons are fan-triangulated around
// their first vertex.
func loadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open OBJ file %s: %w", path, err)
	}
	defer f.Close()

	o, err := obj.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("failed to parse OBJ file %s: %w", path, err)
	}

	b := &builder{
		hasNormals: len(o.Normals) > 0,
		hasUVs:     len(o.Textures) > 0,
	}
	for _, face := range o.Faces {
		if len(face.Points) < 3 {
			log.Printf("Warning: face with %d vertices skipped in %s", len(face.Points), path)
			continue
		}
		b.m.Faces++
		for i := 1; i+1 < len(face.Points); i++ {
			for _, p := range []*obj.Point{face.Points[0], face.Points[i], face.Points[i+1]} {
				if err := b.objPoint(p); err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
			}
		}
	}
	return b.mesh(), nil
}

func (b *builder) objPoint(p *obj.Point) error {
	if p == nil || p.Vertex == nil {
		return fmt.Errorf("face references a missing vertex")
	}
	pos := [3]float32{float32(p.Vertex.X), float32(p.Vertex.Y), float32(p.Vertex.Z)}

	var normal *[3]float32
	if p.Normal != nil {
		normal = &[3]float32{float32(p.Normal.X), float32(p.Normal.Y), float32(p.Normal.Z)}
	}
	var uv *[2]float32
	if p.Texture != nil {
		uv = &[2]float32{float32(p.Texture.U), float32(p.Texture.V)}
	}
	b.vertex(pos, normal, uv)
	return nil
}
