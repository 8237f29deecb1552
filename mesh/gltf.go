package mesh

import (
	"fmt"
	"log"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// loadGLTF reads every triangle primitive of every mesh in a .gltf or .glb
// document and expands indexed primitives into a plain triangle list.
func loadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	b := &builder{}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				log.Printf("Warning: primitive in mesh %q is not a triangle list, skipped", m.Name)
				continue
			}
			if err := b.gltfPrimitive(doc, prim); err != nil {
				return nil, fmt.Errorf("load primitive of %s: %w", path, err)
			}
		}
	}
	return b.mesh(), nil
}

func (b *builder) gltfPrimitive(doc *gltf.Document, prim *gltf.Primitive) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	posAcc, err := accessor(doc, posIdx)
	if err != nil {
		return fmt.Errorf("POSITION: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, posAcc, nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return fmt.Errorf("NORMAL: %w", err)
		}
		if normals, err = modeler.ReadNormal(doc, acc, nil); err != nil {
			normals = nil
		}
	}
	var uvs [][2]float32
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		acc, err := accessor(doc, idx)
		if err != nil {
			return fmt.Errorf("TEXCOORD_0: %w", err)
		}
		if uvs, err = modeler.ReadTextureCoord(doc, acc, nil); err != nil {
			uvs = nil
		}
	}
	// Attributes must stay parallel across primitives, so once one primitive
	// has them every later vertex carries a (possibly zero) value.
	if len(normals) > 0 && !b.hasNormals {
		b.hasNormals = true
		b.m.Normals = make([]float32, len(b.m.Positions))
	}
	if len(uvs) > 0 && !b.hasUVs {
		b.hasUVs = true
		b.m.TexCoords = make([]float32, len(b.m.Positions)/3*2)
	}

	var indices []uint32
	if prim.Indices != nil {
		acc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		if indices, err = modeler.ReadIndices(doc, acc, nil); err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	if rem := len(indices) % 3; rem != 0 {
		log.Printf("Warning: dropping %d trailing indices of an incomplete triangle", rem)
		indices = indices[:len(indices)-rem]
	}

	for _, i := range indices {
		if int(i) >= len(positions) {
			return fmt.Errorf("index %d out of range (%d positions)", i, len(positions))
		}
		var normal *[3]float32
		if int(i) < len(normals) {
			normal = &normals[i]
		}
		var uv *[2]float32
		if int(i) < len(uvs) {
			uv = &uvs[i]
		}
		b.vertex(positions[i], normal, uv)
	}
	b.m.Faces += len(indices) / 3
	return nil
}

// accessor looks up an accessor index taken from the file.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range (%d accessors)", idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}
