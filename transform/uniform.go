package transform

import "strings"

// Uniform is a set of shader uniforms, one bit per name.
type Uniform uint16

const (
	UniformProjection Uniform = 1 << iota
	UniformView
	UniformModel
	UniformScale
	UniformRotation
	UniformTranslation
	UniformNegaTranslate
	UniformObjectColour

	AllMatrices = UniformProjection | UniformView | UniformModel | UniformScale |
		UniformRotation | UniformTranslation | UniformNegaTranslate
	AllUniforms = AllMatrices | UniformObjectColour
)

// Uniforms lists every single uniform in upload order.
var Uniforms = []Uniform{
	UniformProjection,
	UniformView,
	UniformModel,
	UniformScale,
	UniformRotation,
	UniformTranslation,
	UniformNegaTranslate,
	UniformObjectColour,
}

var uniformNames = map[Uniform]string{
	UniformProjection:    "Projection",
	UniformView:          "View",
	UniformModel:         "Model",
	UniformScale:         "Scale",
	UniformRotation:      "Rotation",
	UniformTranslation:   "Translation",
	UniformNegaTranslate: "NegaTranslate",
	UniformObjectColour:  "objectColour",
}

// Name is the GLSL identifier of a single uniform.
func (u Uniform) Name() string {
	return uniformNames[u]
}

// Has reports whether every uniform in v is in u.
func (u Uniform) Has(v Uniform) bool {
	return u&v == v
}

// IsMatrix reports whether u is a single mat4 uniform.
func (u Uniform) IsMatrix() bool {
	return u != 0 && AllMatrices.Has(u) && u&(u-1) == 0
}

func (u Uniform) String() string {
	if u == 0 {
		return "none"
	}
	var names []string
	for _, one := range Uniforms {
		if u.Has(one) {
			names = append(names, one.Name())
		}
	}
	return strings.Join(names, "|")
}
