package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Descriptor is the declarative form of a scene as it appears in a scene
// file. JSON scene files decode through the same path since JSON is valid YAML.
type Descriptor struct {
	View   ViewDescriptor    `yaml:"view"`
	Models []ModelDescriptor `yaml:"models"`
}

// ViewDescriptor describes the camera.
// Clip is [left, right, bottom, top, near, far]; near and far are positive distances.
type ViewDescriptor struct {
	PRP  []float64 `yaml:"prp"`
	SRP  []float64 `yaml:"srp"`
	VUP  []float64 `yaml:"vup"`
	Clip []float64 `yaml:"clip"`
}

// ModelDescriptor describes one model. Which fields apply depends on Type.
//
//	generic:  vertices, edges
//	cube:     center, width, height, depth
//	cone:     center, radius, height, sides
//	cylinder: center, radius, height, sides
//	sphere:   center, radius, slices, stacks
//	mesh:     file (glTF 2.0), center
//
// Counts are float64 so that non-integer input can be reported instead of
// silently truncated.
type ModelDescriptor struct {
	Type      string               `yaml:"type"`
	Name      string               `yaml:"name,omitempty"`
	Vertices  [][]float64          `yaml:"vertices,omitempty"`
	Edges     [][]int              `yaml:"edges,omitempty"`
	Center    []float64            `yaml:"center,omitempty"`
	Width     float64              `yaml:"width,omitempty"`
	Height    float64              `yaml:"height,omitempty"`
	Depth     float64              `yaml:"depth,omitempty"`
	Radius    float64              `yaml:"radius,omitempty"`
	Sides     float64              `yaml:"sides,omitempty"`
	Slices    float64              `yaml:"slices,omitempty"`
	Stacks    float64              `yaml:"stacks,omitempty"`
	File      string               `yaml:"file,omitempty"`
	Animation *AnimationDescriptor `yaml:"animation,omitempty"`
}

// AnimationDescriptor describes a constant-rate rotation about one world axis
// through the model's center.
type AnimationDescriptor struct {
	Axis string  `yaml:"axis"`
	RPS  float64 `yaml:"rps"`
}

// Parse decodes a scene descriptor from YAML or JSON.
func Parse(data []byte) (Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("parsing scene: %w", err)
	}
	return d, nil
}

// LoadFile reads and decodes a scene descriptor.
func LoadFile(path string) (Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Descriptor{}, err
	}
	d, err := Parse(data)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Marshal encodes the descriptor as YAML.
func (d Descriptor) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
