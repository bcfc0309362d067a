// Package scene loads shapedemo scene files: a canvas plus a list of shaped
// views, written in YAML and checked against an embedded JSON Schema.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene is returned when a scene does not conform to the schema.
var ErrInvalidScene = errors.New("scene: invalid scene")

//go:embed schema.json
var schema []byte

// Scene is the root of a scene file.
type Scene struct {
	Canvas Canvas `yaml:"canvas" json:"canvas"`
	Views  []View `yaml:"views" json:"views"`
}

// Canvas sizes the output in points.
type Canvas struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
	Scale  float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
	Clear  string  `yaml:"clear,omitempty" json:"clear,omitempty"`
}

// View is one shaped view placed on the canvas.
type View struct {
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	Frame       Box     `yaml:"frame" json:"frame"`
	Shape       *Shape  `yaml:"shape,omitempty" json:"shape,omitempty"`
	Background  string  `yaml:"background,omitempty" json:"background,omitempty"`
	OuterShadow *Shadow `yaml:"outer_shadow,omitempty" json:"outer_shadow,omitempty"`
	InnerShadow *Shadow `yaml:"inner_shadow,omitempty" json:"inner_shadow,omitempty"`
	Effect      *Effect `yaml:"effect,omitempty" json:"effect,omitempty"`
}

// Box is a rectangle given by origin and size.
type Box struct {
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Vec is a 2D offset.
type Vec struct {
	X float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y float64 `yaml:"y,omitempty" json:"y,omitempty"`
}

// Shape selects a geometry by Type; the other fields apply to the types
// that use them. Angle is in degrees.
type Shape struct {
	Type        string   `yaml:"type" json:"type"`
	Radius      float64  `yaml:"radius,omitempty" json:"radius,omitempty"`
	StrokeWidth float64  `yaml:"stroke_width,omitempty" json:"stroke_width,omitempty"`
	Arrow       *Arrow   `yaml:"arrow,omitempty" json:"arrow,omitempty"`
	Vertices    int      `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Extrusion   float64  `yaml:"extrusion,omitempty" json:"extrusion,omitempty"`
	Width       float64  `yaml:"width,omitempty" json:"width,omitempty"`
	Angle       *float64 `yaml:"angle,omitempty" json:"angle,omitempty"`
}

// Arrow describes a dialog arrow (Edge) or a cute dialog tail (Corner).
type Arrow struct {
	Edge   string  `yaml:"edge,omitempty" json:"edge,omitempty"`
	Corner string  `yaml:"corner,omitempty" json:"corner,omitempty"`
	Center float64 `yaml:"center,omitempty" json:"center,omitempty"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Shadow is a blurred shadow. A missing opacity means fully opaque.
type Shadow struct {
	Radius  float64  `yaml:"radius" json:"radius"`
	Color   string   `yaml:"color" json:"color"`
	Opacity *float64 `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Offset  Vec      `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// Effect is a translucency preset. A missing alpha means 1.
type Effect struct {
	Style string   `yaml:"style" json:"style"`
	Alpha *float64 `yaml:"alpha,omitempty" json:"alpha,omitempty"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse validates YAML scene data against the schema and decodes it.
// Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse yaml: %w", err)
	}
	if err := validateDocument(gojsonschema.NewGoLoader(doc)); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

// Validate checks the scene against the schema.
func (s *Scene) Validate() error {
	doc := *s
	if doc.Views == nil {
		doc.Views = []View{}
	}
	return validateDocument(gojsonschema.NewGoLoader(doc))
}

// Marshal encodes the scene as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func validateDocument(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), doc)
	if err != nil {
		return fmt.Errorf("scene: validate: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidScene, strings.Join(msgs, "; "))
}

func (s *Scene) applyDefaults() {
	if s.Canvas.Scale == 0 {
		s.Canvas.Scale = 1
	}
}
