package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/zeusync/vecmath/pkg/encoding"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.Serializable[Vec2] = (*Vec2)(nil)
	_ encoding.Serializable[Vec3] = (*Vec3)(nil)
	_ json.Unmarshaler            = (*Vec2)(nil)
	_ json.Unmarshaler            = (*Vec3)(nil)
	_ yaml.Unmarshaler            = (*Vec2)(nil)
	_ yaml.Unmarshaler            = (*Vec3)(nil)
)

func (v *Vec2) Serialize() ([]byte, error) { return json.Marshal(v) }

func (v *Vec2) Deserialize(data []byte) error { return json.Unmarshal(data, v) }

func (v *Vec3) Serialize() ([]byte, error) { return json.Marshal(v) }

func (v *Vec3) Deserialize(data []byte) error { return json.Unmarshal(data, v) }

// UnmarshalJSON accepts either an object ({"x": 1, "y": 2}) or an array ([1, 2]).
// Keys other than x and y are rejected.
func (v *Vec2) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		comps, err := decodeJSONComponents(data, 2, 2)
		if err != nil {
			return err
		}
		*v = Vec2{X: comps[0], Y: comps[1]}
		return nil
	}
	if err := checkJSONKeys(data, "x", "y"); err != nil {
		return err
	}
	type plain Vec2
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = Vec2(p)
	return nil
}

// UnmarshalJSON accepts either an object ({"x": 1, "y": 2, "z": 3}) or an
// array of two or three numbers; a missing z is zero.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		comps, err := decodeJSONComponents(data, 2, 3)
		if err != nil {
			return err
		}
		*v = fromComponents(comps)
		return nil
	}
	if err := checkJSONKeys(data, "x", "y", "z"); err != nil {
		return err
	}
	type plain Vec3
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = Vec3(p)
	return nil
}

// UnmarshalYAML accepts either a mapping ({x: 1, y: 2}) or a flow sequence ([1, 2]).
// Keys other than x and y are rejected.
func (v *Vec2) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		comps, err := decodeYAMLComponents(node, 2, 2)
		if err != nil {
			return err
		}
		*v = Vec2{X: comps[0], Y: comps[1]}
		return nil
	}
	if err := checkYAMLKeys(node, "x", "y"); err != nil {
		return err
	}
	type plain Vec2
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Vec2(p)
	return nil
}

// UnmarshalYAML accepts either a mapping ({x: 1, y: 2, z: 3}) or a flow
// sequence of two or three numbers; a missing z is zero.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		comps, err := decodeYAMLComponents(node, 2, 3)
		if err != nil {
			return err
		}
		*v = fromComponents(comps)
		return nil
	}
	if err := checkYAMLKeys(node, "x", "y", "z"); err != nil {
		return err
	}
	type plain Vec3
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Vec3(p)
	return nil
}

func fromComponents(comps []float64) Vec3 {
	v := Vec3{X: comps[0], Y: comps[1]}
	if len(comps) == 3 {
		v.Z = comps[2]
	}
	return v
}

// checkYAMLKeys fails on mapping keys outside allowed. Decoding into the
// struct alone would drop them silently.
func checkYAMLKeys(node *yaml.Node, allowed ...string) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("%w %q on line %d", ErrUnknownComponent, key.Value, key.Line)
		}
	}
	return nil
}

func decodeYAMLComponents(node *yaml.Node, minLen, maxLen int) ([]float64, error) {
	var comps []float64
	if err := node.Decode(&comps); err != nil {
		return nil, err
	}
	if len(comps) < minLen || len(comps) > maxLen {
		return nil, fmt.Errorf("%w: line %d has %d, want %d..%d", ErrDimension, node.Line, len(comps), minLen, maxLen)
	}
	return comps, nil
}

func decodeJSONComponents(data []byte, minLen, maxLen int) ([]float64, error) {
	var comps []float64
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, err
	}
	if len(comps) < minLen || len(comps) > maxLen {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrDimension, len(comps), minLen, maxLen)
	}
	return comps, nil
}

func checkJSONKeys(data []byte, allowed ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key := range fields {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("%w %q", ErrUnknownComponent, key)
		}
	}
	return nil
}
