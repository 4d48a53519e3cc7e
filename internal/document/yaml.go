package document

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML document into a Value.
//
// The yaml.v3 Node API is used instead of plain Unmarshal because nodes
// preserve mapping key order. Since YAML is a superset of JSON, this loader
// also accepts JSON input.
func UnmarshalYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		// Empty document decodes to null.
		return Null{}, nil
	}
	return convertYAMLNode(&root)
}

func convertYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return convertYAMLNode(node.Content[0])

	case yaml.AliasNode:
		return convertYAMLNode(node.Alias)

	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			v, err := convertYAMLNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := make(Array, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := convertYAMLNode(child)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil

	case yaml.ScalarNode:
		return convertYAMLScalar(node)

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

func convertYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid bool %q", node.Line, node.Value)
		}
		return Bool(b), nil
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return Int64(i), nil
		}
		if u, err := strconv.ParseUint(node.Value, 10, 64); err == nil {
			return Uint64(u), nil
		}
		return nil, fmt.Errorf("line %d: integer out of range: %s", node.Line, node.Value)
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %q", node.Line, node.Value)
		}
		return Float64(f), nil
	case "!!str":
		return String(node.Value), nil
	default:
		// Timestamps, binary, and other extended tags flatten to strings.
		return String(node.Value), nil
	}
}
