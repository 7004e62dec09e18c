package content

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToYAML renders a Content tree as canonical YAML. Map entry order is
// preserved exactly, which is why rendering goes through yaml.Node
// rather than a Go map.
func ToYAML(c Content) (string, error) {
	node := c.yamlNode()
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("render content as yaml: %w", err)
	}
	return string(out), nil
}

// MarshalYAML implements yaml.Marshaler so Content values embed
// naturally in larger documents.
func (c Content) MarshalYAML() (any, error) {
	return c.yamlNode(), nil
}

func (c Content) yamlNode() *yaml.Node {
	switch c.kind {
	case KindNil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(c.b)}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(c.i, 10)}
	case KindUint:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(c.u, 10)}
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(c.f, 'g', -1, 64)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.s}
	case KindSeq:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range c.seq {
			node.Content = append(node.Content, item.yamlNode())
		}
		return node
	case KindMap:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, e := range c.m {
			node.Content = append(node.Content, e.Key.yamlNode(), e.Value.yamlNode())
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// scalarString renders scalar variants as plain text. Containers render
// as their kind name; they only reach this path as unusual map keys.
func (c Content) scalarString() string {
	switch c.kind {
	case KindNil:
		return "null"
	case KindBool:
		return strconv.FormatBool(c.b)
	case KindInt:
		return strconv.FormatInt(c.i, 10)
	case KindUint:
		return strconv.FormatUint(c.u, 10)
	case KindFloat:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	case KindString:
		return c.s
	default:
		return strings.ToUpper(c.kind.String())
	}
}
