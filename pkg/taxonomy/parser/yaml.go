package parser

import (
	"os"

	"gopkg.in/yaml.v3"
)

// parseYAMLFile reads a manifest file into a yaml node tree. The tree
// form lets the legacy-key pass rewrite raw input before any typed
// construction happens.
func parseYAMLFile(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseYAMLBytes(data)
}

// parseYAMLBytes parses manifest YAML into a node tree.
func parseYAMLBytes(data []byte) (*yaml.Node, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// mappingValue returns the value node for the given key of a mapping
// node, or nil when absent.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
