package parser

import "gopkg.in/yaml.v3"

// Legacy field names promoted to their current spelling before typed
// construction. The rewrite happens on the raw node tree so the core
// validators never see the old names.
const (
	legacyMetaKey  = "fidesops_meta"
	currentMetaKey = "fides_meta"
)

// promoteLegacyKeys walks the node tree and renames every
// fidesops_meta mapping key to fides_meta. When a mapping carries
// both, the current key wins and the legacy pair is dropped. It
// returns the number of rewritten keys so the caller can log a
// deprecation warning.
func promoteLegacyKeys(node *yaml.Node) int {
	if node == nil {
		return 0
	}

	promoted := 0

	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			promoted += promoteLegacyKeys(child)
		}

	case yaml.MappingNode:
		hasCurrent := mappingValue(node, currentMetaKey) != nil
		content := node.Content[:0]
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == legacyMetaKey {
				promoted++
				if hasCurrent {
					continue // current key wins, drop the legacy pair
				}
				key.Value = currentMetaKey
			}
			content = append(content, key, value)
			promoted += promoteLegacyKeys(value)
		}
		node.Content = content
	}

	return promoted
}
