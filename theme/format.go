package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Format is a serialization of the document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported format names.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat maps a format name or file extension (with or without the dot) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q, expected one of %s", name, strings.Join(Formats(), ", "))
	}
}

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the canonical file extension, with the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// decodeTree parses data into a generic tree of map[string]any, []any and scalars.
func decodeTree(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		tree := make(map[string]any)
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return tree, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// encodeTree is the inverse of decodeTree.
func encodeTree(tree map[string]any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(tree); err != nil {
			return nil, err
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(tree); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
	case FormatTOML:
		encoder := toml.NewEncoder(&buf)
		encoder.SetIndentTables(true)
		if err := encoder.Encode(tree); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return buf.Bytes(), nil
}

// decodeJSON walks the token stream so duplicate object keys are rejected
// instead of silently keeping the last one.
func decodeJSON(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	value, err := decodeJSONValue(decoder, "")
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the top-level value")
	}

	tree, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be an object, got %s", typeName(value))
	}
	return tree, nil
}

func decodeJSONValue(decoder *json.Decoder, path string) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		object := make(map[string]any)
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key := keyToken.(string)
			if _, exists := object[key]; exists {
				return nil, &MalformedConfigError{Path: joinPath(path, key), Reason: "duplicate key"}
			}
			value, err := decodeJSONValue(decoder, joinPath(path, key))
			if err != nil {
				return nil, err
			}
			object[key] = value
		}
		_, err = decoder.Token()
		return object, err
	case '[':
		array := make([]any, 0)
		for decoder.More() {
			value, err := decodeJSONValue(decoder, indexPath(path, len(array)))
			if err != nil {
				return nil, err
			}
			array = append(array, value)
		}
		_, err = decoder.Token()
		return array, err
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// decodeYAML goes through yaml.Node so that non-string keys (e.g. 400:) are
// read by their literal text.
func decodeYAML(data []byte) (map[string]any, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}
	if document.Kind == 0 || len(document.Content) == 0 {
		return make(map[string]any), nil
	}

	value, err := yamlValue(document.Content[0], "")
	if err != nil {
		return nil, err
	}
	tree, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a mapping, got %s", typeName(value))
	}
	return tree, nil
}

func yamlValue(node *yaml.Node, path string) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlValue(node.Alias, path)
	case yaml.MappingNode:
		mapping := make(map[string]any, len(node.Content)/2)
		merged := make(map[string]any)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == mergeTag {
				if err := yamlMerge(merged, valueNode, path); err != nil {
					return nil, err
				}
				continue
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &MalformedConfigError{Path: path, Reason: fmt.Sprintf("line %d: mapping keys must be scalars", keyNode.Line)}
			}
			key := keyNode.Value
			if _, exists := mapping[key]; exists {
				return nil, &MalformedConfigError{Path: joinPath(path, key), Reason: fmt.Sprintf("line %d: duplicate key", keyNode.Line)}
			}
			value, err := yamlValue(valueNode, joinPath(path, key))
			if err != nil {
				return nil, err
			}
			mapping[key] = value
		}
		for key, value := range merged {
			if _, explicit := mapping[key]; !explicit {
				mapping[key] = value
			}
		}
		return mapping, nil
	case yaml.SequenceNode:
		sequence := make([]any, 0, len(node.Content))
		for i, item := range node.Content {
			value, err := yamlValue(item, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			sequence = append(sequence, value)
		}
		return sequence, nil
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

const mergeTag = "!!merge"

// yamlMerge collects the entries of a "<<" value into merged. Entries already
// collected win, so earlier mappings in a merge sequence take precedence.
func yamlMerge(merged map[string]any, node *yaml.Node, path string) error {
	value, err := yamlValue(node, path)
	if err != nil {
		return err
	}

	sources, ok := value.([]any)
	if !ok {
		sources = []any{value}
	}
	for _, source := range sources {
		mapping, ok := source.(map[string]any)
		if !ok {
			return &MalformedConfigError{
				Path:   joinPath(path, "<<"),
				Reason: fmt.Sprintf("line %d: merge value must be a mapping or a sequence of mappings, got %s", node.Line, typeName(source)),
			}
		}
		for key, v := range mapping {
			if _, exists := merged[key]; !exists {
				merged[key] = v
			}
		}
	}
	return nil
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return "number"
	case time.Time, toml.LocalDateTime:
		return "timestamp"
	case toml.LocalDate:
		return "date"
	case toml.LocalTime:
		return "time"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
