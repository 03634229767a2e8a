package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// keySpec validates and renders the value for one settable config key.
type keySpec struct {
	build func(value string) (*yaml.Node, error)
}

func stringKey(check func(string) error) keySpec {
	return keySpec{build: func(value string) (*yaml.Node, error) {
		if check != nil {
			if err := check(value); err != nil {
				return nil, err
			}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value}, nil
	}}
}

func boolKey() keySpec {
	return keySpec{build: func(value string) (*yaml.Node, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", value)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatBool(b)}, nil
	}}
}

func intKey(minimum int) keySpec {
	return keySpec{build: func(value string) (*yaml.Node, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("expected a number, got %q", value)
		}
		if n < minimum {
			return nil, fmt.Errorf("must be at least %d, got %d", minimum, n)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.Itoa(n)}, nil
	}}
}

// settableKeys are the keys `lazycsv config set` accepts, by their
// dotted path in the YAML file.
var settableKeys = map[string]keySpec{
	"delimiter":              stringKey(ValidateDelimiter),
	"no_headers":             boolKey(),
	"encoding":               stringKey(ValidateEncoding),
	"auto_reload":            boolKey(),
	"ui.show_status_bar":     boolKey(),
	"ui.max_visible_columns": intKey(1),
	"ui.max_cell_width":      intKey(1),
}

// SettableKeys lists the keys SetValue accepts, sorted for display.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetValue updates one configuration key in the config file. Comments
// and formatting in other sections are preserved by editing the
// yaml.Node tree instead of re-marshaling the whole config.
func SetValue(configPath, key, value string) error {
	spec, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(SettableKeys(), ", "))
	}
	valueNode, err := spec.build(value)
	if err != nil {
		return fmt.Errorf("config key %s: %w", key, err)
	}

	doc, err := loadTree(configPath)
	if err != nil {
		return err
	}

	setMappingKey(documentRoot(doc), strings.Split(key, "."), valueNode)

	out, err := renderTree(doc)
	if err != nil {
		return err
	}
	return writeAtomic(configPath, out)
}

// loadTree parses the config file into a comment-preserving node tree.
// A missing or empty file yields a zero node for documentRoot to fill.
func loadTree(path string) (*yaml.Node, error) {
	var doc yaml.Node

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing existing config: %w", err)
	}
	return &doc, nil
}

func renderTree(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// documentRoot returns the top-level mapping of doc, creating the
// document structure for empty or new files.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 &&
		doc.Content[0].Kind == yaml.MappingNode {
		return doc.Content[0]
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	*doc = yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}
	return root
}

// setMappingKey walks the dotted path through nested mappings, creating
// them as needed, and replaces the final value.
func setMappingKey(root *yaml.Node, path []string, value *yaml.Node) {
	cur := root
	for i, part := range path {
		idx := -1
		for j := 0; j+1 < len(cur.Content); j += 2 {
			if cur.Content[j].Value == part {
				idx = j
				break
			}
		}

		if i == len(path)-1 {
			if idx >= 0 {
				cur.Content[idx+1] = value
			} else {
				cur.Content = append(cur.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: part},
					value,
				)
			}
			return
		}

		if idx >= 0 && cur.Content[idx+1].Kind == yaml.MappingNode {
			cur = cur.Content[idx+1]
			continue
		}
		next := &yaml.Node{Kind: yaml.MappingNode}
		if idx >= 0 {
			cur.Content[idx+1] = next
		} else {
			cur.Content = append(cur.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: part},
				next,
			)
		}
		cur = next
	}
}

// writeAtomic stages data in a temp file beside configPath and renames
// it into place, so a crash cannot leave a half-written config.
func writeAtomic(configPath string, data []byte) (err error) {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".lazycsv-*.yaml")
	if err != nil {
		return fmt.Errorf("staging config: %w", err)
	}
	defer func() {
		if err != nil {
			_ = temp.Close()
			_ = os.Remove(temp.Name())
		}
	}()

	if _, err := temp.Write(data); err != nil {
		return fmt.Errorf("writing staged config: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("flushing staged config: %w", err)
	}

	if err := os.Rename(temp.Name(), configPath); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
