package upm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const dependenciesKey = "dependencies"

// Manifest is Packages/manifest.json. Top-level fields other than
// dependencies are kept verbatim and in their original order.
type Manifest struct {
	keys         []string
	fields       map[string]json.RawMessage
	Dependencies map[string]string
}

// ParseManifest decodes manifest.json content.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parsing manifest: top level is not an object")
	}

	m := &Manifest{fields: make(map[string]json.RawMessage)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing manifest: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing manifest: unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing manifest field %q: %w", key, err)
		}
		if _, dup := m.fields[key]; !dup {
			m.keys = append(m.keys, key)
		}
		m.fields[key] = raw
	}

	if raw, ok := m.fields[dependenciesKey]; ok {
		if err := json.Unmarshal(raw, &m.Dependencies); err != nil {
			return nil, fmt.Errorf("parsing manifest dependencies: %w", err)
		}
	}
	if m.Dependencies == nil {
		m.Dependencies = make(map[string]string)
	}
	return m, nil
}

// Marshal encodes the manifest with two-space indentation. Dependencies are
// written in sorted order, as the editor writes them.
func (m *Manifest) Marshal() ([]byte, error) {
	keys := m.keys
	if _, ok := m.fields[dependenciesKey]; !ok {
		keys = append([]string{dependenciesKey}, keys...)
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			compact.WriteByte(',')
		}
		name, err := encode(k)
		if err != nil {
			return nil, err
		}
		compact.Write(name)
		compact.WriteByte(':')

		if k == dependenciesKey {
			deps, err := encode(m.Dependencies)
			if err != nil {
				return nil, err
			}
			compact.Write(deps)
			continue
		}
		compact.Write(m.fields[k])
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encode marshals v without HTML escaping so git URLs survive untouched.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// SaveManifest writes the manifest through a temporary file and renames it
// into place.
func SaveManifest(path string, m *Manifest) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating packages directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalizing manifest: %w", err)
	}
	return nil
}
