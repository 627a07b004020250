// Package manifest reads and writes package.json without disturbing key
// order, indentation or fields it does not own.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest file name.
const FileName = "package.json"

var (
	// ErrMissingManifest is returned when the target has no package.json.
	ErrMissingManifest = errors.New("package.json not found")

	// ErrInvalidManifest is returned when package.json is not a JSON object
	// or a dependency section has the wrong shape.
	ErrInvalidManifest = errors.New("invalid package.json")

	// ErrManifestWrite is returned when scripts cannot be merged into or
	// written back to package.json.
	ErrManifestWrite = errors.New("cannot update package.json")
)

// Manifest is a parsed package.json.
type Manifest struct {
	Path string

	fields          *orderedmap.OrderedMap[string, json.RawMessage]
	raw             []byte
	indent          string
	trailingNewline bool

	// scripts holds the compact "scripts" object set since the last load
	// or save. Nil means unchanged.
	scripts json.RawMessage
}

// Load reads dir/package.json.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingManifest, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses package.json content read from path.
func Parse(path string, data []byte) (*Manifest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: %s: top-level value must be an object", ErrInvalidManifest, path)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(trimmed, fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	m := &Manifest{
		Path:            path,
		fields:          fields,
		raw:             data,
		indent:          detectIndent(data),
		trailingNewline: len(data) == 0 || data[len(data)-1] == '\n',
	}

	// Surface malformed dependency sections at load time.
	for _, section := range []string{"dependencies", "devDependencies"} {
		if _, err := m.section(section); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Raw returns the bytes the manifest was parsed from.
func (m *Manifest) Raw() []byte {
	return m.raw
}

// Has reports whether key is present at the top level.
func (m *Manifest) Has(key string) bool {
	_, ok := m.fields.Get(key)
	return ok
}

// Dependency looks name up in dependencies, then devDependencies, and
// returns its declared version range.
func (m *Manifest) Dependency(name string) (string, bool) {
	for _, section := range []string{"dependencies", "devDependencies"} {
		deps, _ := m.section(section)
		if version, ok := deps[name]; ok {
			return version, true
		}
	}
	return "", false
}

// PackageManager returns the tool name from the "packageManager" field
// (e.g. "pnpm" for "pnpm@9.1.0"), or "" when absent.
func (m *Manifest) PackageManager() string {
	raw, ok := m.fields.Get("packageManager")
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	name, _, _ := strings.Cut(value, "@")
	return name
}

func (m *Manifest) section(name string) (map[string]string, error) {
	raw, ok := m.fields.Get(name)
	if !ok {
		return nil, nil
	}
	var deps map[string]string
	if err := json.Unmarshal(raw, &deps); err != nil {
		return nil, fmt.Errorf("%w: %s: %q must map package names to versions", ErrInvalidManifest, m.Path, name)
	}
	return deps, nil
}

// Scripts returns the "scripts" object in file order. A missing section
// yields an empty map.
func (m *Manifest) Scripts() (*orderedmap.OrderedMap[string, string], error) {
	scripts := orderedmap.New[string, string]()
	raw, ok := m.fields.Get("scripts")
	if !ok {
		return scripts, nil
	}
	if err := json.Unmarshal(raw, scripts); err != nil {
		return nil, fmt.Errorf("%w: %s: \"scripts\" must map names to commands: %v", ErrManifestWrite, m.Path, err)
	}
	return scripts, nil
}

// SetScripts replaces the "scripts" object, appending it when absent.
func (m *Manifest) SetScripts(scripts *orderedmap.OrderedMap[string, string]) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := scripts.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeString(&buf, pair.Key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeString(&buf, pair.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	m.fields.Set("scripts", json.RawMessage(buf.Bytes()))
	m.scripts = buf.Bytes()
	return nil
}

// Encode serialises the manifest. A multi-line file keeps every byte outside
// the "scripts" value. A single-line file is re-indented as a whole.
func (m *Manifest) Encode() ([]byte, error) {
	if m.scripts == nil {
		return m.raw, nil
	}
	if !bytes.Contains(bytes.TrimSpace(m.raw), []byte("\n")) {
		return m.normalized()
	}

	var value bytes.Buffer
	if err := json.Indent(&value, m.scripts, m.indent, m.indent); err != nil {
		return nil, err
	}

	start, end, found, err := valueSpan(m.raw, "scripts")
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if found {
		out.Write(m.raw[:start])
		out.Write(value.Bytes())
		out.Write(m.raw[end:])
		return out.Bytes(), nil
	}

	closing := bytes.LastIndexByte(m.raw, '}')
	if closing < 0 {
		return nil, fmt.Errorf("%s: missing closing brace", m.Path)
	}
	last := len(bytes.TrimRight(m.raw[:closing], " \t\r\n"))
	out.Write(m.raw[:last])
	if m.raw[last-1] != '{' {
		out.WriteByte(',')
	}
	out.WriteString("\n" + m.indent + `"scripts": `)
	out.Write(value.Bytes())
	if m.raw[last-1] == '{' {
		out.WriteByte('\n')
		out.Write(m.raw[closing:])
	} else {
		out.Write(m.raw[last:])
	}
	return out.Bytes(), nil
}

// normalized re-indents every field with the detected indent.
func (m *Manifest) normalized() ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	first := true
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			compact.WriteByte(',')
		}
		first = false
		if err := writeString(&compact, pair.Key); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		// json.Compact leaves "&", "<" and ">" as they are.
		if err := json.Compact(&compact, pair.Value); err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", pair.Key, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", m.indent); err != nil {
		return nil, err
	}
	if m.trailingNewline {
		out.WriteByte('\n')
	}
	return out.Bytes(), nil
}

// Save writes the manifest back to its path.
func (m *Manifest) Save() ([]byte, error) {
	data, err := m.Encode()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestWrite, err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(m.Path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(m.Path, data, mode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestWrite, err)
	}
	m.raw = data
	m.scripts = nil
	return data, nil
}

// valueSpan returns the byte range of the top-level value stored under key.
// With duplicate keys the last one wins, matching how fields are parsed.
func valueSpan(data []byte, key string) (start, end int, found bool, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return 0, 0, false, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return 0, 0, false, err
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return 0, 0, false, err
		}
		if name, ok := tok.(string); ok && name == key {
			end = int(dec.InputOffset())
			start = end - len(value)
			found = true
		}
	}
	return start, end, found, nil
}

// writeString encodes s as a JSON string without HTML escaping, so
// commands joined with "&&" stay readable.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// detectIndent returns the whitespace prefix of the first indented line,
// defaulting to two spaces.
func detectIndent(data []byte) string {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || len(trimmed) == len(line) {
			continue
		}
		return line[:len(line)-len(trimmed)]
	}
	return "  "
}
