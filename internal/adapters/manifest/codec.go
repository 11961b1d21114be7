package manifest

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"go.trai.ch/rscript/internal/core/domain"
	"go.trai.ch/rscript/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestCodec = (*Codec)(nil)

// Codec converts between TOML text and manifest trees.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses TOML text into a table.
func (c *Codec) Decode(text string) (domain.Table, error) {
	raw := make(map[string]any)
	if _, err := toml.Decode(text, &raw); err != nil {
		return nil, zerr.Wrap(domain.ErrManifestParseFailed, err.Error())
	}
	return fromMap(raw), nil
}

// Encode serializes a table as TOML. Keys are sorted, plain values come before
// sub-tables, and nested tables are not indented.
func (c *Codec) Encode(manifest domain.Table) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(toMap(manifest)); err != nil {
		return "", zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	return buf.String(), nil
}

func fromMap(m map[string]any) domain.Table {
	t := make(domain.Table, len(m))
	for k, v := range m {
		t[k] = fromValue(v)
	}
	return t
}

func fromValue(v any) domain.Node {
	switch val := v.(type) {
	case map[string]any:
		return fromMap(val)
	case []map[string]any:
		arr := make(domain.Array, len(val))
		for i, item := range val {
			arr[i] = fromMap(item)
		}
		return arr
	case []any:
		arr := make(domain.Array, len(val))
		for i, item := range val {
			arr[i] = fromValue(item)
		}
		return arr
	default:
		return domain.Scalar{Value: val}
	}
}

func toMap(t domain.Table) map[string]any {
	m := make(map[string]any, len(t))
	for k, v := range t {
		m[k] = toValue(v)
	}
	return m
}

func toValue(n domain.Node) any {
	switch val := n.(type) {
	case domain.Table:
		return toMap(val)
	case domain.Array:
		if tables, ok := tableArray(val); ok {
			return tables
		}
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toValue(item)
		}
		return out
	case domain.Scalar:
		return val.Value
	default:
		return nil
	}
}

// tableArray converts a non-empty array holding only tables into an array of tables.
func tableArray(arr domain.Array) ([]map[string]any, bool) {
	if len(arr) == 0 {
		return nil, false
	}
	out := make([]map[string]any, len(arr))
	for i, item := range arr {
		t, ok := item.(domain.Table)
		if !ok {
			return nil, false
		}
		out[i] = toMap(t)
	}
	return out, true
}
