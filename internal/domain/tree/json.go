package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"localesync/internal/domain"
)

// Decode parses a JSON locale document into a tree. The root must be an
// object and no array may appear at any depth; both cases fail with
// domain.ErrInvalidShape. Scalar leaves that are not strings are kept as
// their literal text (numbers, booleans); null becomes the empty leaf.
func Decode(data []byte) (*Branch, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("décodage JSON: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("%w: la racine doit être un objet", domain.ErrInvalidShape)
	}

	root, err := decodeBranch(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err == nil {
		return nil, fmt.Errorf("%w: contenu après la fin du document", domain.ErrInvalidShape)
	}
	return root, nil
}

func decodeBranch(dec *json.Decoder) (*Branch, error) {
	b := NewBranch()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("décodage JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: clé non textuelle", domain.ErrInvalidShape)
		}
		child, err := decodeValue(dec, key)
		if err != nil {
			return nil, err
		}
		b.Set(key, child)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, fmt.Errorf("décodage JSON: %w", err)
	}
	return b, nil
}

func decodeValue(dec *json.Decoder, key string) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("décodage JSON: %w", err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeBranch(dec)
		default: // '['
			return nil, fmt.Errorf("%w: tableau sous la clé %q", domain.ErrInvalidShape, key)
		}
	case string:
		return Leaf(v), nil
	case json.Number:
		return Leaf(v.String()), nil
	case bool:
		return Leaf(strconv.FormatBool(v)), nil
	case nil:
		return Leaf(""), nil
	default:
		return nil, fmt.Errorf("%w: valeur inattendue sous la clé %q", domain.ErrInvalidShape, key)
	}
}

// Encode renders the tree as indented JSON in document order, with a trailing
// newline so persisted files stay diff-friendly.
func Encode(b *Branch) []byte {
	var buf bytes.Buffer
	encodeBranch(&buf, b, 0)
	buf.WriteByte('\n')
	return buf.Bytes()
}

func encodeBranch(buf *bytes.Buffer, b *Branch, depth int) {
	if b.Len() == 0 {
		buf.WriteString("{}")
		return
	}
	buf.WriteString("{\n")
	for i, key := range b.keys {
		indent(buf, depth+1)
		writeString(buf, key)
		buf.WriteString(": ")
		switch v := b.children[key].(type) {
		case Leaf:
			writeString(buf, string(v))
		case *Branch:
			encodeBranch(buf, v, depth+1)
		}
		if i < len(b.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	indent(buf, depth)
	buf.WriteByte('}')
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

func writeString(buf *bytes.Buffer, s string) {
	raw, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the tree encodable anyway.
		raw = []byte(`""`)
	}
	buf.Write(raw)
}
