package document

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// digestDomain versions the digest format so the algorithm can change
// without old digests silently colliding with new ones.
const digestDomain = "sieve/document/v1"

// MarshalCanonical serializes a Value to a canonical JSON form suitable for
// digesting: object keys sorted bytewise, strings NFC-normalized, no HTML
// escaping, stable number formatting. Two structurally equal trees with the
// same number encodings produce identical bytes.
//
// This is a digest format, not a display format; use encoding/json for
// anything user-facing.
func MarshalCanonical(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest returns the hex SHA-256 of the canonical form, domain-separated
// with a null byte so digests from other contexts can never collide.
func Digest(v Value) (string, error) {
	canonical, err := MarshalCanonical(v)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(digestDomain))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func writeCanonical(buf *bytes.Buffer, v Value) error {
	switch val := v.(type) {
	case Null:
		buf.WriteString("null")
		return nil
	case Bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case String:
		return writeCanonicalString(buf, string(val))
	case Number:
		return writeCanonicalNumber(buf, val)
	case Array:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	case *Object:
		buf.WriteByte('{')
		keys := append([]string(nil), val.Keys()...)
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, k); err != nil {
				return fmt.Errorf("key %q: %w", k, err)
			}
			buf.WriteByte(':')
			entry, _ := val.Get(k)
			if err := writeCanonical(buf, entry); err != nil {
				return fmt.Errorf("value for key %q: %w", k, err)
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("unsupported value type: %T", v)
	}
}

// writeCanonicalString emits a JSON string, NFC-normalized and without
// HTML escaping.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	normalized := norm.NFC.String(s)

	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return err
	}

	// json.Encoder appends a trailing newline; strip it.
	out := tmp.Bytes()
	if len(out) > 0 && out[len(out)-1] == '\n' {
		out = out[:len(out)-1]
	}
	buf.Write(out)
	return nil
}

func writeCanonicalNumber(buf *bytes.Buffer, n Number) error {
	if !n.IsFloat() {
		if u, ok := n.Uint64(); ok {
			buf.WriteString(strconv.FormatUint(u, 10))
			return nil
		}
		i, _ := n.Int64()
		buf.WriteString(strconv.FormatInt(i, 10))
		return nil
	}
	f := n.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("non-finite float cannot be serialized")
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}
