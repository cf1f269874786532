package goSession

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tag keys for values JSON cannot represent natively. The leading space keeps
// them out of the way of ordinary identifiers; user maps that happen to look
// like a tagged value are wrapped with the escape tag.
const (
	tagTime   = " t"
	tagBytes  = " b"
	tagEscape = " e"
)

// Codec converts a session data map to and from an opaque byte payload using
// a tagged-JSON convention: strings, numbers, booleans, nil, and nested
// maps/slices pass through JSON, while timestamps and raw bytes are wrapped
// in single-key tag objects so they survive the round trip unambiguously.
// Integral numbers decode as int64, everything else as float64.
//
// Encoding is deterministic (object keys are emitted sorted), so saving an
// unchanged session twice produces byte-identical payloads.
type Codec struct{}

// Encode serializes a data map.
func (Codec) Encode(data map[string]any) ([]byte, error) {
	tagged, err := tagValue(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tagged)
}

// Decode deserializes a payload produced by Encode. Any malformed input,
// including valid JSON that is not an object, is an error; callers treat it
// as "no session".
func (Codec) Decode(payload []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("session payload: %w", err)
	}
	value, err := untagValue(raw)
	if err != nil {
		return nil, err
	}
	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("session payload: not an object")
	}
	return data, nil
}

func tagValue(v any) (any, error) {
	switch value := v.(type) {
	case time.Time:
		return map[string]any{tagTime: value.Format(time.RFC3339Nano)}, nil
	case []byte:
		return map[string]any{tagBytes: base64.StdEncoding.EncodeToString(value)}, nil
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			tagged, err := tagValue(inner)
			if err != nil {
				return nil, err
			}
			out[k] = tagged
		}
		if looksTagged(value) {
			return map[string]any{tagEscape: out}, nil
		}
		return out, nil
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			tagged, err := tagValue(inner)
			if err != nil {
				return nil, err
			}
			out[i] = tagged
		}
		return out, nil
	default:
		return value, nil
	}
}

func untagValue(v any) (any, error) {
	switch value := v.(type) {
	case map[string]any:
		if len(value) == 1 {
			if wrapped, ok := value[tagTime].(string); ok {
				ts, err := time.Parse(time.RFC3339Nano, wrapped)
				if err != nil {
					return nil, fmt.Errorf("session payload: bad timestamp: %w", err)
				}
				return ts, nil
			}
			if wrapped, ok := value[tagBytes].(string); ok {
				raw, err := base64.StdEncoding.DecodeString(wrapped)
				if err != nil {
					return nil, fmt.Errorf("session payload: bad bytes: %w", err)
				}
				return raw, nil
			}
			if wrapped, ok := value[tagEscape].(map[string]any); ok {
				return untagMap(wrapped)
			}
		}
		return untagMap(value)
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			untagged, err := untagValue(inner)
			if err != nil {
				return nil, err
			}
			out[i] = untagged
		}
		return out, nil
	case json.Number:
		if strings.ContainsAny(value.String(), ".eE") {
			f, err := value.Float64()
			if err != nil {
				return nil, fmt.Errorf("session payload: bad number: %w", err)
			}
			return f, nil
		}
		n, err := value.Int64()
		if err != nil {
			// Integral but out of int64 range.
			f, ferr := value.Float64()
			if ferr != nil {
				return nil, fmt.Errorf("session payload: bad number: %w", ferr)
			}
			return f, nil
		}
		return n, nil
	default:
		return value, nil
	}
}

func untagMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, inner := range m {
		untagged, err := untagValue(inner)
		if err != nil {
			return nil, err
		}
		out[k] = untagged
	}
	return out, nil
}

func looksTagged(m map[string]any) bool {
	if len(m) != 1 {
		return false
	}
	for k := range m {
		return strings.HasPrefix(k, " ")
	}
	return false
}
