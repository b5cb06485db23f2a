package content

import (
	"fmt"
	"strconv"
	"time"
)

// Fields is the decoded, untyped front matter of a content file.
// A nil Fields is valid and behaves as an empty header.
type Fields map[string]any

// Has reports whether key is present, even with a null value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// Scalar returns the value under key rendered as a string.
// ok is false when the key is absent, null, or holds a mapping or sequence.
func (f Fields) Scalar(key string) (string, bool) {
	v, present := f[key]
	if !present {
		return "", false
	}
	return scalarString(v)
}

// StringOr returns the scalar under key, or def when there is none.
func (f Fields) StringOr(key, def string) string {
	if s, ok := f.Scalar(key); ok {
		return s
	}
	return def
}

// Strings returns the sequence under key as strings. Scalar items are
// stringified in order; null, mapping and nested sequence items are
// dropped. Anything other than a sequence yields an empty, non-nil slice.
func (f Fields) Strings(key string) []string {
	items, ok := f[key].([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// IsSequence reports whether key holds a sequence.
func (f Fields) IsSequence(key string) bool {
	_, ok := f[key].([]any)
	return ok
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly), true
		}
		return t.Format(time.RFC3339), true
	case fmt.Stringer:
		// TOML local dates and times.
		return t.String(), true
	default:
		return "", false
	}
}
