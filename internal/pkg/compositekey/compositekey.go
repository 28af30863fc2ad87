// internal/pkg/compositekey/compositekey.go
package compositekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the type of one key column
type Kind int

const (
	KindText Kind = iota
	KindUUID
	KindInt
	KindDate
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindUUID:
		return "uuid"
	case KindInt:
		return "int"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	default:
		return "text"
	}
}

// Part is one column of a composite key
type Part struct {
	Column string
	Kind   Kind
}

// Shape is the ordered list of key columns for a table
type Shape []Part

// Key is a normalized composite key. Values are canonical: uuid.UUID for
// uuid parts, int64 for ints, and UTC time.Time for dates and timestamps
// (dates truncated to midnight).
type Key struct {
	shape  Shape
	values []any
}

// layouts accepted for date and timestamp parts, tried in order
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Columns returns the key's column names in order
func (s Shape) Columns() []string {
	cols := make([]string, len(s))
	for i, p := range s {
		cols[i] = p.Column
	}
	return cols
}

// Normalize converts raw key values, one per part, to their canonical form
func (s Shape) Normalize(raw ...any) (Key, error) {
	if len(raw) != len(s) {
		return Key{}, fmt.Errorf("composite key expects %d values, got %d", len(s), len(raw))
	}

	values := make([]any, len(s))
	for i, p := range s {
		v, err := normalizePart(p.Kind, raw[i])
		if err != nil {
			return Key{}, fmt.Errorf("key column %s: %w", p.Column, err)
		}
		values[i] = v
	}

	return Key{shape: s, values: values}, nil
}

// Values returns the canonical values in column order
func (k Key) Values() []any {
	out := make([]any, len(k.values))
	copy(out, k.values)
	return out
}

// Map returns the key as column → canonical value
func (k Key) Map() map[string]any {
	m := make(map[string]any, len(k.values))
	for i, p := range k.shape {
		m[p.Column] = k.values[i]
	}
	return m
}

// Equal reports whether two keys of the same shape address the same row
func (k Key) Equal(other Key) bool {
	if len(k.values) != len(other.values) {
		return false
	}
	for i := range k.values {
		a, b := k.values[i], other.values[i]
		if ta, ok := a.(time.Time); ok {
			tb, ok := b.(time.Time)
			if !ok || !ta.Equal(tb) {
				return false
			}
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

func (k Key) String() string {
	parts := make([]string, len(k.values))
	for i, v := range k.values {
		switch t := v.(type) {
		case time.Time:
			if k.shape[i].Kind == KindDate {
				parts[i] = t.Format("2006-01-02")
			} else {
				parts[i] = t.Format(time.RFC3339Nano)
			}
		default:
			parts[i] = fmt.Sprint(t)
		}
	}
	return strings.Join(parts, "/")
}

func normalizePart(kind Kind, raw any) (any, error) {
	switch kind {
	case KindUUID:
		return normalizeUUID(raw)
	case KindInt:
		return normalizeInt(raw)
	case KindDate:
		return ParseDate(raw)
	case KindTimestamp:
		return ParseTime(raw)
	default:
		switch v := raw.(type) {
		case string:
			if v == "" {
				return nil, fmt.Errorf("empty value")
			}
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		default:
			return nil, fmt.Errorf("unsupported text value %T", raw)
		}
	}
}

func normalizeUUID(raw any) (uuid.UUID, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		if v == uuid.Nil {
			return uuid.Nil, fmt.Errorf("nil uuid")
		}
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", v, err)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("unsupported uuid value %T", raw)
	}
}

func normalizeInt(raw any) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q: %w", v, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported integer value %T", raw)
	}
}

// ParseTime accepts a time.Time or any of the supported date/timestamp
// layouts and returns it in UTC. Strings without a zone are read as UTC.
func ParseTime(raw any) (time.Time, error) {
	t, err := parseTime(raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// ParseDate returns the calendar date of raw as midnight UTC. The day is
// read in the value's own offset: "2025-06-01T00:00:00+07:00" is June 1.
func ParseDate(raw any) (time.Time, error) {
	t, err := parseTime(raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseTime keeps the offset the value was written in
func parseTime(raw any) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("zero time")
		}
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("nil time")
		}
		return parseTime(*v)
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized date %q", v)
	default:
		return time.Time{}, fmt.Errorf("unsupported time value %T", raw)
	}
}
