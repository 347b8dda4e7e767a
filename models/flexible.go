package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleInt can unmarshal from a number, a numeric string or null.
// Fractional values are truncated toward zero. Values that cannot be read as
// a number, or that do not fit in an int, are kept as Malformed instead of
// failing the whole request, so the default policy decides what to do.
type FlexibleInt struct {
	Value     int
	Set       bool
	Malformed bool
}

// Int returns a set FlexibleInt.
func Int(v int) FlexibleInt {
	return FlexibleInt{Value: v, Set: true}
}

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	*f = FlexibleInt{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			f.Malformed = true
			return nil
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return nil
		}
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(parsed) || parsed < math.MinInt || parsed >= math.MaxInt {
		f.Malformed = true
		return nil
	}

	f.Value = int(parsed)
	f.Set = true
	return nil
}

func (f FlexibleInt) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Value)), nil
}

// Ref is a nested {"id": ...} reference such as jobType or city.
type Ref struct {
	ID FlexibleInt `json:"id" swaggertype:"integer"`
}

// UnmarshalJSON reads an object reference. Anything else, such as a bare
// number, marks the id as Malformed.
func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		r.ID.Malformed = true
		return nil
	}

	type plain Ref
	var fields plain
	if err := json.Unmarshal(data, &fields); err != nil {
		r.ID.Malformed = true
		return nil
	}
	*r = Ref(fields)
	return nil
}

func (r *Ref) id() FlexibleInt {
	if r == nil {
		return FlexibleInt{}
	}
	return r.ID
}

// JobID is an opaque job identifier that keeps its JSON form, number or string,
// so responses echo ids the way upstream sent them.
type JobID struct {
	raw json.RawMessage
}

// JobIDFromString builds an id from its string form. Canonical integers are
// encoded as JSON numbers.
func JobIDFromString(s string) JobID {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return JobID{raw: json.RawMessage(s)}
	}
	quoted, _ := json.Marshal(s)
	return JobID{raw: quoted}
}

func (id *JobID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		id.raw = nil
		return nil
	}
	id.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (id JobID) MarshalJSON() ([]byte, error) {
	if len(id.raw) == 0 {
		return []byte("null"), nil
	}
	return id.raw, nil
}

// IsZero reports whether the id was absent or null.
func (id JobID) IsZero() bool {
	return len(id.raw) == 0
}

// String returns the id used for matching: the unquoted string or the raw
// number text.
func (id JobID) String() string {
	if len(id.raw) == 0 {
		return ""
	}
	if id.raw[0] == '"' {
		var s string
		if err := json.Unmarshal(id.raw, &s); err == nil {
			return s
		}
	}
	return string(id.raw)
}
