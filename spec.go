package infogen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Spec is the parsed input document for one infographic.
// It is read-only for the duration of a render.
type Spec struct {
	Title    string
	Subtitle string
	Meta     Meta

	// Definition is optional; an empty string leaves its panel blank.
	Definition string

	// Stats keeps JSON insertion order.
	Stats        []Entry
	Platforms    []Platform
	Demographics []Entry
	Timeline     []TimelineEvent

	Impacts        []string
	CultureSignals []string
	Buzzwords      []string
	Sources        []string
}

// Meta holds the descriptive fields shown in the title and footer.
type Meta struct {
	Region      string
	Year        Value
	GeneratedBy string
}

// Platform is one donut wedge.
type Platform struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	// Color is a hex string or SVG colour name; empty selects the palette.
	Color string `json:"color,omitempty"`
}

// TimelineEvent is one timeline marker. Period is filled from either the
// "period" or the "month" key.
type TimelineEvent struct {
	Period string
	Event  string
}

// Entry is one key/value pair of an ordered mapping.
type Entry struct {
	Key   string
	Value Value
}

// Value is a display scalar that was either a JSON number or a JSON string.
// Numbers keep their literal text.
type Value struct {
	text    string
	numeric bool
}

// NumberValue returns a numeric Value formatted the shortest way.
func NumberValue(f float64) Value {
	return Value{text: strconv.FormatFloat(f, 'f', -1, 64), numeric: true}
}

// TextValue returns a string Value.
func TextValue(s string) Value {
	return Value{text: s}
}

// String returns the display text.
func (v Value) String() string {
	return v.text
}

// IsNumber reports whether the value came from a JSON number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Float returns the numeric value. Strings holding a number are accepted
// as well, so "42" and 42 both scale a bar.
func (v Value) Float() (float64, bool) {
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '{', '[':
		return fmt.Errorf("expected number or string, got %s", kindOf(data[0]))
	}
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*v = TextValue(string(data))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Value{text: n.String(), numeric: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return []byte(v.text), nil
	}
	return json.Marshal(v.text)
}

// Entries is an ordered JSON object.
type Entries []Entry

// UnmarshalJSON decodes an object without losing key order.
func (e *Entries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	out := Entries{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		out = append(out, Entry{Key: key, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*e = out
	return nil
}

// MarshalJSON encodes the entries as an object in their stored order.
func (e Entries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := entry.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func kindOf(b byte) string {
	if b == '{' {
		return "object"
	}
	return "array"
}
