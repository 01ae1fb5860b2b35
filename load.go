package infogen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultDataPath is the input path used when none is given.
const DefaultDataPath = "data.json"

// rawSpec mirrors the JSON document. Pointers distinguish absent keys
// from empty values.
type rawSpec struct {
	Title      *string    `json:"title"`
	Subtitle   *string    `json:"subtitle"`
	Meta       *rawMeta   `json:"meta"`
	Definition string     `json:"definition"`
	Stats      *Entries   `json:"stats"`
	Platforms  []Platform `json:"platforms"`
	// Slices cannot tell a missing key from an empty list; see presentKeys.
	Demographics   *Entries   `json:"demographics"`
	Timeline       []rawEvent `json:"timeline"`
	Impacts        []string   `json:"impacts"`
	CultureSignals []string   `json:"culture_signals"`
	Buzzwords      []string   `json:"buzzwords"`
	Sources        []string   `json:"sources_placeholder"`
}

type rawMeta struct {
	Region      *string `json:"region"`
	Year        *Value  `json:"year"`
	GeneratedBy *string `json:"generated_by"`
}

type rawEvent struct {
	Period *string `json:"period"`
	Month  *string `json:"month"`
	Event  string  `json:"event"`
}

// Load reads and parses the document at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputError{Path: path, Err: ErrNotFound}
		}
		return nil, &InputError{Path: path, Err: err}
	}
	s, err := parse(data)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			ie.Path = path
		}
		return nil, err
	}
	Logger().Debug("infogen: loaded input", "path", path,
		"stats", len(s.Stats), "platforms", len(s.Platforms), "timeline", len(s.Timeline))
	return s, nil
}

// Decode parses a document from r.
func Decode(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &InputError{Err: err}
	}
	return parse(data)
}

func parse(data []byte) (*Spec, error) {
	var raw rawSpec
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, &InputError{Field: fieldOf(err), Err: fmt.Errorf("%w: %v", ErrParse, err)}
	}
	// Trailing garbage after the document is still malformed input.
	if _, err := dec.Token(); err != io.EOF {
		return nil, &InputError{Err: fmt.Errorf("%w: trailing data after document", ErrParse)}
	}

	present := presentKeys(data)
	if err := raw.check(present); err != nil {
		return nil, err
	}
	return raw.normalize(), nil
}

// check enforces the required keys.
func (r *rawSpec) check(present map[string]bool) error {
	missing := func(field string) error {
		return &InputError{Field: field, Err: ErrMissingField}
	}
	switch {
	case r.Title == nil:
		return missing("title")
	case r.Subtitle == nil:
		return missing("subtitle")
	case r.Meta == nil:
		return missing("meta")
	case r.Meta.Region == nil:
		return missing("meta.region")
	case r.Meta.Year == nil:
		return missing("meta.year")
	case r.Meta.GeneratedBy == nil:
		return missing("meta.generated_by")
	case r.Stats == nil:
		return missing("stats")
	case !present["platforms"]:
		return missing("platforms")
	case r.Demographics == nil:
		return missing("demographics")
	case !present["timeline"]:
		return missing("timeline")
	}
	return nil
}

// normalize converts the raw document into a Spec, reconciling the
// alternate timeline key names.
func (r *rawSpec) normalize() *Spec {
	s := &Spec{
		Title:      *r.Title,
		Subtitle:   *r.Subtitle,
		Definition: r.Definition,
		Meta: Meta{
			Region:      *r.Meta.Region,
			Year:        *r.Meta.Year,
			GeneratedBy: *r.Meta.GeneratedBy,
		},
		Stats:          *r.Stats,
		Platforms:      r.Platforms,
		Demographics:   *r.Demographics,
		Impacts:        r.Impacts,
		CultureSignals: r.CultureSignals,
		Buzzwords:      r.Buzzwords,
		Sources:        r.Sources,
	}
	s.Timeline = make([]TimelineEvent, 0, len(r.Timeline))
	for _, ev := range r.Timeline {
		var period string
		switch {
		case ev.Period != nil:
			period = *ev.Period
		case ev.Month != nil:
			period = *ev.Month
		}
		s.Timeline = append(s.Timeline, TimelineEvent{Period: period, Event: ev.Event})
	}
	return s
}

// presentKeys returns the top-level keys of a JSON object. It is only
// called after a successful decode, so errors are ignored.
func presentKeys(data []byte) map[string]bool {
	var top map[string]json.RawMessage
	_ = json.Unmarshal(data, &top)
	keys := make(map[string]bool, len(top))
	for k, v := range top {
		if !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			keys[k] = true
		}
	}
	return keys
}

// fieldOf extracts the offending key path from a decode error, if any.
func fieldOf(err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return te.Field
	}
	return ""
}
