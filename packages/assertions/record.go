package assertions

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/abdul-hamid-achik/pagespec/packages/core/config"
)

// Record is the declarative form of an assertion as authored in a
// benchmark dataset. Kind-specific fields are ignored by other kinds.
type Record struct {
	DocumentID string `json:"document-id" yaml:"document-id"`
	Page       int    `json:"page" yaml:"page"`
	ID         string `json:"id" yaml:"id"`
	Type       string `json:"type" yaml:"type"`
	MaxDiffs   int    `json:"max_diffs,omitempty" yaml:"max_diffs,omitempty"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	Checked    string `json:"checked,omitempty" yaml:"checked,omitempty"`

	// present / absent
	Text          string `json:"text,omitempty" yaml:"text,omitempty"`
	CaseSensitive *bool  `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty"`
	FirstN        *int   `json:"first_n,omitempty" yaml:"first_n,omitempty"`
	LastN         *int   `json:"last_n,omitempty" yaml:"last_n,omitempty"`

	// order
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty" yaml:"after,omitempty"`

	// table
	Cell        string `json:"cell,omitempty" yaml:"cell,omitempty"`
	Up          string `json:"up,omitempty" yaml:"up,omitempty"`
	Down        string `json:"down,omitempty" yaml:"down,omitempty"`
	Left        string `json:"left,omitempty" yaml:"left,omitempty"`
	Right       string `json:"right,omitempty" yaml:"right,omitempty"`
	TopHeading  string `json:"top_heading,omitempty" yaml:"top_heading,omitempty"`
	LeftHeading string `json:"left_heading,omitempty" yaml:"left_heading,omitempty"`

	// baseline
	MaxRepeats *int `json:"max_repeats,omitempty" yaml:"max_repeats,omitempty"`

	// math
	Math string `json:"math,omitempty" yaml:"math,omitempty"`
}

// New builds the assertion variant named by rec.Type.
func New(rec Record, opts ...Option) (*Assertion, error) {
	kind, err := ParseKind(rec.Type)
	if err != nil {
		return nil, &ValidationError{Field: "type", Reason: "unrecognized", Err: err}
	}
	checked, err := ParseReviewState(rec.Checked)
	if err != nil {
		return nil, &ValidationError{Field: "checked", Reason: "unrecognized", Err: err}
	}

	base := Base{
		DocumentID: rec.DocumentID,
		Page:       rec.Page,
		ID:         rec.ID,
		Kind:       kind,
		MaxDiffs:   rec.MaxDiffs,
		URL:        rec.URL,
		Checked:    checked,
	}

	switch kind {
	case KindPresent, KindAbsent:
		return NewPresence(base, Presence{
			Text:          rec.Text,
			CaseSensitive: rec.CaseSensitive == nil || *rec.CaseSensitive,
			FirstN:        deref(rec.FirstN),
			LastN:         deref(rec.LastN),
		}, opts...)
	case KindOrder:
		return NewOrder(base, Order{Before: rec.Before, After: rec.After}, opts...)
	case KindTable:
		return NewTable(base, Table{
			Cell:        rec.Cell,
			Up:          rec.Up,
			Down:        rec.Down,
			Left:        rec.Left,
			Right:       rec.Right,
			TopHeading:  rec.TopHeading,
			LeftHeading: rec.LeftHeading,
		}, opts...)
	case KindBaseline:
		bl := Baseline{}
		if rec.MaxRepeats != nil {
			if *rec.MaxRepeats <= 0 {
				return nil, &ValidationError{Field: "max_repeats", Reason: "must be greater than 0"}
			}
			bl.MaxRepeats = *rec.MaxRepeats
		}
		return NewBaseline(base, bl, opts...)
	case KindMath:
		return NewMath(base, Math{Expression: rec.Math}, opts...)
	}
	return nil, &ValidationError{Field: "type", Reason: fmt.Sprintf("unhandled kind %s", kind)}
}

// FromJSON decodes one JSON assertion record and builds the assertion.
func FromJSON(data []byte, opts ...Option) (*Assertion, error) {
	rec, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return New(rec, opts...)
}

// FromYAML decodes one YAML assertion mapping and builds the assertion.
// The mapping goes through the same schema check as JSON records.
func FromYAML(data []byte, opts ...Option) (*Assertion, error) {
	data, err := config.ToJSON(data, config.FormatYAML)
	if err != nil {
		return nil, &ValidationError{Field: "(root)", Reason: "unreadable YAML", Err: err}
	}
	return FromJSON(data, opts...)
}

// DecodeJSON checks a JSON record against the record schema and reads it
// into a Record. The document id may be given as "document-id" or "pdf".
func DecodeJSON(data []byte) (Record, error) {
	if !gjson.ValidBytes(data) {
		return Record{}, &ValidationError{Field: "(root)", Reason: "invalid JSON"}
	}
	if err := checkSchema(data); err != nil {
		return Record{}, err
	}

	doc := gjson.ParseBytes(data)
	docID := doc.Get("document-id")
	if !docID.Exists() {
		docID = doc.Get("pdf")
	}

	return Record{
		DocumentID:    docID.String(),
		Page:          int(doc.Get("page").Int()),
		ID:            doc.Get("id").String(),
		Type:          doc.Get("type").String(),
		MaxDiffs:      int(doc.Get("max_diffs").Int()),
		URL:           doc.Get("url").String(),
		Checked:       doc.Get("checked").String(),
		Text:          doc.Get("text").String(),
		CaseSensitive: optBool(doc.Get("case_sensitive")),
		FirstN:        optInt(doc.Get("first_n")),
		LastN:         optInt(doc.Get("last_n")),
		Before:        doc.Get("before").String(),
		After:         doc.Get("after").String(),
		Cell:          doc.Get("cell").String(),
		Up:            doc.Get("up").String(),
		Down:          doc.Get("down").String(),
		Left:          doc.Get("left").String(),
		Right:         doc.Get("right").String(),
		TopHeading:    doc.Get("top_heading").String(),
		LeftHeading:   doc.Get("left_heading").String(),
		MaxRepeats:    optInt(doc.Get("max_repeats")),
		Math:          doc.Get("math").String(),
	}, nil
}

// Record returns the declarative form of the assertion.
func (a *Assertion) Record() Record {
	rec := Record{
		DocumentID: a.DocumentID,
		Page:       a.Page,
		ID:         a.ID,
		Type:       a.Kind.String(),
		MaxDiffs:   a.MaxDiffs,
		URL:        a.URL,
	}
	if a.Checked != Unchecked {
		rec.Checked = a.Checked.String()
	}

	switch {
	case a.Presence != nil:
		rec.Text = a.Presence.Text
		caseSensitive := a.Presence.CaseSensitive
		rec.CaseSensitive = &caseSensitive
		rec.FirstN = nonZero(a.Presence.FirstN)
		rec.LastN = nonZero(a.Presence.LastN)
	case a.Order != nil:
		rec.Before, rec.After = a.Order.Before, a.Order.After
	case a.Table != nil:
		rec.Cell = a.Table.Cell
		rec.Up, rec.Down = a.Table.Up, a.Table.Down
		rec.Left, rec.Right = a.Table.Left, a.Table.Right
		rec.TopHeading, rec.LeftHeading = a.Table.TopHeading, a.Table.LeftHeading
	case a.Baseline != nil:
		rec.MaxRepeats = nonZero(a.Baseline.MaxRepeats)
	case a.Math != nil:
		rec.Math = a.Math.Expression
	}
	return rec
}

// MarshalJSON encodes the assertion as its record.
func (a *Assertion) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}

func optInt(r gjson.Result) *int {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := int(r.Int())
	return &v
}

func optBool(r gjson.Result) *bool {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	v := r.Bool()
	return &v
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func nonZero(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
