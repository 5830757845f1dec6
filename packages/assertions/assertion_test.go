package assertions

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBase(kind Kind) Base {
	return Base{DocumentID: "test.pdf", Page: 1, ID: "test_id", Kind: kind}
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.Equal(t, field, verr.Field)
}

func TestBase_Validation(t *testing.T) {
	tests := []struct {
		name  string
		base  Base
		field string
	}{
		{name: "empty document", base: Base{Page: 1, ID: "id", Kind: KindBaseline}, field: "document-id"},
		{name: "empty id", base: Base{DocumentID: "test.pdf", Page: 1, Kind: KindBaseline}, field: "id"},
		{name: "negative max diffs", base: Base{DocumentID: "test.pdf", ID: "id", Kind: KindBaseline, MaxDiffs: -1}, field: "max_diffs"},
		{name: "unknown kind", base: Base{DocumentID: "test.pdf", ID: "id"}, field: "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBaseline(tt.base, Baseline{}, quiet())
			requireField(t, err, tt.field)
		})
	}
}

func TestBase_Defaults(t *testing.T) {
	a, err := NewBaseline(newBase(KindBaseline), Baseline{}, quiet())
	require.NoError(t, err)
	assert.Equal(t, "test.pdf", a.DocumentID)
	assert.Equal(t, 1, a.Page)
	assert.Equal(t, 0, a.MaxDiffs)
	assert.Equal(t, Unchecked, a.Checked)
	assert.Empty(t, a.URL)

	a.SetChecked(Verified)
	assert.Equal(t, Verified, a.Checked)
}

func TestConstructors_KindMismatch(t *testing.T) {
	_, err := NewOrder(newBase(KindPresent), Order{Before: "first text", After: "second text"})
	requireField(t, err, "type")

	_, err = NewTable(newBase(KindPresent), Table{Cell: "target cell"})
	requireField(t, err, "type")

	_, err = NewPresence(newBase(KindOrder), Presence{Text: "x"})
	requireField(t, err, "type")

	_, err = NewMath(newBase(KindPresent), Math{Expression: "a + b = c"}, WithRenderer(blankRenderer))
	requireField(t, err, "type")
}

func TestConstructors_RequiredFields(t *testing.T) {
	_, err := NewPresence(newBase(KindPresent), Presence{Text: ""})
	requireField(t, err, "text")

	_, err = NewPresence(newBase(KindAbsent), Presence{Text: "x", FirstN: -1})
	requireField(t, err, "first_n")

	_, err = NewOrder(newBase(KindOrder), Order{Before: "", After: "second text"})
	requireField(t, err, "before")

	_, err = NewOrder(newBase(KindOrder), Order{Before: "first text", After: ""})
	requireField(t, err, "after")

	_, err = NewTable(newBase(KindTable), Table{})
	requireField(t, err, "cell")

	_, err = NewMath(newBase(KindMath), Math{}, WithRenderer(blankRenderer))
	requireField(t, err, "math")
}

func TestConstructors_BlankFields(t *testing.T) {
	_, err := NewPresence(newBase(KindPresent), Presence{Text: "   "})
	requireField(t, err, "text")

	_, err = NewPresence(newBase(KindAbsent), Presence{Text: "\n\t\u00a0"})
	requireField(t, err, "text")

	_, err = NewOrder(newBase(KindOrder), Order{Before: " ", After: "second text"})
	requireField(t, err, "before")

	_, err = NewOrder(newBase(KindOrder), Order{Before: "first text", After: "\t"})
	requireField(t, err, "after")

	_, err = NewTable(newBase(KindTable), Table{Cell: " "})
	requireField(t, err, "cell")

	_, err = NewMath(newBase(KindMath), Math{Expression: "  "}, WithRenderer(blankRenderer))
	requireField(t, err, "math")
}

func TestRun_WithoutPayloadPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrNotImplemented)
	}()

	a := &Assertion{Base: newBase(KindBaseline)}
	a.Run("content")
}

func presence(t *testing.T, kind Kind, p Presence, maxDiffs int) *Assertion {
	t.Helper()
	b := newBase(kind)
	b.MaxDiffs = maxDiffs
	a, err := NewPresence(b, p, quiet())
	require.NoError(t, err)
	return a
}

func TestPresence(t *testing.T) {
	a := presence(t, KindPresent, Presence{Text: "target text", CaseSensitive: true}, 0)
	passed, _ := a.Run("This is some target text in a document")
	assert.True(t, passed)

	a = presence(t, KindPresent, Presence{Text: "missing text", CaseSensitive: true}, 0)
	passed, explanation := a.Run("This document doesn't have the target")
	assert.False(t, passed)
	assert.Contains(t, explanation, "missing text")
}

func TestPresence_EditBudget(t *testing.T) {
	haystack := "This is some targett textt in a document"

	a := presence(t, KindPresent, Presence{Text: "target text", CaseSensitive: true}, 2)
	passed, _ := a.Run(haystack)
	assert.True(t, passed)

	a = presence(t, KindPresent, Presence{Text: "target text", CaseSensitive: true}, 0)
	passed, explanation := a.Run(haystack)
	assert.False(t, passed)
	assert.Contains(t, explanation, "target text")
}

func TestAbsent(t *testing.T) {
	a := presence(t, KindAbsent, Presence{Text: "target text", CaseSensitive: true}, 0)
	passed, explanation := a.Run("This is some target text in a document")
	assert.False(t, passed)
	assert.Contains(t, explanation, "target text")

	a = presence(t, KindAbsent, Presence{Text: "missing text", CaseSensitive: true}, 0)
	passed, _ = a.Run("This document doesn't have the target")
	assert.True(t, passed)
}

func TestAbsent_EditBudget(t *testing.T) {
	a := presence(t, KindAbsent, Presence{Text: "target text", CaseSensitive: true}, 2)

	tests := []struct {
		haystack string
		passed   bool
	}{
		{"This is some target text in a document", false},
		{"This is some targett text in a document", false},
		{"This is some targettt text in a document", false},
		{"This is some targetttt text in a document", true},
	}
	for _, tt := range tests {
		passed, _ := a.Run(tt.haystack)
		assert.Equal(t, tt.passed, passed, tt.haystack)
	}
}

func TestPresence_CaseInsensitive(t *testing.T) {
	a := presence(t, KindPresent, Presence{Text: "TARGET TEXT"}, 0)
	passed, _ := a.Run("This is some target text in a document")
	assert.True(t, passed)

	a = presence(t, KindAbsent, Presence{Text: "TARGET TEXT"}, 0)
	passed, _ = a.Run("This is some target text in a document")
	assert.False(t, passed)

	a = presence(t, KindPresent, Presence{Text: "TARGET TEXT", CaseSensitive: true}, 0)
	passed, _ = a.Run("This is some target text in a document")
	assert.False(t, passed)
}

func TestPresence_Windows(t *testing.T) {
	short := "beginning of text, but not the end"
	long := "beginning of text, middle part, but not the end"

	tests := []struct {
		name     string
		p        Presence
		haystack string
		passed   bool
	}{
		{"first n hit", Presence{Text: "beginning", FirstN: 20}, short, true},
		{"first n miss", Presence{Text: "end", FirstN: 20}, short, false},
		{"last n hit", Presence{Text: "end", LastN: 20}, short, true},
		{"last n miss", Presence{Text: "beginning", LastN: 20}, short, false},
		{"both windows head", Presence{Text: "beginning", FirstN: 15, LastN: 10}, long, true},
		{"both windows middle", Presence{Text: "middle", FirstN: 15, LastN: 10}, long, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.p.CaseSensitive = true
			a := presence(t, KindPresent, tt.p, 0)
			passed, explanation := a.Run(tt.haystack)
			assert.Equal(t, tt.passed, passed, explanation)
		})
	}
}

func TestPresence_ZeroValueIsCaseInsensitive(t *testing.T) {
	a, err := NewPresence(newBase(KindPresent), Presence{Text: "TARGET"}, quiet())
	require.NoError(t, err)
	assert.False(t, a.Presence.CaseSensitive)

	passed, _ := a.Run("a target here")
	assert.True(t, passed)
}

func TestPresence_NormalizesBothSides(t *testing.T) {
	a := presence(t, KindPresent, Presence{Text: "“quoted”  text — here", CaseSensitive: true}, 0)
	passed, _ := a.Run("Some \"quoted\"\ntext - here.")
	assert.True(t, passed)
}

func TestPresenceAbsence_Complementary(t *testing.T) {
	texts := []string{
		"alpha beta gamma",
		"The table below lists results.",
		"x",
		"line one\nline two\n\nline three",
	}
	for _, text := range texts {
		for _, target := range []string{text, text[:1], text[len(text)-1:]} {
			present := presence(t, KindPresent, Presence{Text: target, CaseSensitive: true}, 0)
			absent := presence(t, KindAbsent, Presence{Text: target, CaseSensitive: true}, 0)

			p, _ := present.Run(text)
			ab, _ := absent.Run(text)
			assert.True(t, p, "present %q in %q", target, text)
			assert.False(t, ab, "absent %q in %q", target, text)
		}
	}
}

func order(t *testing.T, before, after string, maxDiffs int) *Assertion {
	t.Helper()
	b := newBase(KindOrder)
	b.MaxDiffs = maxDiffs
	a, err := NewOrder(b, Order{Before: before, After: after}, quiet())
	require.NoError(t, err)
	return a
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		after    string
		maxDiffs int
		haystack string
		passed   bool
	}{
		{"correct order", "first", "second", 0, "This has first and then second in correct order", true},
		{"incorrect order", "second", "first", 0, "This has first and then second in correct order", false},
		{"before missing", "missing", "present", 0, "This text has present but not the other word", false},
		{"after missing", "present", "missing", 0, "This text has present but not the other word", false},
		{"fuzzy", "first", "second", 1, "This has firsst and then secand in correct order", true},
		{"self order", "target", "target", 0, "This has target and then target again", true},
		{"self order single occurrence", "target", "target", 0, "only one target here", true},
		{"interleaved", "B", "A", 0, "A B A B", true},
		{"shared start", "ab", "abc", 0, "abc", false},
		{"shared start then later", "ab", "abc", 0, "abc and abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, explanation := order(t, tt.before, tt.after, tt.maxDiffs).Run(tt.haystack)
			assert.Equal(t, tt.passed, passed, explanation)
		})
	}
}

func TestOrder_Explanations(t *testing.T) {
	_, explanation := order(t, "missing", "present", 0).Run("present only")
	assert.Contains(t, explanation, "'before' text 'missing' not found")

	_, explanation = order(t, "present", "missing", 0).Run("present only")
	assert.Contains(t, explanation, "'after' text 'missing' not found")

	_, explanation = order(t, "second", "first", 0).Run("first then second")
	assert.Contains(t, explanation, "does not appear before")
}

const markdownTable = `
| Header 1 | Header 2 | Header 3 |
| -------- | -------- | -------- |
| Cell A1  | Cell A2  | Cell A3  |
| Cell B1  | Cell B2  | Cell B3  |
`

func TestTable(t *testing.T) {
	a, err := NewTable(newBase(KindTable), Table{Cell: "Cell A2", Up: "Header 2", Down: "Cell B2"}, quiet())
	require.NoError(t, err)
	passed, explanation := a.Run(markdownTable)
	assert.True(t, passed, explanation)

	a, err = NewTable(newBase(KindTable), Table{Cell: "Cell A2", Up: "Header 2", Down: "Cell B2", Left: "Wrong Cell"}, quiet())
	require.NoError(t, err)
	passed, explanation = a.Run(markdownTable)
	assert.False(t, passed)
	assert.Contains(t, explanation, "left")
	assert.Contains(t, explanation, "doesn't match expected")
}

func TestTable_Defaults(t *testing.T) {
	a, err := NewTable(newBase(KindTable), Table{Cell: "target cell"}, quiet())
	require.NoError(t, err)
	assert.Equal(t, "target cell", a.Table.Cell)
	assert.Empty(t, a.Table.Up)
	assert.Empty(t, a.Table.Down)
	assert.Empty(t, a.Table.Left)
	assert.Empty(t, a.Table.Right)
	assert.Empty(t, a.Table.TopHeading)
	assert.Empty(t, a.Table.LeftHeading)
}

func TestTable_Failures(t *testing.T) {
	a, err := NewTable(newBase(KindTable), Table{Cell: "Missing Cell"}, quiet())
	require.NoError(t, err)

	passed, explanation := a.Run(markdownTable)
	assert.False(t, passed)
	assert.Contains(t, explanation, "No cell matching")

	passed, explanation = a.Run("This is plain text with no tables")
	assert.False(t, passed)
	assert.Equal(t, "No tables found in the content", explanation)
}
