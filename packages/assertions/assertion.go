package assertions

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/abdul-hamid-achik/pagespec/packages/core/config"
	"github.com/abdul-hamid-achik/pagespec/packages/equation"
)

// Base holds the attributes every assertion carries.
type Base struct {
	DocumentID string      `json:"document-id" validate:"required"`
	Page       int         `json:"page" validate:"gte=0"`
	ID         string      `json:"id" validate:"required"`
	Kind       Kind        `json:"-"`
	MaxDiffs   int         `json:"max_diffs" validate:"gte=0"`
	URL        string      `json:"url"`
	Checked    ReviewState `json:"-"`
}

// Assertion is one checkable fact about one page of one document. Exactly
// one payload is set, selected by Kind.
type Assertion struct {
	Base

	Presence *Presence
	Order    *Order
	Table    *Table
	Baseline *Baseline
	Math     *Math

	logger *slog.Logger
}

// RepeatScanner reports, at index n-1, the longest back-to-back run of any
// n-gram in text.
type RepeatScanner interface {
	NgramRepeats(text string) []int
}

type settings struct {
	cfg     *config.Config
	render  equation.Renderer
	compare equation.Comparer
	scanner RepeatScanner
	logger  *slog.Logger
}

// Option configures assertion construction.
type Option func(*settings)

// WithConfig sets the engine configuration. Defaults to config.DefaultConfig.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithRenderer sets the equation renderer used by math assertions,
// overriding the configured render command.
func WithRenderer(r equation.Renderer) Option {
	return func(s *settings) {
		s.render = r
	}
}

// WithComparer sets the rendered-equation similarity function.
func WithComparer(c equation.Comparer) Option {
	return func(s *settings) {
		s.compare = c
	}
}

// WithRepeatScanner sets the n-gram scanner used by baseline assertions.
func WithRepeatScanner(rs RepeatScanner) Option {
	return func(s *settings) {
		s.scanner = rs
	}
}

// WithLogger sets the logger verdicts are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg == nil {
		s.cfg = config.DefaultConfig()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// checkBase validates the shared attributes and that the kind belongs to
// the variant being built.
func checkBase(b Base, variant string, kinds ...Kind) error {
	if !slices.Contains(kinds, b.Kind) {
		return &ValidationError{
			Field:  "type",
			Reason: fmt.Sprintf("%s assertion cannot have type %q", variant, b.Kind),
		}
	}
	return validateFields(b)
}

// NewPresence builds a present or absent assertion.
func NewPresence(b Base, p Presence, opts ...Option) (*Assertion, error) {
	if err := checkBase(b, "presence", KindPresent, KindAbsent); err != nil {
		return nil, err
	}
	if err := validateFields(p); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	return &Assertion{Base: b, Presence: &p, logger: s.logger}, nil
}

// NewOrder builds an order assertion.
func NewOrder(b Base, o Order, opts ...Option) (*Assertion, error) {
	if err := checkBase(b, "order", KindOrder); err != nil {
		return nil, err
	}
	if err := validateFields(o); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	return &Assertion{Base: b, Order: &o, logger: s.logger}, nil
}

// NewTable builds a table assertion.
func NewTable(b Base, t Table, opts ...Option) (*Assertion, error) {
	if err := checkBase(b, "table", KindTable); err != nil {
		return nil, err
	}
	if err := validateFields(t); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	return &Assertion{Base: b, Table: &t, logger: s.logger}, nil
}

// NewBaseline builds a baseline assertion. A zero MaxRepeats takes the
// configured default.
func NewBaseline(b Base, bl Baseline, opts ...Option) (*Assertion, error) {
	if err := checkBase(b, "baseline", KindBaseline); err != nil {
		return nil, err
	}
	s := newSettings(opts)
	if bl.MaxRepeats == 0 {
		bl.MaxRepeats = s.cfg.MaxRepeats
	}
	if err := validateFields(bl); err != nil {
		return nil, err
	}
	bl.scanner = s.scanner
	if bl.scanner == nil {
		bl.scanner = newRepeatScanner(s.cfg.MaxNgram)
	}
	return &Assertion{Base: b, Baseline: &bl, logger: s.logger}, nil
}

// NewMath builds a math assertion, rendering the expected expression once.
// An expression that cannot be rendered makes the assertion invalid.
func NewMath(b Base, m Math, opts ...Option) (*Assertion, error) {
	if err := checkBase(b, "math", KindMath); err != nil {
		return nil, err
	}
	if err := validateFields(m); err != nil {
		return nil, err
	}
	s := newSettings(opts)

	render := s.render
	if render == nil {
		render = s.cfg.Renderer()
	}
	m.comparator = equation.NewComparator(render, s.compare, s.cfg.SimilarityThreshold)
	m.delimiters = s.cfg.Delimiters
	if len(m.delimiters) == 0 {
		m.delimiters = equation.DefaultDelimiters
	}

	img, err := m.comparator.RenderTarget(m.Expression)
	if err != nil {
		return nil, &ValidationError{Field: "math", Reason: "expression could not be rendered", Err: err}
	}
	m.rendered = img
	return &Assertion{Base: b, Math: &m, logger: s.logger}, nil
}

// SetChecked updates the review state.
func (a *Assertion) SetChecked(state ReviewState) {
	a.Checked = state
}

// Run evaluates the assertion against haystack and returns whether it
// passed along with an explanation. Running an assertion without a payload
// for its kind panics with ErrNotImplemented.
func (a *Assertion) Run(haystack string) (bool, string) {
	passed, explanation := a.evaluate(haystack)
	recordVerdict(context.Background(), a.Kind, passed)
	if a.logger != nil {
		a.logger.Debug("assertion evaluated",
			slog.String("id", a.ID),
			slog.String("kind", a.Kind.String()),
			slog.Bool("passed", passed),
			slog.String("explanation", explanation),
		)
	}
	return passed, explanation
}

func (a *Assertion) evaluate(haystack string) (bool, string) {
	switch a.Kind {
	case KindPresent, KindAbsent:
		if a.Presence != nil {
			return a.Presence.run(a, haystack)
		}
	case KindOrder:
		if a.Order != nil {
			return a.Order.run(a, haystack)
		}
	case KindTable:
		if a.Table != nil {
			return a.Table.run(a, haystack)
		}
	case KindBaseline:
		if a.Baseline != nil {
			return a.Baseline.run(a, haystack)
		}
	case KindMath:
		if a.Math != nil {
			return a.Math.run(a, haystack)
		}
	case KindUnknown:
	}
	panic(fmt.Errorf("%w: %s assertion %q", ErrNotImplemented, a.Kind, a.ID))
}
