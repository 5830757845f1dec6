package equation

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// DefaultThreshold is the minimum similarity score for two rendered
// expressions to count as the same equation.
const DefaultThreshold = 0.99

// ErrNoRenderer is returned when a comparison needs rendering but no
// renderer was configured.
var ErrNoRenderer = errors.New("no equation renderer configured")

// Renderer typesets an expression into a raster image.
type Renderer func(expr string) (image.Image, error)

// Comparer scores the similarity of two rendered expressions in [0, 1].
type Comparer func(a, b image.Image) (float64, error)

// Comparator judges expression equivalence.
type Comparator struct {
	Render    Renderer
	Compare   Comparer
	Threshold float64
}

// NewComparator creates a comparator. A nil compare selects SSIM and a
// non-positive threshold selects DefaultThreshold.
func NewComparator(render Renderer, compare Comparer, threshold float64) *Comparator {
	if compare == nil {
		compare = SSIM
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Comparator{Render: render, Compare: compare, Threshold: threshold}
}

// Identical reports whether two expressions have the same trimmed source.
func Identical(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// Equivalent reports whether a and b denote the same equation. Identical
// sources short-circuit without rendering.
func (c *Comparator) Equivalent(a, b string) (bool, error) {
	if Identical(a, b) {
		return true, nil
	}
	imgA, err := c.render(a)
	if err != nil {
		return false, err
	}
	return c.Matches(imgA, b)
}

// Matches renders candidate and compares it with an already rendered
// reference image.
func (c *Comparator) Matches(reference image.Image, candidate string) (bool, error) {
	img, err := c.render(candidate)
	if err != nil {
		return false, err
	}
	score, err := c.Compare(reference, img)
	if err != nil {
		return false, fmt.Errorf("comparing rendered equations: %w", err)
	}
	return score >= c.Threshold, nil
}

// RenderTarget renders expr, wrapping failures with the expression.
func (c *Comparator) RenderTarget(expr string) (image.Image, error) {
	return c.render(expr)
}

func (c *Comparator) render(expr string) (image.Image, error) {
	if c.Render == nil {
		return nil, ErrNoRenderer
	}
	img, err := c.Render(strings.TrimSpace(expr))
	if err != nil {
		return nil, fmt.Errorf("rendering %q: %w", expr, err)
	}
	if img == nil {
		return nil, fmt.Errorf("rendering %q: renderer returned no image", expr)
	}
	return img, nil
}
