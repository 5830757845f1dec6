// Package equation decides whether two math expressions are equivalent.
//
// Two expressions are equivalent when their trimmed sources are identical,
// or when both render to images that a structural similarity comparison
// scores at or above a threshold. Rendering and comparison are injected as
// function values so callers choose the typesetting backend:
//
//	c := equation.NewComparator(
//	    equation.NewCachedRenderer(equation.ExecRenderer(cmd, timeout), ttl),
//	    equation.SSIM,
//	    equation.DefaultThreshold,
//	)
//
// Rendering is expected to be deterministic for identical input, which is
// what makes CachedRenderer safe to share within a batch.
package equation
