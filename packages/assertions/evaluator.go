package assertions

// Result is the verdict of one assertion on one page.
type Result struct {
	ID          string
	DocumentID  string
	Page        int
	Kind        Kind
	Passed      bool
	Explanation string
}

// Evaluate runs a against haystack and wraps the verdict in a Result.
func Evaluate(a *Assertion, haystack string) *Result {
	passed, explanation := a.Run(haystack)
	return &Result{
		ID:          a.ID,
		DocumentID:  a.DocumentID,
		Page:        a.Page,
		Kind:        a.Kind,
		Passed:      passed,
		Explanation: explanation,
	}
}

// EvaluateAll runs every assertion against the same page text.
func EvaluateAll(haystack string, assertions []*Assertion) []*Result {
	results := make([]*Result, len(assertions))
	for i, a := range assertions {
		results[i] = Evaluate(a, haystack)
	}
	return results
}
