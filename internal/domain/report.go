package domain

// VerificationReport is the outcome of one validation run. Passed is
// true exactly when Errors is empty; Warnings never affect it. Both
// slices stay non-nil so renderings show empty lists, not null.
type VerificationReport struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}
