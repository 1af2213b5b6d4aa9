package receiptcheck

import (
	"fmt"
	"strings"

	"github.com/codebatai/pf-verify/internal/domain"
)

// PlaceholderURLPrefixes are the only transparency endpoints a receipt
// may reference. They never resolve to a real service.
var PlaceholderURLPrefixes = []string{
	"https://example.invalid",
	"https://rekor.example.invalid",
	"tsa://rfc3161.example.invalid",
}

// PlaceholderKMSPrefixes are the only signer identities a receipt may
// record.
var PlaceholderKMSPrefixes = []string{
	"kms+example://",
}

func IsPlaceholderURL(value string) bool {
	return hasAnyPrefix(value, PlaceholderURLPrefixes)
}

func IsPlaceholderKMS(value string) bool {
	return hasAnyPrefix(value, PlaceholderKMSPrefixes)
}

func hasAnyPrefix(value string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MissingFields returns the required fields absent from the receipt,
// in canonical order regardless of document key order.
func MissingFields(receipt domain.Receipt) []string {
	var missing []string
	for _, field := range domain.RequiredFields {
		if !receipt.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// PlaceholderProblems flags endpoint and signer values that escape the
// placeholder allow-lists. Only string values are checked; anything
// else is skipped, not reported.
func PlaceholderProblems(receipt domain.Receipt) []string {
	var problems []string

	if candidate, ok := receipt.Transparency().Endpoint(); ok {
		if url, isString := candidate.(string); isString && !IsPlaceholderURL(url) {
			problems = append(problems, fmt.Sprintf("transparency URL must use placeholder domain: '%s'", url))
		}
	}

	for i, entry := range receipt.Signatures() {
		signer, ok := entry.Signer()
		if !ok {
			continue
		}
		if !IsPlaceholderKMS(signer) {
			problems = append(problems, fmt.Sprintf("signatures[%d].signer must use placeholder KMS: '%s'", i, signer))
		}
	}

	return problems
}

// Verify runs the required-field and placeholder checks and folds the
// findings into one report. The report passes exactly when no errors
// were collected; warnings are a reserved channel no check populates.
func Verify(receipt domain.Receipt) domain.VerificationReport {
	report := domain.VerificationReport{
		Errors:   []string{},
		Warnings: []string{},
	}

	if missing := MissingFields(receipt); len(missing) > 0 {
		report.Errors = append(report.Errors, "missing required fields: "+strings.Join(missing, ", "))
	}
	report.Errors = append(report.Errors, PlaceholderProblems(receipt)...)

	report.Passed = len(report.Errors) == 0
	return report
}
