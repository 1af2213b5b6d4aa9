package main

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/codebatai/pf-verify/internal/domain"
)

func renderReport(report domain.VerificationReport, format string) ([]byte, error) {
	if format == formatJSON {
		return renderJSON(report)
	}
	return renderMarkdown(report), nil
}

func renderMarkdown(report domain.VerificationReport) []byte {
	var b strings.Builder
	if report.Passed {
		b.WriteString("## ✅ OEP-288 Skeleton Verification Passed\n\n")
	} else {
		b.WriteString("## ❌ OEP-288 Skeleton Verification Failed\n\n")
	}
	writeSection(&b, "### Errors", report.Errors)
	writeSection(&b, "### Warnings", report.Warnings)
	return []byte(b.String())
}

func writeSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}

// renderJSON keeps non-ASCII and HTML-significant characters unescaped
// so offending URLs come out exactly as the receipt recorded them.
func renderJSON(report domain.VerificationReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
