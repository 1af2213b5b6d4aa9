package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codebatai/pf-verify/internal/infra/policyyaml"
	"github.com/codebatai/pf-verify/internal/infra/receiptjson"
	"github.com/codebatai/pf-verify/pkg/receiptcheck"
)

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func run(args []string) int {
	if len(args) < 2 {
		usage(args)
		return 1
	}

	fs := flag.NewFlagSet("pf-verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var receiptPath string
	var policyPath string
	var format string
	var outPath string

	fs.StringVar(&receiptPath, "receipt", "", "receipt JSON path")
	fs.StringVar(&policyPath, "policy", "", "policy YAML path (optional)")
	fs.StringVar(&format, "format", formatMarkdown, "output format: markdown or json")
	fs.StringVar(&outPath, "out", "", "report path (default stdout)")

	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	if receiptPath == "" {
		fmt.Fprintln(os.Stderr, "pf-verify requires --receipt")
		return 1
	}
	if format != formatMarkdown && format != formatJSON {
		fmt.Fprintf(os.Stderr, "unsupported format: %s\n", format)
		return 1
	}

	receipt, err := receiptjson.Loader{}.Load(receiptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if policyPath != "" {
		policies := policyyaml.Loader{Decoder: policyyaml.YAML{}}
		if _, err := policies.Load(policyPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	report := receiptcheck.Verify(receipt)

	payload, err := renderReport(report, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode report: %v\n", err)
		return 1
	}
	if err := writeOutput(outPath, payload); err != nil {
		fmt.Fprintf(os.Stderr, "write report: %v\n", err)
		return 1
	}

	if report.Passed {
		return 0
	}
	return 1
}

func usage(args []string) {
	name := "pf-verify"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s --receipt <receipt.json> [--policy <policy.yml>] [--format markdown|json] [--out <file>]\n", name)
}
