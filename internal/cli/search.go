package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the candidate selection command
func NewSearchCommand() *cobra.Command {
	var (
		showAll bool
		noTable bool
		format  string
	)

	cmd := &cobra.Command{
		Use:   "search [candidate]...",
		Short: "Search a candidate list for a primitive polynomial",
		Long: `Tests candidates in order and selects the first primitive one, then
prints the field it defines: every element of GF(2^d) listed as powers
of x, the enumeration a table-driven multiply is built on.

Candidate sources, in priority order: positional arguments, piped stdin
(one candidate per line), or interactive prompts when run from a
terminal. Candidates are bit strings with the constant term first
("1100001" means 1 + x + x^6) or hex values with a 0x prefix.`,
		Example: `  # The degree 6 walkthrough: x^6+1 and x^6+x^3+1 fail, x^6+x+1 wins
  gfpoly search 1000001 1001001 1100001

  # Pipe a candidate file
  gfpoly search < candidates.txt

  # Test every candidate instead of stopping at the first hit
  gfpoly search --all 1000001 1001001 1100001

  # Verdict only, skip the field table
  gfpoly search --no-table 1100001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")
			return searchPolynomials(args, searchOptions{
				all:     showAll,
				noTable: noTable,
				format:  defaultFormat(format),
				json:    outputJSON,
			})
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Test every candidate instead of stopping at the first primitive one")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Skip the field table for the winner")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Element format for the field table (bits, hex, poly)")

	return cmd
}

type searchOptions struct {
	all     bool
	noTable bool
	format  string
	json    bool
}

type searchReport struct {
	Found      bool              `json:"found"`
	Tested     int               `json:"tested"`
	Polynomial *polynomialResult `json:"polynomial,omitempty"`
}

func searchPolynomials(args []string, opts searchOptions) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	maxDegree := configuredMaxDegree()

	var candidates []gf2.Polynomial

	switch {
	case len(args) > 0:
		parsed, err := parseCandidates(args, maxDegree)
		if err != nil {
			return err
		}
		candidates = parsed
	case isInteractive():
		_, entered, err := readCandidatesInteractive(bufio.NewReader(os.Stdin), maxDegree)
		if err != nil {
			return err
		}
		candidates = entered
	default:
		lines, err := readStdinLines()
		if err != nil {
			return err
		}
		parsed, err := parseCandidates(lines, maxDegree)
		if err != nil {
			return err
		}
		candidates = parsed
	}

	if len(candidates) == 0 {
		return fmt.Errorf("no candidate polynomials")
	}

	if opts.json {
		return searchJSON(candidates, opts.all)
	}

	fmt.Println()
	cyan.Println("PRIMITIVE POLYNOMIAL SEARCH")
	fmt.Println("=" + strings.Repeat("=", 40))
	fmt.Printf("Testing %d candidate(s)\n", len(candidates))
	fmt.Println()

	var winner *gf2.Polynomial
	for i, p := range candidates {
		if !gf2.IsPrimitive(p) {
			yellow.Printf("Candidate %d: ✗ %s is not primitive\n", i+1, formatBits(p, 0))
			continue
		}

		green.Printf("Candidate %d: ✓ %s is primitive\n", i+1, formatBits(p, 0))
		if winner == nil {
			w := p
			winner = &w
		}
		if !opts.all {
			break
		}
	}

	fmt.Println()
	if winner == nil {
		red.Println("None of the candidate polynomials are primitive.")
		return nil
	}

	green.Println("Found primitive polynomial:")
	fmt.Printf("  Bits (constant term first): %s\n", formatBits(*winner, 0))
	fmt.Printf("  Hex:                        %s\n", winner.Hex())
	fmt.Printf("  Algebraic:                  %s\n", winner)

	if opts.noTable {
		return nil
	}
	if winner.Degree() > gf2.MaxTableDegree {
		fmt.Println()
		yellow.Printf("Skipping the field table: degree %d would list %d elements\n",
			winner.Degree(), uint64(1)<<uint(winner.Degree()))
		return nil
	}

	fmt.Println()
	return printFieldTable(*winner, opts.format)
}

func searchJSON(candidates []gf2.Polynomial, all bool) error {
	if all {
		results := make([]polynomialResult, 0, len(candidates))
		for _, p := range candidates {
			results = append(results, newPolynomialResult(p))
		}
		return printJSON(results)
	}

	var report searchReport
	for _, p := range candidates {
		report.Tested++
		if gf2.IsPrimitive(p) {
			r := newPolynomialResult(p)
			report.Found = true
			report.Polynomial = &r
			break
		}
	}
	return printJSON(report)
}
