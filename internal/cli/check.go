package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/internal/validation"
	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates a command to test polynomials for primitivity
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [polynomial]...",
		Short: "Check whether polynomials over GF(2) are primitive",
		Long: `Tests candidate polynomials for primitivity. A polynomial of degree d
is primitive when the powers of x modulo the polynomial run through all
2^d-1 nonzero field elements before coming back to 1, which is exactly
what makes a field table work. The verdict comes with the observed
order of x so near misses are visible.

Polynomials are written as bit strings with the constant term first
("110110001" means 1 + x + x^3 + x^4 + x^8) or as hex values with a
0x prefix. Without arguments the command reads candidates from stdin,
or prompts when run from a terminal.`,
		Example: `  # Check the AES polynomial x^8 + x^4 + x^3 + x + 1
  gfpoly check 110110001

  # Same polynomial as hex
  gfpoly check 0x11b

  # Check a batch from a file
  gfpoly check < candidates.txt

  # Machine readable verdicts
  gfpoly check --json 11001 111001`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")
			return checkPolynomials(args, outputJSON)
		},
	}

	return cmd
}

func checkPolynomials(args []string, outputJSON bool) error {
	green := color.New(color.FgGreen, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed, color.Bold)

	inputs := args

	// Get candidates from args, a prompt, or piped stdin
	if len(inputs) == 0 {
		if isInteractive() {
			fmt.Println()
			cyan.Println("PRIMITIVITY CHECKER")
			fmt.Println("=" + strings.Repeat("=", 40))
			fmt.Println()
			fmt.Println("Enter polynomials with the constant term first (press Enter when done):")
			fmt.Println()

			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Printf("Polynomial %d: ", len(inputs)+1)
				line, err := reader.ReadString('\n')
				if err != nil {
					break
				}
				line = strings.TrimSpace(line)
				if line == "" {
					break
				}
				inputs = append(inputs, line)
			}
		} else {
			lines, err := readStdinLines()
			if err != nil {
				return err
			}
			inputs = lines
		}
	}

	if len(inputs) == 0 {
		return fmt.Errorf("no polynomials to check")
	}

	maxDegree := configuredMaxDegree()

	if outputJSON {
		candidates, err := parseCandidates(inputs, maxDegree)
		if err != nil {
			return err
		}
		if len(candidates) == 1 {
			return printJSON(newPolynomialResult(candidates[0]))
		}
		results := make([]polynomialResult, 0, len(candidates))
		for _, p := range candidates {
			results = append(results, newPolynomialResult(p))
		}
		return printJSON(results)
	}

	fmt.Println()
	cyan.Printf("Checking %d polynomial(s)...\n", len(inputs))
	fmt.Println()

	primitive := 0
	for i, input := range inputs {
		p, err := parsePolynomial(input)
		if err != nil {
			red.Printf("Polynomial %d: ❌ Invalid - %v\n", i+1, err)
			continue
		}
		if err := validation.ValidateCandidateDegree(p.Degree(), maxDegree); err != nil {
			red.Printf("Polynomial %d: ❌ Invalid - %v\n", i+1, err)
			continue
		}

		d := p.Degree()
		order, ok := gf2.GeneratorOrder(p)

		switch {
		case ok && order == groupOrder(d):
			green.Printf("Polynomial %d: ✓ %s is primitive\n", i+1, p)
			fmt.Printf("              order of x: %d, fills GF(2^%d)\n", order, d)
			primitive++
		case d < 2:
			yellow.Printf("Polynomial %d: ✗ %s is not primitive\n", i+1, p)
			fmt.Printf("              degree %d is below the field minimum of 2\n", d)
		case ok:
			yellow.Printf("Polynomial %d: ✗ %s is not primitive\n", i+1, p)
			fmt.Printf("              order of x: %d of %d\n", order, groupOrder(d))
		default:
			yellow.Printf("Polynomial %d: ✗ %s is not primitive\n", i+1, p)
			fmt.Println("              x is not invertible modulo this polynomial")
		}
	}

	fmt.Println()
	if primitive == len(inputs) {
		green.Printf("All %d polynomial(s) are primitive\n", len(inputs))
	} else {
		yellow.Printf("%d of %d polynomial(s) are primitive\n", primitive, len(inputs))
	}

	return nil
}
