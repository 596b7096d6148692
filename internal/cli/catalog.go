package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/spf13/cobra"
)

// catalogEntries holds one known primitive polynomial per degree, the set
// that shows up in LFSR and CRC deployments. The degree 8 entry is the
// 0x11d polynomial most Reed-Solomon codes build their field on.
var catalogEntries = [...]uint64{
	2:  0b111,
	3:  0b1011,
	4:  0b10011,
	5:  0b100101,
	6:  0b1000011,
	7:  0b10000011,
	8:  0b100011101,
	9:  0b1000010001,
	10: 0b10000001001,
	11: 0b100000000101,
	12: 0b1000001010011,
	13: 0b10000000011011,
	14: 0b100010001000011,
	15: 0b1000000000000011,
}

// NewCatalogCommand creates the built-in reference table command
func NewCatalogCommand() *cobra.Command {
	var (
		degree int
		verify bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show a known primitive polynomial for each degree",
		Long: `Prints a built-in primitive polynomial for every degree from 2 to 15,
in all three notations. These are the stock choices for LFSRs, CRCs,
and Reed-Solomon fields; use them directly or as a starting point for
your own candidate lists.`,
		Example: `  # The whole catalog
  gfpoly catalog

  # Just the byte-sized field
  gfpoly catalog --degree 8

  # Re-test every entry before trusting it
  gfpoly catalog --verify`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")
			return showCatalog(degree, verify, outputJSON)
		},
	}

	cmd.Flags().IntVarP(&degree, "degree", "d", 0, "Show only this degree")
	cmd.Flags().BoolVar(&verify, "verify", false, "Re-run the primitivity test on every entry")

	return cmd
}

func showCatalog(degree int, verify, outputJSON bool) error {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	lo, hi := 2, len(catalogEntries)-1
	if degree != 0 {
		if degree < 2 || degree > len(catalogEntries)-1 {
			return fmt.Errorf("catalog covers degrees 2 through %d (got %d)", len(catalogEntries)-1, degree)
		}
		lo, hi = degree, degree
	}

	if outputJSON {
		results := make([]polynomialResult, 0, hi-lo+1)
		for d := lo; d <= hi; d++ {
			results = append(results, newPolynomialResult(gf2.FromBits(catalogEntries[d])))
		}
		return printJSON(results)
	}

	fmt.Println()
	cyan.Println("PRIMITIVE POLYNOMIAL CATALOG")
	fmt.Println("=" + strings.Repeat("=", 40))
	fmt.Println()

	failed := 0
	for d := lo; d <= hi; d++ {
		p := gf2.FromBits(catalogEntries[d])
		fmt.Printf("  Degree %2d: %-18s %-8s %s", d, formatBits(p, d+1), p.Hex(), p)
		if verify {
			if gf2.IsPrimitive(p) {
				green.Print("  ✓")
			} else {
				red.Print("  ✗")
				failed++
			}
		}
		fmt.Println()
	}

	if verify {
		fmt.Println()
		if failed == 0 {
			green.Printf("All %d entries verified primitive\n", hi-lo+1)
		} else {
			red.Printf("%d entries failed verification\n", failed)
		}
	}

	return nil
}
