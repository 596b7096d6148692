package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/spf13/cobra"
)

// NewTableCommand creates the field enumeration command
func NewTableCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "table <modulus>",
		Short: "List every element of the field a primitive polynomial defines",
		Long: `Enumerates GF(2^d) for a primitive modulus as successive powers of x:
index 0 is the zero element, index k >= 1 holds x^(k-1). The row
position doubles as the discrete logarithm, which is what exp/log
multiply tables are read off from.

The modulus must be primitive; a non-primitive modulus cannot reach
every nonzero element and is rejected.`,
		Example: `  # GF(16) from x^4 + x + 1
  gfpoly table 11001

  # Hex rows for the Reed-Solomon field
  gfpoly table 101110001 --format hex

  # Machine readable
  gfpoly table --json 11001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")
			return showFieldTable(args[0], defaultFormat(format), outputJSON)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Element format (bits, hex, poly)")

	return cmd
}

type fieldReport struct {
	Polynomial string   `json:"polynomial"`
	Bits       string   `json:"bits"`
	Degree     int      `json:"degree"`
	Primitive  bool     `json:"primitive"`
	Size       uint64   `json:"size"`
	Elements   []string `json:"elements"`
}

func showFieldTable(input, format string, outputJSON bool) error {
	p, err := parsePolynomial(input)
	if err != nil {
		return err
	}

	field, err := gf2.NewField(p)
	if err != nil {
		return err
	}
	if !field.IsPrimitive() {
		return fmt.Errorf("modulus %s is not primitive, so powers of x cannot reach every nonzero element", p)
	}
	if field.Degree() > gf2.MaxTableDegree {
		return fmt.Errorf("degree %d exceeds table limit %d", field.Degree(), gf2.MaxTableDegree)
	}

	if outputJSON {
		elements := field.Elements()
		rows := make([]string, 0, len(elements))
		for _, e := range elements {
			rows = append(rows, formatPolynomial(e, format, field.Degree()))
		}
		return printJSON(fieldReport{
			Polynomial: p.Hex(),
			Bits:       formatBits(p, 0),
			Degree:     field.Degree(),
			Primitive:  true,
			Size:       field.Size(),
			Elements:   rows,
		})
	}

	return printFieldTable(p, format)
}

// printFieldTable prints the size header and the ordered element rows. The
// caller has already established that m is primitive.
func printFieldTable(m gf2.Polynomial, format string) error {
	cyan := color.New(color.FgCyan, color.Bold)

	field, err := gf2.NewField(m)
	if err != nil {
		return err
	}

	fmt.Printf("Field size: %d\n", field.Size())
	cyan.Println("Field elements:")

	for k, e := range field.Elements() {
		label := "0"
		if k > 0 {
			label = fmt.Sprintf("x^%d", k-1)
		}
		fmt.Printf("  %-6s %s\n", label, formatPolynomial(e, format, field.Degree()))
	}

	return nil
}
