package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/gfpoly/gfpoly/internal/validation"
	"github.com/gfpoly/gfpoly/pkg/config"
	"github.com/gfpoly/gfpoly/pkg/gf2"
	"golang.org/x/term"
)

// parsePolynomial accepts either an LSB-first bit string ("11001" means
// 1 + x + x^4, constant term first) or a hex literal with a 0x prefix.
func parsePolynomial(input string) (gf2.Polynomial, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		if err := validation.ValidateHexString(input); err != nil {
			return gf2.Polynomial{}, err
		}
		return gf2.FromHex(input)
	}

	if err := validation.ValidateBitString(input); err != nil {
		return gf2.Polynomial{}, err
	}

	terms := make([]uint, 0, len(input))
	for i, c := range input {
		if c == '1' {
			terms = append(terms, uint(i))
		}
	}
	return gf2.FromTerms(terms...), nil
}

// parseCandidates parses a batch of check/search candidates and holds each
// to the degree cap.
func parseCandidates(inputs []string, maxDegree int) ([]gf2.Polynomial, error) {
	candidates := make([]gf2.Polynomial, 0, len(inputs))
	for _, input := range inputs {
		p, err := parsePolynomial(input)
		if err != nil {
			return nil, fmt.Errorf("invalid polynomial %q: %w", input, err)
		}
		if err := validation.ValidateCandidateDegree(p.Degree(), maxDegree); err != nil {
			return nil, fmt.Errorf("invalid polynomial %q: %w", input, err)
		}
		candidates = append(candidates, p)
	}
	return candidates, nil
}

// formatBits renders p as an LSB-first bit string, the same orientation
// parsePolynomial reads. A width of zero sizes the string to the degree.
func formatBits(p gf2.Polynomial, width int) string {
	if width <= 0 {
		width = p.Degree() + 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if p.Bit(uint(i)) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func formatPolynomial(p gf2.Polynomial, format string, width int) string {
	switch format {
	case "hex":
		return p.Hex()
	case "poly":
		return p.String()
	default:
		return formatBits(p, width)
	}
}

// defaultFormat resolves the element format: an explicit flag wins, then the
// configured default, then bit strings.
func defaultFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if cm, err := config.NewConfigManager(); err == nil {
		return cm.GetConfig().Defaults.Format
	}
	return "bits"
}

// configuredMaxDegree resolves the degree cap for check/search candidates,
// falling back to the shipped default when no config loads.
func configuredMaxDegree() int {
	if cm, err := config.NewConfigManager(); err == nil {
		return cm.GetConfig().Defaults.MaxDegree
	}
	return config.DefaultConfig().Defaults.MaxDegree
}

// configuredMaxScanDegree resolves the cap for whole-degree scans.
func configuredMaxScanDegree() int {
	if cm, err := config.NewConfigManager(); err == nil {
		return cm.GetConfig().Defaults.MaxScanDegree
	}
	return config.DefaultConfig().Defaults.MaxScanDegree
}

func groupOrder(degree int) uint64 {
	return uint64(1)<<uint(degree) - 1
}

func isInteractive() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readStdinLines drains piped stdin, one candidate per line. Blank lines and
// lines starting with '#' are skipped so candidate files can carry comments.
func readStdinLines() ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	return lines, nil
}

// readCandidatesInteractive walks the user through entering a batch of
// same-degree candidates bounded by maxDegree. Invalid entries re-prompt
// rather than abort.
func readCandidatesInteractive(reader *bufio.Reader, maxDegree int) (int, []gf2.Polynomial, error) {
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	degree, err := readIntPrompt(reader, "Enter the polynomial degree: ", func(n int) error {
		return validation.ValidateDegree(n, maxDegree)
	})
	if err != nil {
		return 0, nil, err
	}

	count, err := readIntPrompt(reader, "Enter the number of candidates: ", validation.ValidateCandidateCount)
	if err != nil {
		return 0, nil, err
	}

	fmt.Println()
	yellow.Printf("Enter each candidate as %d bits, constant term first.\n", degree+1)

	candidates := make([]gf2.Polynomial, 0, count)
	for i := 1; i <= count; i++ {
		for {
			fmt.Printf("Candidate %d: ", i)
			line, err := reader.ReadString('\n')
			if err != nil {
				return 0, nil, fmt.Errorf("failed to read candidate: %w", err)
			}
			line = strings.TrimSpace(line)

			if err := validation.ValidateBitStringForDegree(line, degree); err != nil {
				red.Printf("Invalid candidate: %v\n", err)
				continue
			}

			p, err := parsePolynomial(line)
			if err != nil {
				red.Printf("Invalid candidate: %v\n", err)
				continue
			}
			candidates = append(candidates, p)
			break
		}
	}

	return degree, candidates, nil
}

func readIntPrompt(reader *bufio.Reader, prompt string, validate func(int) error) (int, error) {
	red := color.New(color.FgRed)

	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			red.Println("Enter a whole number")
			continue
		}
		if err := validate(n); err != nil {
			red.Printf("%v\n", err)
			continue
		}
		return n, nil
	}
}

// polynomialResult is the JSON shape shared by check, search, and scan. The
// polynomial field carries the hex form; bits carries the constant-term-first
// string the commands accept as input.
type polynomialResult struct {
	Polynomial string `json:"polynomial"`
	Bits       string `json:"bits"`
	Degree     int    `json:"degree"`
	Primitive  bool   `json:"primitive"`
	Order      uint64 `json:"order,omitempty"`
	GroupOrder uint64 `json:"group_order"`
}

func newPolynomialResult(p gf2.Polynomial) polynomialResult {
	order, _ := gf2.GeneratorOrder(p)
	return polynomialResult{
		Polynomial: p.Hex(),
		Bits:       formatBits(p, 0),
		Degree:     p.Degree(),
		Primitive:  gf2.IsPrimitive(p),
		Order:      order,
		GroupOrder: groupOrder(p.Degree()),
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
