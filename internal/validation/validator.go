package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gfpoly/gfpoly/pkg/gf2"
)

var (
	bitPattern = regexp.MustCompile(`^[01]+$`)
	hexPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
)

// MaxScanDegree bounds whole-degree scans; candidate count and walk length
// both grow exponentially with the degree.
const MaxScanDegree = 16

// MaxCandidates bounds interactive candidate entry.
const MaxCandidates = 64

func ValidateBitString(input string) error {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return fmt.Errorf("polynomial cannot be empty")
	}

	if len(input) > gf2.Width {
		return fmt.Errorf("polynomial cannot exceed %d coefficients (got %d)", gf2.Width, len(input))
	}

	if !bitPattern.MatchString(input) {
		return fmt.Errorf("polynomial must contain only 0 and 1 characters")
	}

	if input[len(input)-1] != '1' {
		return fmt.Errorf("the last bit is the leading coefficient and must be 1")
	}

	return nil
}

func ValidateBitStringForDegree(input string, degree int) error {
	if err := ValidateBitString(input); err != nil {
		return err
	}

	if got := len(strings.TrimSpace(input)); got != degree+1 {
		return fmt.Errorf("a degree %d polynomial needs %d bits (got %d)", degree, degree+1, got)
	}

	return nil
}

func ValidateHexString(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("polynomial cannot be empty")
	}

	if !hexPattern.MatchString(input) {
		return fmt.Errorf("hex polynomials need a 0x prefix and hex digits")
	}

	if len(input)-2 > gf2.Width/4 {
		return fmt.Errorf("hex polynomial cannot exceed %d digits (got %d)", gf2.Width/4, len(input)-2)
	}

	return nil
}

func ValidateDegree(degree, maxDegree int) error {
	if maxDegree > gf2.MaxDegree {
		maxDegree = gf2.MaxDegree
	}

	if degree < 2 || degree > maxDegree {
		return fmt.Errorf("degree must be between 2 and %d (got %d)", maxDegree, degree)
	}

	return nil
}

// ValidateCandidateDegree enforces the configured degree cap on check and
// search candidates. Only the top is bounded here; low degrees flow through
// to the primitivity verdict.
func ValidateCandidateDegree(degree, maxDegree int) error {
	if maxDegree > gf2.MaxDegree {
		maxDegree = gf2.MaxDegree
	}

	if degree > maxDegree {
		return fmt.Errorf("candidate degree cannot exceed %d (got %d)", maxDegree, degree)
	}

	return nil
}

func ValidateScanDegree(degree, maxDegree int) error {
	if maxDegree > MaxScanDegree {
		maxDegree = MaxScanDegree
	}

	if degree < 2 || degree > maxDegree {
		return fmt.Errorf("scan degree must be between 2 and %d (got %d)", maxDegree, degree)
	}

	return nil
}

func ValidateCandidateCount(count int) error {
	if count < 1 || count > MaxCandidates {
		return fmt.Errorf("candidate count must be between 1 and %d (got %d)", MaxCandidates, count)
	}

	return nil
}
