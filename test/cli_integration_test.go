package test

import (
	"fmt"
	"math/bits"
	"strings"
	"testing"

	"github.com/gfpoly/gfpoly/pkg/gf2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_ParsingWorkflow(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  uint64
	}{
		{"Bit string degree 4", "11001", 0b10011},
		{"Bit string AES", "110110001", 0x11B},
		{"Bit string Reed-Solomon", "101110001", 0x11D},
		{"Hex form", "0x13", 0b10011},
		{"Hex with uppercase digits", "0x11D", 0x11D},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := parsePolynomialTestHelper(tc.input)
			require.NoError(t, err)
			assert.True(t, gf2.FromBits(tc.want).Equal(p))

			// The two forms name the same polynomial.
			rendered := formatBitsTestHelper(p)
			back, err := parsePolynomialTestHelper(rendered)
			require.NoError(t, err)
			assert.True(t, p.Equal(back))
		})
	}
}

func TestCLI_ParsingRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Bad characters", "11021"},
		{"Trailing zero bit", "1100"},
		{"Hex without digits", "0x"},
		{"Hex with bad digits", "0xzz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parsePolynomialTestHelper(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestCLI_SearchWorkflow(t *testing.T) {
	// The classic demo walk: candidates in entry order, first primitive
	// wins.
	inputs := []string{"1000001", "1001001", "1100001"}

	var winner gf2.Polynomial
	winnerAt := -1
	for i, input := range inputs {
		p, err := parsePolynomialTestHelper(input)
		require.NoError(t, err)
		if gf2.IsPrimitive(p) {
			winner = p
			winnerAt = i
			break
		}
	}

	require.Equal(t, 2, winnerAt, "x^6+x+1 should be the first primitive candidate")
	assert.True(t, gf2.FromBits(0b1000011).Equal(winner))

	field, err := gf2.NewField(winner)
	require.NoError(t, err)
	assert.Equal(t, uint64(64), field.Size())
	assert.Len(t, field.Elements(), 64)
}

func TestCLI_CheckVerdicts(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		primitive bool
		order     uint64
	}{
		{"Degree 4 primitive", "11001", true, 15},
		{"Degree 4 other primitive", "10011", true, 15},
		{"x^6+x^3+1 stalls at 9", "1001001", false, 9},
		{"AES modulus stalls at 51", "110110001", false, 51},
		{"Reed-Solomon modulus", "101110001", true, 255},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := parsePolynomialTestHelper(tc.input)
			require.NoError(t, err)

			assert.Equal(t, tc.primitive, gf2.IsPrimitive(p))

			order, ok := gf2.GeneratorOrder(p)
			require.True(t, ok)
			assert.Equal(t, tc.order, order)
		})
	}
}

func TestCLI_ScanDegreeEight(t *testing.T) {
	// Mirror of the scan filter: monic, constant term 1, odd weight.
	var found []uint64
	lo := uint64(1) << 8
	hi := lo << 1
	for pattern := lo | 1; pattern < hi; pattern += 2 {
		if bits.OnesCount64(pattern)%2 == 0 {
			continue
		}
		if gf2.IsPrimitive(gf2.FromBits(pattern)) {
			found = append(found, pattern)
		}
	}

	// GF(256) has phi(255)/8 = 16 primitive polynomials of degree 8.
	assert.Len(t, found, 16)
	assert.Contains(t, found, uint64(0x11D))
	assert.NotContains(t, found, uint64(0x11B))
}

func TestCLI_ScanDegreeFour(t *testing.T) {
	var found []uint64
	for pattern := uint64(0b10001); pattern < 0b100000; pattern += 2 {
		if bits.OnesCount64(pattern)%2 == 0 {
			continue
		}
		if gf2.IsPrimitive(gf2.FromBits(pattern)) {
			found = append(found, pattern)
		}
	}

	assert.Equal(t, []uint64{0b10011, 0b11001}, found)
}

// Helper functions mirroring the CLI parsing logic
func parsePolynomialTestHelper(s string) (gf2.Polynomial, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return gf2.FromHex(s)
	}

	if s == "" {
		return gf2.Polynomial{}, fmt.Errorf("empty polynomial")
	}
	if strings.Trim(s, "01") != "" {
		return gf2.Polynomial{}, fmt.Errorf("polynomial %q has non-binary characters", s)
	}
	if s[len(s)-1] != '1' {
		return gf2.Polynomial{}, fmt.Errorf("polynomial %q does not end in its leading coefficient", s)
	}

	terms := make([]uint, 0, len(s))
	for i, c := range s {
		if c == '1' {
			terms = append(terms, uint(i))
		}
	}
	return gf2.FromTerms(terms...), nil
}

func formatBitsTestHelper(p gf2.Polynomial) string {
	var b strings.Builder
	for i := 0; i <= p.Degree(); i++ {
		if p.Bit(uint(i)) == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
