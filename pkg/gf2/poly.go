// Package gf2 implements arithmetic on polynomials over GF(2), primitivity
// testing, and enumeration of the finite fields GF(2^d) built from primitive
// moduli. Coefficients are single bits: addition is XOR and multiplication is
// carry-less.
package gf2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// Width is the number of coefficient slots in a Polynomial. Degrees up to
// Width-1 are representable; product bits at index Width and above are
// discarded, so callers must keep deg(p)+deg(q) below Width when multiplying.
const Width = 256

// Polynomial is a binary-coefficient polynomial held in a fixed vector of
// Width bits, bit i being the coefficient of x^i. It is a value type: the
// zero value is the zero polynomial, operations return new values without
// mutating their receiver, and == compares coefficient vectors.
type Polynomial struct {
	bits uint256.Int
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// One returns the constant polynomial 1.
func One() Polynomial {
	return FromBits(1)
}

// X returns the generator polynomial x.
func X() Polynomial {
	return FromBits(2)
}

// FromBits builds a polynomial from a literal bit pattern, bit i of the
// pattern being the coefficient of x^i.
func FromBits(pattern uint64) Polynomial {
	return Polynomial{bits: *uint256.NewInt(pattern)}
}

// FromTerms builds a polynomial with the given exponents set, so
// FromTerms(4, 1, 0) is x^4+x+1. Exponents at Width or above are ignored.
func FromTerms(exponents ...uint) Polynomial {
	var p Polynomial
	for _, e := range exponents {
		if e < Width {
			p.bits[e/64] |= 1 << (e % 64)
		}
	}
	return p
}

// FromHex parses a 0x-prefixed hex coefficient vector, the inverse of Hex.
func FromHex(s string) (Polynomial, error) {
	v, err := uint256.FromHex(s)
	if err != nil {
		return Polynomial{}, fmt.Errorf("invalid polynomial %q: %w", s, err)
	}
	return Polynomial{bits: *v}, nil
}

// Add returns p+q, the coefficient-wise XOR. Addition over GF(2) is its own
// inverse, so p.Add(p) is zero and subtraction is the same operation.
func (p Polynomial) Add(q Polynomial) Polynomial {
	var out Polynomial
	out.bits.Xor(&p.bits, &q.bits)
	return out
}

// Mul returns the carry-less product of p and q: q shifted left by each set
// bit position of p, accumulated with Add. Product bits at Width or above are
// silently lost.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	var out Polynomial
	var shifted uint256.Int
	for i := uint(0); i <= uint(p.Degree()); i++ {
		if p.Bit(i) == 1 {
			shifted.Lsh(&q.bits, i)
			out.bits.Xor(&out.bits, &shifted)
		}
	}
	return out
}

// Degree returns the index of the highest set coefficient, scanning downward.
// The degree of the zero polynomial is 0, the same as the constant 1; use
// IsZero to tell the two apart.
func (p Polynomial) Degree() int {
	if p.bits.IsZero() {
		return 0
	}
	return p.bits.BitLen() - 1
}

// Bit returns the coefficient of x^i, 0 or 1. Indexes at Width or above read
// as 0.
func (p Polynomial) Bit(i uint) uint64 {
	if i >= Width {
		return 0
	}
	return p.bits[i/64] >> (i % 64) & 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return p.bits.IsZero()
}

// Equal reports whether p and q have identical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	return p.bits.Eq(&q.bits)
}

// Hex returns the coefficient vector as a minimal 0x-prefixed hex literal.
func (p Polynomial) Hex() string {
	return p.bits.Hex()
}

// String renders p in algebraic form, highest term first, like
// "x^4 + x + 1". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.Degree(); i >= 0; i-- {
		if p.Bit(uint(i)) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, " + ")
}
