package gf2

// MaxDegree is the largest modulus degree the order walk supports. The group
// order 2^d-1 is tracked in a uint64, and the walk visits up to that many
// powers, so larger degrees are rejected by NewField and reported as
// non-primitive here. Walks are O(2^d) in the worst case regardless.
const MaxDegree = 63

// GeneratorOrder returns the multiplicative order of x in GF(2)[x]/(m): the
// smallest k with x^k = 1 modulo m, found by walking successive powers of x.
// ok is false when the degree of m falls outside [2, MaxDegree], or when the
// walk exceeds the group order 2^d-1 without reaching 1. The latter only
// happens for an m that violates the irreducibility precondition (an m
// divisible by x never cycles back to 1); the cap keeps the walk finite for
// every input.
func GeneratorOrder(m Polynomial) (order uint64, ok bool) {
	d := m.Degree()
	if d < 2 || d > MaxDegree {
		return 0, false
	}
	groupOrder := uint64(1)<<uint(d) - 1

	gen := X()
	one := One()
	current := gen
	order = 1
	for !current.Equal(one) {
		if order >= groupOrder {
			return 0, false
		}
		current = current.Mul(gen).Mod(m)
		order++
	}
	return order, true
}

// IsPrimitive reports whether m is primitive over GF(2): whether x generates
// the entire multiplicative group of GF(2^d), where d is the degree of m.
// Degrees below 2 never qualify. m is assumed irreducible; that precondition
// is not verified here, and a reducible m simply reports false.
func IsPrimitive(m Polynomial) bool {
	d := m.Degree()
	if d < 2 {
		return false
	}
	order, ok := GeneratorOrder(m)
	return ok && order == uint64(1)<<uint(d)-1
}
