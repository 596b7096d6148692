package gf2

import "github.com/holiman/uint256"

// Mod returns the remainder of p divided by m: GF(2) polynomial long
// division. The divisor is XORed in at shift position i, and i then steps
// down by the observed drop in the remainder's degree, skipping positions
// where the leading bit is already clear. The result always has degree below
// deg(m); when deg(p) is already below deg(m), p comes back unchanged.
//
// Mod panics when m is zero. Reduction modulo the constant 1 returns zero,
// since 1 divides everything.
func (p Polynomial) Mod(m Polynomial) Polynomial {
	if m.IsZero() {
		panic("gf2: reduction modulo the zero polynomial")
	}
	md := m.Degree()
	if md == 0 {
		return Zero()
	}

	rem := p
	deg := rem.Degree()
	var shifted uint256.Int
	for i := deg - md; i >= 0; {
		// m's leading bit lands on rem's leading bit at md+i, so the
		// XOR strictly lowers the degree.
		shifted.Lsh(&m.bits, uint(i))
		rem.bits.Xor(&rem.bits, &shifted)

		newDeg := rem.Degree()
		i -= deg - newDeg
		deg = newDeg
	}
	return rem
}
