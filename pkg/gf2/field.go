package gf2

import "fmt"

// MaxTableDegree bounds log/exp table derivation; a degree-d table pair holds
// 3*2^d-1 entries.
const MaxTableDegree = 16

// FieldElements enumerates GF(2^d) for a primitive modulus m of degree d as
// [0, 1, x, x^2, ...]: the additive zero, then every power of the generator
// in ascending exponent order. The element at index k >= 1 is x^(k-1) mod m,
// so list positions double as discrete logs, and the list holds exactly 2^d
// entries. The order is deterministic and may be relied upon.
//
// When m is not primitive the walk closes early or never reaches 1; the list
// then comes back with fewer than 2^d entries, or padded with repeats up to
// the 2^d cap. Callers that have not established primitivity with
// IsPrimitive own that risk. Degrees outside [2, MaxDegree] yield the
// degenerate [0, 1].
func FieldElements(m Polynomial) []Polynomial {
	d := m.Degree()
	if d < 2 || d > MaxDegree {
		return []Polynomial{Zero(), One()}
	}
	size := uint64(1) << uint(d)

	elements := []Polynomial{Zero(), One()}
	gen := X()
	one := One()
	current := gen
	for !current.Equal(one) && uint64(len(elements)) < size {
		elements = append(elements, current)
		current = current.Mul(gen).Mod(m)
	}
	return elements
}

// Field is GF(2^d) bound to a validated modulus. It holds no mutable state,
// so a single Field is safe for concurrent use. The zero value is not
// usable; construct with NewField.
type Field struct {
	modulus Polynomial
	degree  int
}

// NewField checks that modulus can define a field representation: nonzero,
// with degree between 2 and MaxDegree. Primitivity is the caller's claim and
// is checked on demand via IsPrimitive, not at construction.
func NewField(modulus Polynomial) (*Field, error) {
	if modulus.IsZero() {
		return nil, fmt.Errorf("modulus cannot be zero")
	}
	d := modulus.Degree()
	if d < 2 {
		return nil, fmt.Errorf("modulus degree must be at least 2, got %d", d)
	}
	if d > MaxDegree {
		return nil, fmt.Errorf("modulus degree cannot exceed %d, got %d", MaxDegree, d)
	}
	return &Field{modulus: modulus, degree: d}, nil
}

// Modulus returns the defining polynomial.
func (f *Field) Modulus() Polynomial { return f.modulus }

// Degree returns d, the degree of the defining polynomial.
func (f *Field) Degree() int { return f.degree }

// Size returns the number of field elements, 2^d.
func (f *Field) Size() uint64 { return uint64(1) << uint(f.degree) }

// GroupOrder returns the size of the multiplicative group, 2^d-1.
func (f *Field) GroupOrder() uint64 { return f.Size() - 1 }

// Reduce maps p into the field by taking it modulo the defining polynomial.
func (f *Field) Reduce(p Polynomial) Polynomial { return p.Mod(f.modulus) }

// MulMod returns the field product of a and b: the carry-less product
// reduced by the defining polynomial.
func (f *Field) MulMod(a, b Polynomial) Polynomial { return a.Mul(b).Mod(f.modulus) }

// GeneratorOrder returns the multiplicative order of x in the field.
func (f *Field) GeneratorOrder() (uint64, bool) { return GeneratorOrder(f.modulus) }

// IsPrimitive reports whether the defining polynomial is primitive.
func (f *Field) IsPrimitive() bool { return IsPrimitive(f.modulus) }

// Elements enumerates the field in discrete-log order. See FieldElements.
func (f *Field) Elements() []Polynomial { return FieldElements(f.modulus) }

// LogExpTables derives exponent and logarithm tables from the enumeration:
// exp[k] is the bit pattern of x^k for k in [0, 2^d-2], and log[exp[k]] = k.
// log[0] stays zero; the zero element has no logarithm. The modulus must be
// primitive and of degree at most MaxTableDegree.
func (f *Field) LogExpTables() (exp, log []uint64, err error) {
	if f.degree > MaxTableDegree {
		return nil, nil, fmt.Errorf("degree %d exceeds table limit %d", f.degree, MaxTableDegree)
	}
	if !f.IsPrimitive() {
		return nil, nil, fmt.Errorf("modulus %s is not primitive", f.modulus)
	}

	elements := f.Elements()
	exp = make([]uint64, f.GroupOrder())
	log = make([]uint64, f.Size())
	for k, element := range elements[1:] {
		pattern := element.bits.Uint64()
		exp[k] = pattern
		log[pattern] = uint64(k)
	}
	return exp, log, nil
}
