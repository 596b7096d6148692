package gf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorOrder(t *testing.T) {
	tests := []struct {
		name      string
		m         Polynomial
		wantOrder uint64
		wantOK    bool
	}{
		{"x^4+x+1 spans the group", FromBits(0b10011), 15, true},
		{"x^4+x^3+1 spans the group", FromBits(0b11001), 15, true},
		{"x^6+x^3+1 closes early", FromBits(0b1001001), 9, true},
		{"Rijndael 0x11B closes early", FromBits(0x11B), 51, true},
		{"Reed-Solomon 0x11D spans the group", FromBits(0x11D), 255, true},
		{"Reducible x^6+1 still cycles", FromBits(0b1000001), 6, true},
		{"Degree one is out of range", X(), 0, false},
		{"Degree zero is out of range", One(), 0, false},
		{"Zero polynomial is out of range", Zero(), 0, false},
		{"x^2 absorbs at zero", FromBits(0b100), 0, false},
		{"x^2+x never reaches one", FromBits(0b110), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, ok := GeneratorOrder(tt.m)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestIsPrimitive(t *testing.T) {
	tests := []struct {
		name string
		m    Polynomial
		want bool
	}{
		{"x^2+x+1", FromBits(0b111), true},
		{"x^4+x+1", FromBits(0b10011), true},
		{"x^4+x^3+1", FromBits(0b11001), true},
		{"x^6+x+1", FromBits(0b1000011), true},
		{"x^6+x^3+1 is irreducible but not primitive", FromBits(0b1001001), false},
		{"x^6+1 is reducible", FromBits(0b1000001), false},
		{"Rijndael 0x11B is irreducible but not primitive", FromBits(0x11B), false},
		{"Reed-Solomon 0x11D", FromBits(0x11D), true},
		{"Degree one", FromBits(0b11), false},
		{"Constant one", One(), false},
		{"Zero polynomial", Zero(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrimitive(tt.m))
		})
	}
}

func TestFieldElements(t *testing.T) {
	tests := []struct {
		name string
		m    Polynomial
		want []Polynomial
	}{
		{
			name: "GF(16) via x^4+x+1",
			m:    FromBits(0b10011),
			want: []Polynomial{
				Zero(), One(), FromBits(0x2), FromBits(0x4), FromBits(0x8),
				FromBits(0x3), FromBits(0x6), FromBits(0xC), FromBits(0xB),
				FromBits(0x5), FromBits(0xA), FromBits(0x7), FromBits(0xE),
				FromBits(0xF), FromBits(0xD), FromBits(0x9),
			},
		},
		{
			name: "GF(16) via x^4+x^3+1",
			m:    FromBits(0b11001),
			want: []Polynomial{
				Zero(), One(), FromBits(0x2), FromBits(0x4), FromBits(0x8),
				FromBits(0x9), FromBits(0xB), FromBits(0xF), FromBits(0x7),
				FromBits(0xE), FromBits(0x5), FromBits(0xA), FromBits(0xD),
				FromBits(0x3), FromBits(0x6), FromBits(0xC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := FieldElements(tt.m)
			require.Equal(t, tt.want, elements)

			seen := make(map[Polynomial]bool, len(elements))
			for _, e := range elements {
				assert.False(t, seen[e], "duplicate element %s", e)
				seen[e] = true
			}
		})
	}
}

func TestFieldElementsPowersMatchIndex(t *testing.T) {
	// Index k >= 1 holds x^(k-1): the list is its own exponent table.
	m := FromBits(0x11D)
	elements := FieldElements(m)
	require.Len(t, elements, 256)

	power := One()
	for k := 1; k < len(elements); k++ {
		assert.Equal(t, power, elements[k], "index %d must hold x^%d", k, k-1)
		power = power.Mul(X()).Mod(m)
	}
}

func TestFieldElementsDeterministic(t *testing.T) {
	m := FromBits(0b10011)
	assert.Equal(t, FieldElements(m), FieldElements(m))
}

func TestFieldElementsNonPrimitive(t *testing.T) {
	// x^6+x^3+1 is irreducible with generator order 9, so the walk closes
	// after the ninth power and the field comes back incomplete: 10
	// elements instead of 64.
	elements := FieldElements(FromBits(0b1001001))

	want := []Polynomial{
		Zero(), One(), FromBits(2), FromBits(4), FromBits(8),
		FromBits(16), FromBits(32), FromBits(9), FromBits(18), FromBits(36),
	}
	assert.Equal(t, want, elements)
}

func TestFieldElementsReducibleModulus(t *testing.T) {
	// x^2 violates the irreducibility precondition: x^2 mod x^2 = 0 and the
	// walk then sits on zero until the size cap. This locks the observed
	// output; no correctness is claimed for such input.
	elements := FieldElements(FromBits(0b100))
	assert.Equal(t, []Polynomial{Zero(), One(), X(), Zero()}, elements)
}

func TestFieldElementsDegenerateDegrees(t *testing.T) {
	assert.Equal(t, []Polynomial{Zero(), One()}, FieldElements(X()))
	assert.Equal(t, []Polynomial{Zero(), One()}, FieldElements(Zero()))
	assert.Equal(t, []Polynomial{Zero(), One()}, FieldElements(FromTerms(64, 0)))
}

func TestNewField(t *testing.T) {
	tests := []struct {
		name    string
		modulus Polynomial
		wantErr string
	}{
		{"Valid degree four", FromBits(0b10011), ""},
		{"Valid top degree", FromTerms(63, 1, 0), ""},
		{"Zero modulus", Zero(), "cannot be zero"},
		{"Constant modulus", One(), "at least 2"},
		{"Degree one modulus", FromBits(0b11), "at least 2"},
		{"Degree too large", FromTerms(64, 1, 0), "cannot exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewField(tt.modulus)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.modulus, f.Modulus())
		})
	}
}

func TestFieldAccessors(t *testing.T) {
	f, err := NewField(FromBits(0b10011))
	require.NoError(t, err)

	assert.Equal(t, 4, f.Degree())
	assert.Equal(t, uint64(16), f.Size())
	assert.Equal(t, uint64(15), f.GroupOrder())
	assert.True(t, f.IsPrimitive())

	order, ok := f.GeneratorOrder()
	require.True(t, ok)
	assert.Equal(t, uint64(15), order)

	// x^2 * x^2 = x^4 = x+1 in GF(16).
	assert.Equal(t, FromBits(0b11), f.MulMod(FromBits(0b100), FromBits(0b100)))
	assert.Equal(t, FromBits(0b11), f.Reduce(FromTerms(4)))

	assert.Len(t, f.Elements(), 16)
}

func TestLogExpTables(t *testing.T) {
	f, err := NewField(FromBits(0b10011))
	require.NoError(t, err)

	exp, log, err := f.LogExpTables()
	require.NoError(t, err)

	wantExp := []uint64{1, 2, 4, 8, 3, 6, 12, 11, 5, 10, 7, 14, 15, 13, 9}
	wantLog := []uint64{0, 0, 1, 4, 2, 8, 5, 10, 3, 14, 9, 7, 6, 13, 11, 12}
	assert.Equal(t, wantExp, exp)
	assert.Equal(t, wantLog, log)

	for v := uint64(1); v < f.Size(); v++ {
		assert.Equal(t, v, exp[log[v]], "exp and log must invert at %d", v)
	}
}

func TestLogExpTablesRejections(t *testing.T) {
	nonPrimitive, err := NewField(FromBits(0x11B))
	require.NoError(t, err)
	_, _, err = nonPrimitive.LogExpTables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not primitive")

	tooLarge, err := NewField(FromTerms(20, 3, 0))
	require.NoError(t, err)
	_, _, err = tooLarge.LogExpTables()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table limit")
}

func BenchmarkIsPrimitive(b *testing.B) {
	m := FromBits(0x11D)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !IsPrimitive(m) {
			b.Fatal("0x11D must test primitive")
		}
	}
}

func BenchmarkFieldElements(b *testing.B) {
	m := FromBits(0x11D)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(FieldElements(m)) != 256 {
			b.Fatal("unexpected field size")
		}
	}
}
