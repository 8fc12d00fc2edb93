package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimeSubtraction(t *testing.T) {
	a := NewPrime(2, 5)
	b := NewPrime(4, 5)
	require.Equal(t, uint32(3), a.Sub(b).Value) // (5+2-4) mod 5 = 3
}

func TestPrimeInverse(t *testing.T) {
	require.Equal(t, NewPrime(4, 5), NewPrime(4, 5).Inverse())
	require.Equal(t, NewPrime(2, 7), NewPrime(4, 7).Inverse())
}

func TestPolynomialAddition(t *testing.T) {
	// (x^2 + 2x + 3) + (2x^3 + 4x^2 + 5) = 2x^3 + 5x^2 + 2x + 8
	p := NewPrime
	lhs := NewPolynomial([]Prime{p(3, 11), p(2, 11), p(1, 11)})
	rhs := NewPolynomial([]Prime{p(5, 11), p(0, 11), p(4, 11), p(2, 11)})
	sum := lhs.Add(rhs)
	expected := NewPolynomial([]Prime{p(8, 11), p(2, 11), p(5, 11), p(2, 11)})
	require.True(t, sum.Equal(expected))
}

func TestPolynomialFullDivide(t *testing.T) {
	// (x^3 - 2x^2 - 4) / (x - 3) = x^2+x+3 rem 5, worked in mod 101 to
	// stay inside a prime field while keeping the same small integers.
	p := func(v int64) Prime { return NewPrime(v, 101) }
	top := NewPolynomial([]Prime{p(-4), p(0), p(-2), p(1)})
	bot := NewPolynomial([]Prime{p(-3), p(1)})
	quotient, remainder := FullDivide(top, bot)
	require.True(t, quotient.Equal(NewPolynomial([]Prime{p(3), p(1), p(1)})))
	require.True(t, remainder.Equal(NewPolynomial([]Prime{p(5)})))
}

func gf9() *GaloisField {
	// x^2+2x+2 over F_3, primitive element x (matches spec scenario 1).
	return NewGaloisField(3, 2, 17, 3)
}

func TestGF9Addition(t *testing.T) {
	gf := gf9()
	a := gf.Element(2, 1) // x+2
	b := gf.Element(1, 1) // x+1
	sum := a.Add(b)       // 2x
	require.True(t, sum.Equal(gf.Element(0, 2)))
}

func TestGF9Multiplication(t *testing.T) {
	gf := gf9()
	a := gf.Element(2, 1) // x+2
	b := gf.Element(1, 1) // x+1
	product := a.Mul(b)   // x, reduced mod x^2+2x+2
	require.True(t, product.Equal(gf.Element(0, 1)))
}

func TestGF9HasEightNonzeroElements(t *testing.T) {
	require.Len(t, gf9().All(), 8)
}

func TestGF9EnumerationStartsAtOne(t *testing.T) {
	all := gf9().All()
	require.True(t, all[0].Equal(gf9().One()))
}

func TestGF256InverseMatchesWorkedExample(t *testing.T) {
	// GF(2^8) with pi = x^8+x^4+x^3+x+1 (283), matching spec scenario 2:
	// inv(x^6+x^4+x+1) = x^7+x^6+x^3+x.
	gf := NewGaloisField(2, 8, 283, 2)
	a := gf.Element(1, 1, 0, 0, 1, 0, 1) // x^6+x^4+x+1
	inv := a.Inverse()
	expected := gf.Element(0, 1, 0, 1, 0, 0, 1, 1) // x^7+x^6+x^3+x
	require.True(t, inv.Equal(expected))
}
