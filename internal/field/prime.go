// Package field implements the finite-field arithmetic layer the QR
// encoder is built on: integers modulo a prime, dense polynomials over
// any ring of that shape, and Galois fields GF(p^m) built as a quotient
// of the polynomial ring by an irreducible modulus.
package field

import "fmt"

// Prime is an element of the prime field F_p, an integer held in [0, p).
type Prime struct {
	Value   uint32
	Modulus uint32
}

// NewPrime normalises value into [0, modulus).
func NewPrime(value int64, modulus uint32) Prime {
	v := value % int64(modulus)
	if v < 0 {
		v += int64(modulus)
	}
	return Prime{Value: uint32(v), Modulus: modulus}
}

func (p Prime) checkSameField(other Prime) {
	if p.Modulus != other.Modulus {
		panic(fmt.Sprintf("field: mismatched prime moduli %d and %d", p.Modulus, other.Modulus))
	}
}

// Add returns p+other mod Modulus.
func (p Prime) Add(other Prime) Prime {
	p.checkSameField(other)
	return Prime{Value: (p.Value + other.Value) % p.Modulus, Modulus: p.Modulus}
}

// Sub returns p-other mod Modulus, per (p + a - b) mod p to stay unsigned.
func (p Prime) Sub(other Prime) Prime {
	p.checkSameField(other)
	return Prime{Value: (p.Modulus + p.Value - other.Value) % p.Modulus, Modulus: p.Modulus}
}

// Mul returns p*other mod Modulus.
func (p Prime) Mul(other Prime) Prime {
	p.checkSameField(other)
	return Prime{Value: (p.Value * other.Value) % p.Modulus, Modulus: p.Modulus}
}

// Inverse returns the multiplicative inverse of p via the extended
// Euclidean algorithm. Panics if p is not invertible (p.Value == 0).
func (p Prime) Inverse() Prime {
	inv, remainder := int64(0), int64(p.Modulus)
	nextInv, nextRem := int64(1), int64(p.Value)
	for nextRem != 0 {
		quotient := remainder / nextRem
		inv, nextInv = nextInv, inv-quotient*nextInv
		remainder, nextRem = nextRem, remainder-quotient*nextRem
	}
	if remainder > 1 {
		panic(fmt.Sprintf("field: %d has no inverse mod %d", p.Value, p.Modulus))
	}
	if inv < 0 {
		inv += int64(p.Modulus)
	}
	return Prime{Value: uint32(inv), Modulus: p.Modulus}
}

// Div returns p/other, i.e. p * other.Inverse().
func (p Prime) Div(other Prime) Prime {
	return p.Mul(other.Inverse())
}

// IsZero reports whether p is the additive identity.
func (p Prime) IsZero() bool {
	return p.Value == 0
}

// Equal reports whether p and other hold the same value in the same field.
func (p Prime) Equal(other Prime) bool {
	return p.Modulus == other.Modulus && p.Value == other.Value
}

// Zero returns the additive identity in the same field as p.
func (p Prime) Zero() Prime {
	return Prime{Value: 0, Modulus: p.Modulus}
}

// One returns the multiplicative identity in the same field as p.
func (p Prime) One() Prime {
	if p.Modulus == 1 {
		return Prime{Value: 0, Modulus: 1}
	}
	return Prime{Value: 1, Modulus: p.Modulus}
}

func (p Prime) String() string {
	return fmt.Sprintf("%d", p.Value)
}
