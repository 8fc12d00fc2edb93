// Package rs implements systematic Reed-Solomon encoding and Euclidean
// decoding over an arbitrary Galois field, parameterised by codeword
// count rather than hardcoded to GF(256).
package rs

import (
	"fmt"

	"github.com/halfpixel/qrgen/internal/field"
)

// Codec performs Reed-Solomon encode/decode over codewords represented
// as bytes, interpreted as elements of Field via its bit-decomposition
// convention (so Field should be a characteristic-2 field of degree <= 8,
// as QR's GF(256) is).
type Codec struct {
	Field *field.GaloisField
}

// New builds a Codec over gf.
func New(gf *field.GaloisField) *Codec {
	return &Codec{Field: gf}
}

// Encode appends eccCount parity codewords to data, returning the full
// systematic codeword sequence data||parity. data and the parity
// codewords are codewords in the Codec's field.
func (c *Codec) Encode(data []byte, eccCount int) []byte {
	n := len(data) + eccCount
	elems := make([]field.GFElem, n)
	for i, b := range data {
		elems[i] = field.ElementFromByte(c.Field, b)
	}
	for i := len(data); i < n; i++ {
		elems[i] = c.Field.Zero()
	}

	// Message polynomial, highest power first in elems, so reverse to
	// low-to-high for Polynomial's convention.
	msgPoly := field.NewPolynomial(reversed(elems))
	generator := c.generator(eccCount)

	_, remainder := field.FullDivide(msgPoly, generator)
	result := msgPoly.Sub(remainder)

	// Sub can trim a zero-valued leading (highest-degree) data codeword;
	// re-pad back to the declared total length.
	coeffs := result.Coeffs
	for len(coeffs) < n {
		coeffs = append(coeffs, c.Field.Zero())
	}

	out := make([]byte, n)
	for i, e := range reversed(coeffs) {
		out[i] = e.Byte()
	}
	return out
}

// generator builds Product_{j=0}^{eccCount-1} (x - alpha^j).
func (c *Codec) generator(eccCount int) field.Polynomial[field.GFElem] {
	one := c.Field.One()
	zero := c.Field.Zero()
	primitivePower := one
	generator := field.NewPolynomial([]field.GFElem{zero.Sub(primitivePower), one})
	for i := 1; i < eccCount; i++ {
		primitivePower = primitivePower.Mul(c.Field.Alpha())
		generator = generator.Mul(field.NewPolynomial([]field.GFElem{zero.Sub(primitivePower), one}))
	}
	return generator
}

// Decode corrects up to floor(eccCount/2) codeword errors in received
// (data||parity, length len(received)) using the Euclidean algorithm and
// the Forney formula, returning the original data codewords.
func (c *Codec) Decode(received []byte, eccCount int) ([]byte, error) {
	n := len(received)
	dataLen := n - eccCount
	elems := make([]field.GFElem, n)
	for i, b := range received {
		elems[i] = field.ElementFromByte(c.Field, b)
	}
	rcvdPoly := field.NewPolynomial(reversed(elems))

	one := c.Field.One()
	zero := c.Field.Zero()

	alphaPow := one
	syndromes := make([]field.GFElem, eccCount)
	allZero := true
	for j := 0; j < eccCount; j++ {
		syndromes[j] = rcvdPoly.Evaluate(alphaPow)
		if !syndromes[j].IsZero() {
			allZero = false
		}
		alphaPow = alphaPow.Mul(c.Field.Alpha())
	}
	if allZero {
		out := make([]byte, dataLen)
		for i := 0; i < dataLen; i++ {
			out[i] = received[i]
		}
		return out, nil
	}

	rPrevCoeffs := make([]field.GFElem, eccCount+1)
	for i := 0; i < eccCount; i++ {
		rPrevCoeffs[i] = zero
	}
	rPrevCoeffs[eccCount] = one
	rPrev := field.NewPolynomial(rPrevCoeffs)

	rNow := field.NewPolynomial(syndromes)
	syndromePoly := rNow
	aPrev := field.Polynomial[field.GFElem]{}
	aNow := field.NewPolynomial([]field.GFElem{one})

	for rNow.Degree() > eccCount/2 {
		quotient, rNext := field.FullDivide(rPrev, rNow)
		rNow, rPrev = rNext, rNow
		aNow, aPrev = aPrev.Sub(quotient.Mul(aNow)), aNow
	}
	if len(aNow.Coeffs) == 0 {
		return nil, fmt.Errorf("rs: decode failed, error locator vanished")
	}
	aLeadInverse := aNow.Coeffs[0].Inverse()
	lambda := aNow.MulScalar(aLeadInverse)

	omega := syndromePoly.Mul(lambda)
	if len(omega.Coeffs) > eccCount {
		omega.Coeffs = omega.Coeffs[:eccCount]
	}

	type rootPower struct {
		root  field.GFElem
		power int
	}
	var roots []rootPower
	all := c.Field.All()
	for ix, val := range all {
		if lambda.Evaluate(val).IsZero() {
			power := 0
			if ix != 0 {
				power = c.Field.Order() - 1 - ix
			}
			roots = append(roots, rootPower{root: val, power: power})
		}
	}

	lambdaPrimeCoeffs := make([]field.GFElem, 0, len(lambda.Coeffs))
	for k := 1; k < len(lambda.Coeffs); k++ {
		lambdaPrimeCoeffs = append(lambdaPrimeCoeffs, lambda.Coeffs[k].ScalarMulInt(k))
	}
	lambdaPrime := field.NewPolynomial(lambdaPrimeCoeffs)

	correctedCoeffs := append([]field.GFElem(nil), rcvdPoly.Coeffs...)
	for len(correctedCoeffs) < n {
		correctedCoeffs = append(correctedCoeffs, zero)
	}
	for _, rp := range roots {
		omegaAt := omega.Evaluate(rp.root)
		lambdaPrimeAt := lambdaPrime.Evaluate(rp.root)
		if lambdaPrimeAt.IsZero() {
			return nil, fmt.Errorf("rs: decode failed, uncorrectable error pattern")
		}
		alphaPower := all[rp.power]
		errVal := alphaPower.Mul(omegaAt.Mul(lambdaPrimeAt.Inverse()))
		correctedCoeffs[rp.power] = correctedCoeffs[rp.power].Sub(errVal)
	}

	// Skip the eccCount lowest-index coefficients (the parity codewords),
	// then reverse the rest back to original codeword order.
	out := make([]byte, dataLen)
	for i := 0; i < dataLen; i++ {
		out[i] = correctedCoeffs[n-1-i].Byte()
	}
	return out, nil
}

func reversed(elems []field.GFElem) []field.GFElem {
	out := make([]field.GFElem, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return out
}
