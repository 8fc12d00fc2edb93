package field

// GaloisField is the field descriptor for GF(p^m), realised as the
// quotient ring F_p[x]/(modulus) where modulus is an irreducible
// polynomial of degree m over F_p. Since Go has no const generics, the
// descriptor is a runtime value threaded through every element.
type GaloisField struct {
	Prime uint32
	Power uint32
	Mod   Polynomial[Prime]
	alpha GFElem
}

// PolyFromUint decodes value into a Polynomial[Prime] by taking its
// base-prime digits, least-significant first. This is the convention
// used to turn a compact integer encoding of a field modulus or
// primitive element (e.g. 285 for GF(256)'s x^8+x^4+x^3+x^2+1) into its
// coefficient form.
func PolyFromUint(value uint32, prime uint32) Polynomial[Prime] {
	var coeffs []Prime
	if value == 0 {
		return Polynomial[Prime]{}
	}
	for value > 0 {
		coeffs = append(coeffs, NewPrime(int64(value%prime), prime))
		value /= prime
	}
	p := Polynomial[Prime]{Coeffs: coeffs}
	p.Reduce()
	return p
}

// NewGaloisField builds a GF(prime^power) from a modulus and primitive
// element given in the packed-integer convention PolyFromUint decodes.
func NewGaloisField(prime, power, modulus, alpha uint32) *GaloisField {
	gf := &GaloisField{
		Prime: prime,
		Power: power,
		Mod:   PolyFromUint(modulus, prime),
	}
	gf.alpha = gf.Make(PolyFromUint(alpha, prime))
	return gf
}

// Order returns p^m, the number of elements in the field.
func (gf *GaloisField) Order() int {
	order := 1
	for i := uint32(0); i < gf.Power; i++ {
		order *= int(gf.Prime)
	}
	return order
}

// Make canonicalises a polynomial over F_p into a field element by
// reducing it modulo the field's irreducible modulus.
func (gf *GaloisField) Make(poly Polynomial[Prime]) GFElem {
	_, rem := FullDivide(poly, gf.Mod)
	return GFElem{Poly: rem, Field: gf}
}

// Element builds a field element from coefficients in low-to-high order.
func (gf *GaloisField) Element(coeffs ...uint32) GFElem {
	ps := make([]Prime, len(coeffs))
	for i, c := range coeffs {
		ps[i] = NewPrime(int64(c), gf.Prime)
	}
	return gf.Make(NewPolynomial(ps))
}

// Zero returns the field's additive identity.
func (gf *GaloisField) Zero() GFElem {
	return GFElem{Field: gf}
}

// One returns the field's multiplicative identity.
func (gf *GaloisField) One() GFElem {
	return gf.Make(NewPolynomial([]Prime{NewPrime(1, gf.Prime)}))
}

// Alpha returns the field's designated primitive element.
func (gf *GaloisField) Alpha() GFElem {
	return gf.alpha
}

// Enumerate returns a fresh iterator over every nonzero field element in
// canonical alpha-power order: alpha^0=1, alpha^1, alpha^2, ... Each call
// starts a new, independent walk.
func (gf *GaloisField) Enumerate() *Enumerator {
	return &Enumerator{field: gf, current: gf.One()}
}

// GFElem is an element of a GaloisField, represented as a canonicalised
// polynomial over F_p of degree less than the field's modulus degree.
type GFElem struct {
	Poly  Polynomial[Prime]
	Field *GaloisField
}

func (e GFElem) checkSameField(other GFElem) {
	if e.Field != other.Field && e.Field != nil && other.Field != nil {
		panic("field: mismatched Galois fields")
	}
}

func (e GFElem) field() *GaloisField {
	if e.Field != nil {
		return e.Field
	}
	return nil
}

// Add returns e+other.
func (e GFElem) Add(other GFElem) GFElem {
	e.checkSameField(other)
	f := e.field()
	if f == nil {
		f = other.field()
	}
	return GFElem{Poly: e.Poly.Add(other.Poly), Field: f}
}

// Sub returns e-other.
func (e GFElem) Sub(other GFElem) GFElem {
	e.checkSameField(other)
	f := e.field()
	if f == nil {
		f = other.field()
	}
	return GFElem{Poly: e.Poly.Sub(other.Poly), Field: f}
}

// Mul returns e*other, reduced modulo the field's irreducible modulus.
func (e GFElem) Mul(other GFElem) GFElem {
	e.checkSameField(other)
	f := e.field()
	if f == nil {
		f = other.field()
	}
	if f == nil {
		return GFElem{}
	}
	return f.Make(e.Poly.Mul(other.Poly))
}

// Inverse returns the multiplicative inverse of e via the extended
// Euclidean algorithm applied to e.Poly and the field's modulus.
func (e GFElem) Inverse() GFElem {
	f := e.Field
	tNow, tNext := Polynomial[Prime]{}, NewPolynomial([]Prime{NewPrime(1, f.Prime)})
	rNow, rNext := f.Mod, e.Poly
	for !rNext.IsZero() {
		quotient, _ := FullDivide(rNow, rNext)
		rNow, rNext = rNext, rNow.Sub(quotient.Mul(rNext))
		tNow, tNext = tNext, tNow.Sub(quotient.Mul(tNext))
	}
	// rNow is now a nonzero constant gcd; divide it out so e*result == 1.
	return f.Make(tNow.MulScalar(rNow.Coeffs[len(rNow.Coeffs)-1].Inverse()))
}

// Div returns e/other.
func (e GFElem) Div(other GFElem) GFElem {
	return e.Mul(other.Inverse())
}

// IsZero reports whether e is the field's additive identity.
func (e GFElem) IsZero() bool {
	return e.Poly.IsZero()
}

// Equal reports whether e and other hold the same canonical polynomial.
func (e GFElem) Equal(other GFElem) bool {
	return e.Poly.Equal(other.Poly)
}

// Zero returns the additive identity in the same field as e.
func (e GFElem) Zero() GFElem {
	return GFElem{Field: e.Field}
}

// One returns the multiplicative identity in the same field as e.
func (e GFElem) One() GFElem {
	return e.Field.One()
}

// ScalarMulInt returns e added to itself n times (the formal-derivative
// "k times the k-th coefficient" operation over a ring of arbitrary
// characteristic).
func (e GFElem) ScalarMulInt(n int) GFElem {
	acc := e.Zero()
	for i := 0; i < n; i++ {
		acc = acc.Add(e)
	}
	return acc
}

// Byte packs e into a single byte, assuming Field.Prime == 2 and
// Field.Power <= 8 (the QR GF(256) case): bit i of the result is the
// coefficient of x^i.
func (e GFElem) Byte() byte {
	var b byte
	for i, c := range e.Poly.Coeffs {
		if !c.IsZero() {
			b |= 1 << uint(i)
		}
	}
	return b
}

// ElementFromByte is the inverse of Byte: decomposes v's bits into a
// GF(2^m) element, LSB first.
func ElementFromByte(gf *GaloisField, v byte) GFElem {
	return gf.Make(PolyFromUint(uint32(v), 2))
}

// Enumerator walks a GaloisField's nonzero elements in canonical
// alpha-power order, starting at 1 and stopping once the cycle returns
// to 1. Call GaloisField.Enumerate for a fresh walk.
type Enumerator struct {
	field    *GaloisField
	current  GFElem
	started  bool
	finished bool
}

// Next returns the next element and true, or the zero value and false
// once the enumeration has completed a full cycle.
func (it *Enumerator) Next() (GFElem, bool) {
	if it.finished {
		return GFElem{}, false
	}
	ret := it.current
	it.current = it.current.Mul(it.field.Alpha())
	if it.started && it.current.Equal(it.field.One()) {
		it.finished = true
	}
	it.started = true
	return ret, true
}

// All collects every element the enumerator yields into a slice, in
// canonical alpha-power order (index i holds alpha^i).
func (gf *GaloisField) All() []GFElem {
	out := make([]GFElem, 0, gf.Order()-1)
	it := gf.Enumerate()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}
