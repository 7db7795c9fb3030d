package binfloat

// Arithmetic decodes both operands to float64, applies the float64 operation,
// and encodes the result back. Layouts wider than float64 lose precision,
// which is reported once per layout to the package logger.

// Add returns f+g.
func (f Float[L]) Add(g Float[L]) Float[L] {
	warnDoublePrecision[L]("add")
	return FromFloat64[L](f.Float64() + g.Float64())
}

// Sub returns f-g.
func (f Float[L]) Sub(g Float[L]) Float[L] {
	warnDoublePrecision[L]("sub")
	return FromFloat64[L](f.Float64() - g.Float64())
}

// Mul returns f*g.
func (f Float[L]) Mul(g Float[L]) Float[L] {
	warnDoublePrecision[L]("mul")
	return FromFloat64[L](f.Float64() * g.Float64())
}

// Quo returns f/g.
// Returns ErrDivisionByZero if g decodes to a positive or negative zero.
func (f Float[L]) Quo(g Float[L]) (Float[L], error) {
	warnDoublePrecision[L]("div")
	d := g.Float64()
	if d == 0 {
		return Float[L]{}, ErrDivisionByZero
	}
	return FromFloat64[L](f.Float64() / d), nil
}

// Div calculates f/g. If g == 0, Div panics.
func (f Float[L]) Div(g Float[L]) Float[L] {
	r, err := f.Quo(g)
	if err != nil {
		panic(err)
	}
	return r
}

// AddAssign sets f to f+g.
func (f *Float[L]) AddAssign(g Float[L]) {
	*f = f.Add(g)
}

// SubAssign sets f to f-g.
func (f *Float[L]) SubAssign(g Float[L]) {
	*f = f.Sub(g)
}

// MulAssign sets f to f*g.
func (f *Float[L]) MulAssign(g Float[L]) {
	*f = f.Mul(g)
}

// QuoAssign sets f to f/g.
// If g == 0, f is left unchanged and ErrDivisionByZero is returned.
func (f *Float[L]) QuoAssign(g Float[L]) error {
	r, err := f.Quo(g)
	if err != nil {
		return err
	}
	*f = r
	return nil
}
