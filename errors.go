// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Quo when the divisor decodes to zero.
	// Div panics with it.
	ErrDivisionByZero = errors.New("division by zero")

	errRange     = fmt.Errorf("value out of range")
	errEmpty     = fmt.Errorf("empty input")
	errNaN       = fmt.Errorf("not a number")
	errNotFinite = fmt.Errorf("value is not finite")
)
