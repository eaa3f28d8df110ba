package main

import "errors"

// ErrIllegalOffset is returned when --num-lines is not an integer. It is
// detected before any I/O.
var ErrIllegalOffset = errors.New("illegal offset")
