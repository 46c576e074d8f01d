package nxncube

import "errors"

// Sentinel errors for the nxncube package.
var (
	// Construction errors
	ErrInvalidOrder = errors.New("nxncube: order must be at least 1")

	// Turn errors
	ErrInvalidTurn   = errors.New("nxncube: turn must be side:layer:degree")
	ErrInvalidSide   = errors.New("nxncube: invalid side")
	ErrInvalidLayer  = errors.New("nxncube: layer index out of range")
	ErrInvalidDegree = errors.New("nxncube: degree must be a multiple of 90")

	// Lookup errors
	ErrOutOfRange = errors.New("nxncube: coordinate out of range")
)
