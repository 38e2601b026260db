package cpool

import "errors"

var (
	ErrIncompatible       = errors.New("incompatible constant pool file")
	ErrUnsupportedVersion = errors.New("unsupported constant pool version")
	ErrCorrupted          = errors.New("corrupted constant pool file")
	ErrFull               = errors.New("constant pool full")
	ErrClosed             = errors.New("constant pool closed")
)
