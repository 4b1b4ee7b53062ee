package skiplist

import "errors"

var (
	// ErrOutOfRange is returned when a navigation or removal steps outside
	// the container: advancing past End, retreating before Begin, erasing
	// the end position, or popping from an empty list.
	ErrOutOfRange = errors.New("skiplist: position out of range")

	// ErrInvalidDereference is returned when a value is read through an
	// iterator that sits on a sentinel or references no node at all.
	ErrInvalidDereference = errors.New("skiplist: dereference of invalid iterator")
)
