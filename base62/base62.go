// Package base62 converts numeric link identifiers to short codes and back.
// The alphabet is digits, then uppercase, then lowercase, so "0" is zero.
package base62

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

const (
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	base     = uint64(len(Alphabet))
)

var (
	ErrEmpty            = errors.New("base62: empty input")
	ErrInvalidCharacter = errors.New("base62: invalid character")
	ErrOverflow         = errors.New("base62: value overflows uint64")
)

// Encode returns the base-62 representation of n.
func Encode(n uint64) string {
	if n == 0 {
		return Alphabet[:1]
	}

	// 11 digits cover math.MaxUint64.
	digits := make([]byte, 0, 11)
	for n > 0 {
		digits = append(digits, Alphabet[n%base])
		n /= base
	}
	slices.Reverse(digits)
	return string(digits)
}

// Decode is the inverse of Encode.
func Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmpty
	}

	var n uint64
	for i, c := range s {
		idx := strings.IndexRune(Alphabet, c)
		if idx < 0 {
			return 0, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, c, i)
		}
		if n > (math.MaxUint64-uint64(idx))/base {
			return 0, ErrOverflow
		}
		n = n*base + uint64(idx)
	}
	return n, nil
}
