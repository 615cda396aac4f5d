// Package sessionid names quiz sessions with time-sortable identifiers: a
// UUIDv7 written as 26 characters of Crockford base32, as TypeID does.
package sessionid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	length   = 26
)

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns an identifier for a session started at now. A nil src draws
// the random bits from crypto/rand.
func New(now time.Time, src Source) string {
	var b [16]byte

	ms := uint64(now.UnixMilli())
	for i := range 6 {
		b[i] = byte(ms >> (40 - 8*i))
	}

	if src != nil {
		for i := 6; i < 16; i++ {
			b[i] = byte(src.IntN(256))
		}
	} else if _, err := rand.Read(b[6:]); err != nil {
		panic("sessionid: crypto/rand failed: " + err.Error())
	}

	b[6] = (b[6] & 0x0f) | 0x70 // version 7
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

	return encode(b)
}

// encode writes the 128 bits as a 130-bit big-endian number with two
// leading zero bits, five bits per character.
func encode(b [16]byte) string {
	var hi, lo uint64
	for i := range 8 {
		hi = hi<<8 | uint64(b[i])
		lo = lo<<8 | uint64(b[8+i])
	}
	bit := func(n int) uint64 {
		if n < 64 {
			return lo >> n & 1
		}
		if n < 128 {
			return hi >> (n - 64) & 1
		}
		return 0
	}

	out := make([]byte, length)
	for i := range length {
		base := 5 * (length - 1 - i)
		var v uint64
		for j := 4; j >= 0; j-- {
			v = v<<1 | bit(base+j)
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

// Validate checks that id is 26 characters of the alphabet and fits in 128 bits.
func Validate(id string) error {
	if len(id) != length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}

// Time returns the creation time encoded in id, to the millisecond.
func Time(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	var hi, lo uint64
	for _, c := range id {
		v := uint64(strings.IndexRune(alphabet, c))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	return time.UnixMilli(int64(hi >> 16)), nil
}
