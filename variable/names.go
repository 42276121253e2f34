package variable

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Namer produces variable names. Every name it returns must be an identifier
// and must differ from every name it returned before, including across
// goroutines.
type Namer interface {
	Name() string
}

// NamerFunc adapts a function to the Namer interface.
type NamerFunc func() string

// Name calls f.
func (f NamerFunc) Name() string {
	return f()
}

// Sequence is a Namer backed by an atomic counter. Names are Prefix followed
// by the counter written in base-26 letters, so they never contain digits.
// The zero value is ready to use.
type Sequence struct {
	Prefix string
	n      atomic.Uint64
}

// NewSequence returns a Sequence with a random letters-only prefix, so names
// from two sequences never collide.
func NewSequence() *Sequence {
	return &Sequence{Prefix: "rxp" + uuidLetters(uuid.New())[:8]}
}

// Name returns the next name in the sequence.
func (s *Sequence) Name() string {
	return s.Prefix + letters(s.n.Add(1)-1)
}

// Random is a Namer that draws a fresh random UUID per name and spells it
// in letters.
type Random struct{}

// Name returns a random letters-only name.
func (Random) Name() string {
	return "rxp" + uuidLetters(uuid.New())
}

// Default is the process-wide Namer used when none is configured.
var Default Namer = &Sequence{Prefix: "rxp"}

// letters writes n in bijective base 26: 0 is "a", 25 is "z", 26 is "aa".
func letters(n uint64) string {
	var buf [16]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
		if n == 0 {
			break
		}
		n--
	}
	return string(buf[i:])
}

// uuidLetters spells each nibble of u as one of 'a'..'p'.
func uuidLetters(u uuid.UUID) string {
	buf := make([]byte, 0, len(u)*2)
	for _, b := range u {
		buf = append(buf, 'a'+b>>4, 'a'+b&0x0f)
	}
	return string(buf)
}
