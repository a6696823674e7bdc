package id

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// DefaultPrefix is prepended to every generated account number.
const DefaultPrefix = "ACCT"

// DefaultBase is the sequence value before the first account; the first number is ACCT1001.
const DefaultBase = 1000

// FormatAccountNumber returns an account number like "ACCT1001".
func FormatAccountNumber(prefix string, seq int) string {
	return prefix + strconv.Itoa(seq)
}

// ParseAccountNumber splits "ACCT1001" into its prefix and sequence.
func ParseAccountNumber(number string) (prefix string, seq int, err error) {
	i := len(number)
	for i > 0 && number[i-1] >= '0' && number[i-1] <= '9' {
		i--
	}
	if i == len(number) {
		return "", 0, fmt.Errorf("invalid account number %q: no sequence digits", number)
	}

	seq, err = strconv.Atoi(number[i:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in account number %q: %w", number, err)
	}
	return number[:i], seq, nil
}

// Compare orders account numbers by prefix, then numerically by sequence,
// so ACCT999 sorts before ACCT1000. Numbers that do not parse sort last,
// in plain string order.
func Compare(a, b string) int {
	pa, sa, errA := ParseAccountNumber(a)
	pb, sb, errB := ParseAccountNumber(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}

	if c := strings.Compare(pa, pb); c != 0 {
		return c
	}
	if sa != sb {
		if sa < sb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Sequence hands out strictly increasing account numbers.
// It is safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	last   int
}

// NewSequence returns a Sequence whose first number is base+1.
func NewSequence(prefix string, base int) *Sequence {
	return &Sequence{prefix: prefix, last: base}
}

// Next returns a number that this Sequence has never returned or observed.
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return FormatAccountNumber(s.prefix, s.last)
}

// Observe advances the sequence past an externally supplied number
// (e.g. one restored from a snapshot) so Next never reproduces it.
func (s *Sequence) Observe(number string) {
	prefix, seq, err := ParseAccountNumber(number)
	if err != nil || prefix != s.prefix {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.last {
		s.last = seq
	}
}

// Last returns the most recently issued or observed sequence value.
func (s *Sequence) Last() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
