package dataset

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// defaultEmailAttempts bounds how many candidate emails are tried before
// the source reports exhaustion instead of looping.
const defaultEmailAttempts = 1000

var emailDomains = []string{"example.com", "example.org", "example.net"}

// Source carries all per-run random state: a single seeded generator and
// the set of emails already handed out. Every generation stage draws from
// the same Source, so one seed reproduces an entire run.
type Source struct {
	rng           *rand.Rand
	usedEmails    map[string]struct{}
	emailAttempts int
}

// NewSource creates a Source seeded with the given value.
func NewSource(seed uint64) *Source {
	return &Source{
		rng:           rand.New(rand.NewPCG(seed, seed)),
		usedEmails:    make(map[string]struct{}),
		emailAttempts: defaultEmailAttempts,
	}
}

// IntN returns a uniform int in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntBetween returns a uniform int in [lo, hi].
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of values.
func Pick[T any](s *Source, values []T) T {
	return values[s.rng.IntN(len(values))]
}

// UniqueEmail derives an email address from name that has not been issued
// by this Source before. It retries with numeric suffixes up to a fixed
// bound and returns ErrEmailsExhausted once the bound is hit.
func (s *Source) UniqueEmail(name string) (string, error) {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	for attempt := 0; attempt < s.emailAttempts; attempt++ {
		candidate := local
		if attempt > 0 {
			candidate = fmt.Sprintf("%s%d", local, s.rng.IntN(10000))
		}
		email := candidate + "@" + Pick(s, emailDomains)
		if _, taken := s.usedEmails[email]; !taken {
			s.usedEmails[email] = struct{}{}
			return email, nil
		}
	}
	return "", fmt.Errorf("deriving email for %q: %w", name, ErrEmailsExhausted)
}
