// Package idgen builds time ordered, prefixed identifiers such as
// "subj_1718000000000_a9k2x".
package idgen

import (
	"crypto/rand"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	alphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength = 5
	// unbiasedLimit is 256 rounded down to a multiple of len(alphabet).
	unbiasedLimit = 252
)

// Generator produces new identifiers.
type Generator interface {
	NewID() string
}

// Option customises a Prefixed generator.
type Option func(*Prefixed)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Prefixed) {
		if now != nil {
			p.now = now
		}
	}
}

// WithEntropy overrides the random source used for the suffix.
func WithEntropy(r io.Reader) Option {
	return func(p *Prefixed) {
		if r != nil {
			p.entropy = r
		}
	}
}

// Prefixed renders <prefix>_<unix millis>_<5 chars of [a-z0-9]>.
type Prefixed struct {
	prefix  string
	now     func() time.Time
	entropy io.Reader
	mu      sync.Mutex
}

// New constructs a prefixed generator backed by the wall clock and crypto/rand.
func New(prefix string, opts ...Option) *Prefixed {
	p := &Prefixed{prefix: prefix, now: time.Now, entropy: rand.Reader}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewID implements Generator.
func (p *Prefixed) NewID() string {
	var b strings.Builder
	b.Grow(len(p.prefix) + 1 + 13 + 1 + suffixLength)
	b.WriteString(p.prefix)
	b.WriteByte('_')
	b.WriteString(strconv.FormatInt(p.now().UnixMilli(), 10))
	b.WriteByte('_')
	b.WriteString(p.suffix())
	return b.String()
}

func (p *Prefixed) suffix() string {
	out := make([]byte, 0, suffixLength)
	buf := make([]byte, suffixLength)

	p.mu.Lock()
	defer p.mu.Unlock()

	var src io.Reader = p.entropy
	for len(out) < suffixLength {
		chunk := buf[:suffixLength-len(out)]
		if _, err := io.ReadFull(src, chunk); err != nil {
			// fall back to the clock seeded generator
			src = newLCG(uint64(time.Now().UnixNano()))
			continue
		}
		for _, v := range chunk {
			if v >= unbiasedLimit {
				continue
			}
			out = append(out, alphabet[int(v)%len(alphabet)])
		}
	}
	return string(out)
}

// lcg is a clock seeded fallback used only when the configured entropy fails.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed}
}

func (l *lcg) Read(b []byte) (int, error) {
	for i := range b {
		l.state = l.state*6364136223846793005 + 1442695040888963407
		b[i] = byte(l.state >> 56)
	}
	return len(b), nil
}
