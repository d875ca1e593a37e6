package idgen

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var subjectIDPattern = regexp.MustCompile(`^subj_\d+_[a-z0-9]{5}$`)

func TestPrefixedDeterministic(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1718000000000) }
	gen := New("subj", WithClock(clock), WithEntropy(bytes.NewReader([]byte{0, 1, 2, 35, 36})))

	assert.Equal(t, "subj_1718000000000_abc9a", gen.NewID())
}

func TestPrefixedDefaultsMatchPattern(t *testing.T) {
	gen := New("subj")
	for i := 0; i < 50; i++ {
		id := gen.NewID()
		require.Regexp(t, subjectIDPattern, id)
	}
}

func TestPrefixedSkipsBiasedBytes(t *testing.T) {
	clock := func() time.Time { return time.UnixMilli(1718000000000) }
	entropy := bytes.NewReader([]byte{255, 252, 0, 1, 2, 3, 4})
	gen := New("subj", WithClock(clock), WithEntropy(entropy))

	assert.Equal(t, "subj_1718000000000_abcde", gen.NewID())
}

func TestPrefixedSuffixIsUniform(t *testing.T) {
	// bytes 0..249 in order: every character shows up six or seven times
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	p := New("subj", WithEntropy(bytes.NewReader(all)))

	counts := map[rune]int{}
	for i := 0; i < 252/suffixLength; i++ {
		for _, r := range p.suffix() {
			counts[r]++
		}
	}
	require.Len(t, counts, len(alphabet))
	for r, n := range counts {
		assert.GreaterOrEqual(t, n, 6, string(r))
		assert.LessOrEqual(t, n, 7, string(r))
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPrefixedFallsBackWhenEntropyFails(t *testing.T) {
	gen := New("subj", WithEntropy(failingReader{}))
	assert.Regexp(t, subjectIDPattern, gen.NewID())
}

func TestPrefixedConcurrentUse(t *testing.T) {
	gen := New("subj")
	var wg sync.WaitGroup
	ids := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.NewID()
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		assert.Regexp(t, subjectIDPattern, id)
	}
}
