// Package sweep checks the output invariants of a language over a range
// of numbers using a bounded pool of workers.
package sweep

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/az-ai-labs/numwords/numwords"
)

const (
	defaultWorkers = 4
	chunkSize      = 4096 // numbers per work item
	maxViolations  = 20   // violations kept per language
)

// Options controls a sweep. From and To are inclusive and must satisfy
// From <= To.
type Options struct {
	From, To int64
	Workers  int
}

// Violation is one number whose words break an invariant.
type Violation struct {
	Number int64
	Words  string
	Reason string
}

// Stats summarizes a sweep over one language.
type Stats struct {
	Language   string
	Checked    int64
	Failed     int64
	Errors     int64
	Violations []Violation

	mu sync.Mutex
}

// Run checks every number in [opts.From, opts.To] in lang.
func Run(lang numwords.Language, opts Options) *Stats {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	stats := &Stats{Language: lang.Name()}

	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for lo := opts.From; lo <= opts.To; {
		hi := opts.To
		// The difference wraps for ranges wider than int64; uint64 holds it.
		if uint64(opts.To-lo) >= chunkSize {
			hi = lo + chunkSize - 1
		}

		wg.Add(1)
		semaphore <- struct{}{}
		go func(lo, hi int64) {
			defer wg.Done()
			defer func() { <-semaphore }()
			stats.merge(checkChunk(lang, lo, hi))
		}(lo, hi)

		if hi == opts.To {
			break
		}
		lo = hi + 1
	}

	wg.Wait()
	return stats
}

type chunkState struct {
	checked    int64
	failed     int64
	errors     int64
	violations []Violation
}

func checkChunk(lang numwords.Language, lo, hi int64) *chunkState {
	cs := &chunkState{}
	for n := lo; ; n++ {
		cs.checked++
		words, err := numwords.ToWords(lang, n)
		switch {
		case err != nil:
			cs.errors++
			cs.add(Violation{Number: n, Reason: err.Error()})
		default:
			if reason := Check(lang, n, words); reason != "" {
				cs.failed++
				cs.add(Violation{Number: n, Words: words, Reason: reason})
			}
		}
		if n == hi {
			break
		}
	}
	return cs
}

func (cs *chunkState) add(v Violation) {
	if len(cs.violations) < maxViolations {
		cs.violations = append(cs.violations, v)
	}
}

func (s *Stats) merge(cs *chunkState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Checked += cs.checked
	s.Failed += cs.failed
	s.Errors += cs.errors
	for _, v := range cs.violations {
		if len(s.Violations) >= maxViolations {
			break
		}
		s.Violations = append(s.Violations, v)
	}
}

// OK reports whether the sweep found no violations and no errors.
func (s *Stats) OK() bool {
	return s.Failed == 0 && s.Errors == 0
}

// Check returns a description of the first invariant the words for n
// break, or "" when they hold.
func Check(lang numwords.Language, n int64, words string) string {
	lex := lang.Lexicon()
	sep := lex.Separators

	switch {
	case words == "":
		return "empty output"
	case strings.TrimSpace(words) != words:
		return "surrounding whitespace"
	case n == 0 && words != lex.Zero:
		return fmt.Sprintf("zero renders as %q, want %q", words, lex.Zero)
	}

	for _, s := range []string{sep.Word, sep.Scale, sep.Group} {
		if s == "" {
			continue
		}
		if strings.Contains(words, s+s) {
			return fmt.Sprintf("doubled separator %q", s)
		}
		if strings.HasPrefix(words, s) || strings.HasSuffix(words, s) {
			return fmt.Sprintf("leading or trailing separator %q", s)
		}
	}

	if n < 0 {
		abs := strconv.FormatInt(n, 10)[1:]
		pos, err := numwords.ToWordsDigits(lang, abs)
		if err != nil {
			return "magnitude: " + err.Error()
		}
		if want := lex.Minus + sep.Sign + pos; words != want {
			pos, got, exp := firstDivergence(want, words)
			return fmt.Sprintf("negative form diverges at byte %d (got 0x%02x, want 0x%02x)", pos, got, exp)
		}
	}
	return ""
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(want, got string) (pos int, g, w byte) {
	n := min(len(want), len(got))
	for i := range n {
		if want[i] != got[i] {
			return i, got[i], want[i]
		}
	}
	pos = n
	if pos < len(got) {
		g = got[pos]
	}
	if pos < len(want) {
		w = want[pos]
	}
	return pos, g, w
}
