package strsplit

import (
	"iter"

	"github.com/indigo-web/strsplit/config"
	"github.com/indigo-web/strsplit/internal/strutil"
)

// Splitter lazily walks a string, yielding pieces between delimiter occurrences. Yielded
// segments are never copied: every one of them is a slice of the original haystack.
//
// A Splitter is not safe for concurrent use. The haystack itself may be shared between
// any number of splitters, as it is never modified.
type Splitter struct {
	// remainder is always a suffix of the haystack until the splitter is done
	remainder string
	done      bool
	delim     Delimiter
	cfg       *config.Config
}

// New returns a splitter over the haystack. Neither of arguments is validated: an empty
// haystack produces a single empty segment.
func New(haystack string, delim Delimiter) *Splitter {
	return NewWithConfig(haystack, delim, config.Default())
}

// NewWithConfig returns a splitter using the passed config, that must be obtained via
// config.Default(). Nil config is substituted by the default one.
func NewWithConfig(haystack string, delim Delimiter, cfg *config.Config) *Splitter {
	if cfg == nil {
		cfg = config.Default()
	}

	return &Splitter{
		remainder: haystack,
		delim:     delim,
		cfg:       cfg,
	}
}

// Next returns the next segment. When no more delimiters are found, the rest of the
// haystack is returned as the last segment, even if it's empty. After that, ok is always
// false.
func (s *Splitter) Next() (segment string, ok bool) {
	if s.done {
		return "", false
	}

	start, end, found := s.delim.Find(s.remainder)
	if !found {
		segment = s.remainder
		s.remainder, s.done = "", true
		return segment, true
	}

	segment = s.remainder[:start]
	s.remainder = s.remainder[end:]

	return segment, true
}

// Remainder returns the not yet consumed part of the haystack. Returns false if the
// splitter is already exhausted.
func (s *Splitter) Remainder() (string, bool) {
	return s.remainder, !s.done
}

// All returns an iterator over the remaining segments. It consumes the splitter, but stopping
// the iteration leaves the rest of segments available for the consequent calls.
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			segment, ok := s.Next()
			if !ok || !yield(segment) {
				return
			}
		}
	}
}

// Collect drains the splitter into a slice.
func (s *Splitter) Collect() []string {
	segments := make([]string, 0, s.cfg.Collect.SegmentsPrealloc)

	for segment := range s.All() {
		segments = append(segments, segment)
	}

	return segments
}

// Split returns an iterator over segments of the haystack. Every iteration starts over with
// a new splitter, so the sequence may be ranged multiple times.
func Split(haystack string, delim Delimiter) iter.Seq[string] {
	return func(yield func(string) bool) {
		New(haystack, delim).All()(yield)
	}
}

// Join is the inverse of splitting by the literal delimiter: it glues segments back,
// reconstructing the original haystack.
func Join(segments iter.Seq[string], delim string) string {
	return strutil.Join(segments, delim)
}
