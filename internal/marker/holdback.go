package marker

import "strings"

// DefaultHoldbackChars bounds how much tail text a stream session will
// withhold for a possibly-incomplete marker before giving up on it.
const DefaultHoldbackChars = 512

// ParseWithHoldback parses everything up to the last safe boundary and
// returns the withheld tail. The tail is either the last "{{" that no "}}"
// terminates, or a single trailing "{" that might grow into one. An open
// marker that already exceeds holdbackChars is treated as runaway and
// flushed as text.
func (p *Parser) ParseWithHoldback(text string, holdbackChars int) ([]Segment, string) {
	if holdbackChars <= 0 {
		holdbackChars = DefaultHoldbackChars
	}

	boundary := len(text)
	if open := strings.LastIndex(text, openDelim); open >= 0 {
		if !strings.Contains(text[open:], closeDelim) {
			boundary = open
		}
	}
	if boundary == len(text) && strings.HasSuffix(text, "{") {
		boundary = len(text) - 1
	}

	// runaway open marker, stop waiting for the close
	if len(text)-boundary > holdbackChars {
		boundary = len(text)
	}

	return p.Parse(text[:boundary]), text[boundary:]
}

// StreamSession feeds a holdback parser chunk by chunk, carrying the
// withheld tail between calls. One session per stream, no locking.
type StreamSession struct {
	parser        *Parser
	holdbackChars int
	heldBack      string
}

func NewStreamSession(p *Parser, holdbackChars int) *StreamSession {
	if holdbackChars <= 0 {
		holdbackChars = DefaultHoldbackChars
	}
	return &StreamSession{parser: p, holdbackChars: holdbackChars}
}

// Feed appends one chunk and returns the segments that became safe to emit.
func (s *StreamSession) Feed(chunk string) []Segment {
	segments, tail := s.parser.ParseWithHoldback(s.heldBack+chunk, s.holdbackChars)
	s.heldBack = tail
	return segments
}

// Flush ends the stream. An unterminated marker in the tail degrades to a
// literal text segment, never dropped. Subsequent calls return nil.
func (s *StreamSession) Flush() []Segment {
	if s.heldBack == "" {
		return nil
	}
	tail := s.heldBack
	s.heldBack = ""
	return []Segment{{Type: SegmentText, Text: tail}}
}

// HeldBack exposes the current tail so the session can be persisted.
func (s *StreamSession) HeldBack() string {
	return s.heldBack
}

// RestoreHeldBack rehydrates a persisted session tail.
func (s *StreamSession) RestoreHeldBack(tail string) {
	s.heldBack = tail
}
