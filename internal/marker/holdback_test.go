package marker

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseWithHoldback(t *testing.T) {
	p := NewParser(DialectV3)

	t.Run("no open marker flushes everything", func(t *testing.T) {
		input := `done {{DOC::id=1::name="a.pdf"}} text`
		parts, held := p.ParseWithHoldback(input, 0)
		if held != "" {
			t.Errorf("heldBack = %q, want empty", held)
		}
		if len(parts) != 3 || parts[1].Type != SegmentDocument {
			t.Errorf("parts = %+v", parts)
		}
	})

	t.Run("open tail is withheld", func(t *testing.T) {
		parts, held := p.ParseWithHoldback(`streamed {{DOC::id=1::nam`, 0)
		if held != `{{DOC::id=1::nam` {
			t.Errorf("heldBack = %q", held)
		}
		want := []Segment{{Type: SegmentText, Text: "streamed "}}
		if !reflect.DeepEqual(parts, want) {
			t.Errorf("parts = %+v, want %+v", parts, want)
		}
	})

	t.Run("lone trailing brace is withheld", func(t *testing.T) {
		parts, held := p.ParseWithHoldback("maybe a marker {", 0)
		if held != "{" {
			t.Errorf("heldBack = %q, want single brace", held)
		}
		if len(parts) != 1 || parts[0].Text != "maybe a marker " {
			t.Errorf("parts = %+v", parts)
		}
	})

	t.Run("complete marker before open tail still flushes", func(t *testing.T) {
		parts, held := p.ParseWithHoldback(`a {{DOC::id=1::name="x"}} b {{DOC::id=2`, 0)
		if held != "{{DOC::id=2" {
			t.Errorf("heldBack = %q", held)
		}
		if len(parts) != 3 || parts[1].Type != SegmentDocument || parts[2].Text != " b " {
			t.Errorf("parts = %+v", parts)
		}
	})

	t.Run("runaway open marker gives up and flushes as text", func(t *testing.T) {
		input := "x {{DOC::id=1::" + strings.Repeat("a", 100)
		parts, held := p.ParseWithHoldback(input, 32)
		if held != "" {
			t.Errorf("heldBack = %q, want empty after giving up", held)
		}
		if len(parts) != 1 || parts[0].Type != SegmentText || parts[0].Text != input {
			t.Errorf("parts = %+v", parts)
		}
	})
}

func TestStreamSession(t *testing.T) {
	t.Run("marker split across two chunks", func(t *testing.T) {
		s := NewStreamSession(NewParser(DialectV3), 0)

		first := s.Feed(`Here is {{DOC::id=1::nam`)
		for _, seg := range first {
			if strings.Contains(seg.Text, "{{DOC") {
				t.Fatalf("leaked incomplete marker fragment: %+v", seg)
			}
		}

		second := s.Feed(`e="a.pdf"::ctx=text}} done`)

		docs := 0
		for _, seg := range append(first, second...) {
			if seg.Type == SegmentDocument {
				docs++
				if seg.Document.Filename != "a.pdf" {
					t.Errorf("document = %+v", seg.Document)
				}
			}
		}
		if docs != 1 {
			t.Errorf("emitted %d document segments, want exactly 1", docs)
		}
		if s.HeldBack() != "" {
			t.Errorf("heldBack = %q, want empty", s.HeldBack())
		}
	})

	t.Run("flush degrades unterminated marker to text", func(t *testing.T) {
		s := NewStreamSession(NewParser(DialectV3), 0)
		s.Feed(`{{DOC::id=1::na`)

		got := s.Flush()
		want := []Segment{{Type: SegmentText, Text: `{{DOC::id=1::na`}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Flush() = %+v, want %+v", got, want)
		}
		if again := s.Flush(); again != nil {
			t.Errorf("second Flush() = %+v, want nil", again)
		}
	})

	t.Run("byte at a time chunking", func(t *testing.T) {
		input := `intro {{DOC::id=1::name="a.pdf"}} {{LOAD_MORE::total=3::shown=1}} outro `
		s := NewStreamSession(NewParser(DialectV3), 0)

		var all []Segment
		for i := 0; i < len(input); i++ {
			all = append(all, s.Feed(input[i:i+1])...)
		}
		all = append(all, s.Flush()...)

		docs, loadMores := 0, 0
		var text strings.Builder
		for _, seg := range all {
			switch seg.Type {
			case SegmentDocument:
				docs++
			case SegmentLoadMore:
				loadMores++
			case SegmentText:
				text.WriteString(seg.Text)
			}
		}
		if docs != 1 || loadMores != 1 {
			t.Errorf("got %d docs and %d load-mores, want 1 and 1", docs, loadMores)
		}
		if text.String() != "intro  outro " {
			t.Errorf("text runs = %q, want %q", text.String(), "intro  outro ")
		}
	})

	t.Run("held back tail survives persistence", func(t *testing.T) {
		s := NewStreamSession(NewParser(DialectV3), 0)
		s.Feed(`part {{DOC::id=9::nam`)
		tail := s.HeldBack()

		restored := NewStreamSession(NewParser(DialectV3), 0)
		restored.RestoreHeldBack(tail)
		segs := restored.Feed(`e="b.pdf"}}`)

		if len(segs) != 1 || segs[0].Type != SegmentDocument || segs[0].Document.DocumentID != "9" {
			t.Errorf("segments after restore = %+v", segs)
		}
	})
}
