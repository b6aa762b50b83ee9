package marker

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	p := NewParser(DialectV3)

	t.Run("plain text is one segment", func(t *testing.T) {
		input := "no markers here at all"
		got := p.Parse(input)
		want := []Segment{{Type: SegmentText, Text: input}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %+v, want %+v", got, want)
		}
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		if got := p.Parse(""); len(got) != 0 {
			t.Errorf("Parse(\"\") = %+v, want empty", got)
		}
	})

	t.Run("unterminated open stays literal", func(t *testing.T) {
		input := `tail {{DOC::id=1::name="a`
		got := p.Parse(input)
		want := []Segment{{Type: SegmentText, Text: input}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %+v, want %+v", got, want)
		}
	})

	t.Run("segments interleave in source order", func(t *testing.T) {
		input := `intro {{DOC::id=7::name="a.pdf"}} middle {{LOAD_MORE::total=5::shown=2}} end`
		got := p.Parse(input)

		if len(got) != 5 {
			t.Fatalf("Parse() yielded %d segments, want 5: %+v", len(got), got)
		}
		wantTypes := []SegmentType{SegmentText, SegmentDocument, SegmentText, SegmentLoadMore, SegmentText}
		for i, wt := range wantTypes {
			if got[i].Type != wt {
				t.Errorf("segment %d type = %s, want %s", i, got[i].Type, wt)
			}
		}
		if got[1].Document.DocumentID != "7" || got[1].Document.Filename != "a.pdf" {
			t.Errorf("document segment = %+v", got[1].Document)
		}
		if got[3].LoadMore.Remaining != 3 {
			t.Errorf("load-more remaining = %d, want 3", got[3].LoadMore.Remaining)
		}
		if got[0].Text != "intro " || got[2].Text != " middle " || got[4].Text != " end" {
			t.Errorf("text runs = %q %q %q", got[0].Text, got[2].Text, got[4].Text)
		}
	})

	t.Run("invalid payload degrades to raw text", func(t *testing.T) {
		input := `a {{DOC::name="orphan.pdf"}} b`
		got := p.Parse(input)
		want := []Segment{
			{Type: SegmentText, Text: "a "},
			{Type: SegmentText, Text: `{{DOC::name="orphan.pdf"}}`},
			{Type: SegmentText, Text: " b"},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Parse() = %+v, want %+v", got, want)
		}
	})

	t.Run("whitespace survives byte for byte", func(t *testing.T) {
		input := "  \n\t{{DOC::id=1::name=\"a.pdf\"}}\t\n  "
		var b strings.Builder
		for _, seg := range p.Parse(input) {
			b.WriteString(p.Render(seg))
		}
		if b.String() != input {
			t.Errorf("reassembled %q, want %q", b.String(), input)
		}
	})
}

func TestRenderRoundTrip(t *testing.T) {
	p := NewParser(DialectV3)
	inputs := []string{
		`see {{DOC::id=doc-42::name="Q3%20Report.pdf"::type=pdf::size=20480::pages=12}} here`,
		`{{LOAD_MORE::total=50::shown=10::remaining=40}}`,
		`mixed {{DOC::id=1::name="a.pdf"}} and {{LOAD_MORE::total=3::shown=1::remaining=2}}`,
	}

	for _, input := range inputs {
		first := p.Parse(input)

		var b strings.Builder
		for _, seg := range first {
			b.WriteString(p.Render(seg))
		}

		second := p.Parse(b.String())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("round trip drifted for %q:\nfirst  %+v\nsecond %+v", input, first, second)
		}
	}
}

func TestHasMarkers(t *testing.T) {
	p := NewParser(DialectV3)
	if p.HasMarkers("plain text") {
		t.Error("HasMarkers(plain) = true")
	}
	if !p.HasMarkers(`{{DOC::id=1::name="a"}}`) {
		t.Error("HasMarkers(doc) = false")
	}
	if p.HasMarkers(`{{DOC::id=1::name="a`) {
		t.Error("HasMarkers(unterminated) = true")
	}
}

func TestCountMarkers(t *testing.T) {
	input := `{{DOC::id=1::name="a"}} x {{DOC::id=2::name="b"}} y {{LOAD_MORE::total=5::shown=2}}`
	got := CountMarkers(input)
	want := Counts{Documents: 2, LoadMore: 1}
	if got != want {
		t.Errorf("CountMarkers() = %+v, want %+v", got, want)
	}
}

func TestExtractDocumentIDs(t *testing.T) {
	input := `{{DOC::id=7::name="a"}} and {{DOC::id=7::name="a"}} and {{DOC::id=9::name="b"}}`
	got := ExtractDocumentIDs(input)
	want := []string{"7", "9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDocumentIDs() = %v, want %v", got, want)
	}
}

func TestStripMarkers(t *testing.T) {
	input := `Check {{DOC::id=1::name="report.pdf"}} for details. {{LOAD_MORE::total=5::shown=2}}`
	got := StripMarkers(input)
	want := "Check report.pdf for details. "
	if got != want {
		t.Errorf("StripMarkers() = %q, want %q", got, want)
	}
}

func TestExtractMarkerAt(t *testing.T) {
	input := `before {{DOC::id=1::name="a.pdf"}} after`

	if seg := ExtractMarkerAt(input, 3); seg != nil {
		t.Errorf("ExtractMarkerAt(text run) = %+v, want nil", seg)
	}

	seg := ExtractMarkerAt(input, 10) // inside the marker
	if seg == nil || seg.Type != SegmentDocument || seg.Document.DocumentID != "1" {
		t.Errorf("ExtractMarkerAt(marker) = %+v", seg)
	}

	if seg := ExtractMarkerAt(input, 38); seg != nil {
		t.Errorf("ExtractMarkerAt(trailing text) = %+v, want nil", seg)
	}
}

func TestSegmentJSONKeys(t *testing.T) {
	segments := Parse(`intro {{DOC::id=1::name="a.pdf"}} {{LOAD_MORE::total=3::shown=1}}`)

	data, err := json.Marshal(segments)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	for _, key := range []string{`"type"`, `"text"`, `"document"`, `"load_more"`, `"document_id"`, `"remaining"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected key %s in %s", key, data)
		}
	}
	for _, key := range []string{`"Type"`, `"Text"`, `"Document"`, `"LoadMore"`} {
		if strings.Contains(string(data), key) {
			t.Errorf("Go-cased key %s leaked onto the wire: %s", key, data)
		}
	}
}
