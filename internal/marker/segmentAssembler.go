package marker

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Parser segments text for one dialect. It is stateless, one instance can
// serve any number of goroutines.
type Parser struct {
	dialect Dialect
}

func NewParser(d Dialect) *Parser {
	return &Parser{dialect: d}
}

func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse walks the buffer once, alternating text runs and decoded markers.
// A span whose payload fails decoding degrades to a text segment carrying
// the raw marker substring, malformed input is never silently eaten.
// Concatenating text segments verbatim with Render of the structured ones
// reproduces the input up to marker canonicalization: Render emits fields
// in canonical order, so a payload written in another order round-trips to
// the same decoded record, not the same bytes.
func (p *Parser) Parse(text string) []Segment {
	segments := []Segment{}
	if text == "" {
		return segments
	}

	spans := scan(text, p.dialect)
	last := 0
	for _, span := range spans {
		if span.Start > last {
			segments = append(segments, Segment{Type: SegmentText, Text: text[last:span.Start]})
		}
		if seg, ok := decodeSpan(span); ok {
			segments = append(segments, seg)
		} else {
			segments = append(segments, Segment{Type: SegmentText, Text: text[span.Start:span.End]})
		}
		last = span.End
	}
	if last < len(text) {
		segments = append(segments, Segment{Type: SegmentText, Text: text[last:]})
	}
	return segments
}

func (p *Parser) HasMarkers(text string) bool {
	return len(scan(text, p.dialect)) > 0
}

func (p *Parser) CountMarkers(text string) Counts {
	var counts Counts
	for _, span := range scan(text, p.dialect) {
		switch span.Kind {
		case KindDocument:
			counts.Documents++
		case KindLoadMore:
			counts.LoadMore++
		}
	}
	return counts
}

// ExtractDocumentIDs returns the ids of all valid DOC markers, deduplicated
// in first-seen order.
func (p *Parser) ExtractDocumentIDs(text string) []string {
	var ids []string
	seen := make(map[string]bool)
	for _, seg := range p.Parse(text) {
		if seg.Type != SegmentDocument {
			continue
		}
		if id := seg.Document.DocumentID; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// StripMarkers renders markers to their copy/paste plain-text form. DOC
// markers become the filename, load-more affordances disappear.
func (p *Parser) StripMarkers(text string) string {
	var b strings.Builder
	for _, seg := range p.Parse(text) {
		switch seg.Type {
		case SegmentText:
			b.WriteString(seg.Text)
		case SegmentDocument:
			b.WriteString(seg.Document.Filename)
		}
	}
	return b.String()
}

// ExtractMarkerAt returns the decoded marker whose span covers the byte
// offset pos, or nil when pos falls in plain text.
func (p *Parser) ExtractMarkerAt(text string, pos int) *Segment {
	for _, span := range scan(text, p.dialect) {
		if pos < span.Start {
			return nil
		}
		if pos < span.End {
			if seg, ok := decodeSpan(span); ok {
				return &seg
			}
			return nil
		}
	}
	return nil
}

// Render writes a structured segment back to canonical marker syntax.
// Text segments come back verbatim.
func (p *Parser) Render(seg Segment) string {
	switch seg.Type {
	case SegmentDocument:
		return p.renderDocument(seg.Document)
	case SegmentLoadMore:
		return p.renderLoadMore(seg.LoadMore)
	}
	return seg.Text
}

func (p *Parser) renderDocument(doc *DocumentReference) string {
	var b strings.Builder
	b.WriteString(openDelim)
	b.WriteString(p.dialect.keywordOf(KindDocument))
	writeField(&b, "id", url.PathEscape(doc.DocumentID), false)
	writeField(&b, "name", url.PathEscape(doc.Filename), true)
	if doc.Extension != "" {
		writeField(&b, "type", doc.Extension, false)
	}
	if doc.FileSize > 0 {
		writeField(&b, "size", strconv.Itoa(doc.FileSize), false)
	}
	if doc.Language != "" {
		writeField(&b, "language", doc.Language, false)
	}
	if len(doc.Topics) > 0 {
		if raw, err := json.Marshal(doc.Topics); err == nil {
			writeField(&b, "topics", url.PathEscape(string(raw)), false)
		}
	}
	if doc.FolderPath != "" {
		writeField(&b, "folder", url.PathEscape(doc.FolderPath), true)
	}
	if doc.CreatedAt != "" {
		writeField(&b, "created", doc.CreatedAt, false)
	}
	if doc.UpdatedAt != "" {
		writeField(&b, "updated", doc.UpdatedAt, false)
	}
	if doc.PageCount > 0 {
		writeField(&b, "pages", strconv.Itoa(doc.PageCount), false)
	}
	if doc.SlideCount > 0 {
		writeField(&b, "slides", strconv.Itoa(doc.SlideCount), false)
	}
	if doc.Context != "" {
		writeField(&b, "ctx", doc.Context, false)
	}
	b.WriteString(closeDelim)
	return b.String()
}

func (p *Parser) renderLoadMore(lm *LoadMoreDescriptor) string {
	var b strings.Builder
	b.WriteString(openDelim)
	b.WriteString(p.dialect.keywordOf(KindLoadMore))
	writeField(&b, "total", strconv.Itoa(lm.Total), false)
	writeField(&b, "shown", strconv.Itoa(lm.Shown), false)
	if lm.ContextID != "" {
		writeField(&b, "context", lm.ContextID, false)
	} else {
		writeField(&b, "remaining", strconv.Itoa(lm.Remaining), false)
	}
	b.WriteString(closeDelim)
	return b.String()
}

func writeField(b *strings.Builder, key, value string, quoted bool) {
	b.WriteString(fieldSep)
	b.WriteString(key)
	b.WriteByte('=')
	if quoted {
		b.WriteByte('"')
		b.WriteString(value)
		b.WriteByte('"')
	} else {
		b.WriteString(value)
	}
}

// package-level defaults bound to the v3 dialect

var defaultParser = NewParser(DialectV3)

func Parse(text string) []Segment            { return defaultParser.Parse(text) }
func HasMarkers(text string) bool            { return defaultParser.HasMarkers(text) }
func CountMarkers(text string) Counts        { return defaultParser.CountMarkers(text) }
func ExtractDocumentIDs(text string) []string { return defaultParser.ExtractDocumentIDs(text) }
func StripMarkers(text string) string        { return defaultParser.StripMarkers(text) }
func ExtractMarkerAt(text string, pos int) *Segment {
	return defaultParser.ExtractMarkerAt(text, pos)
}
