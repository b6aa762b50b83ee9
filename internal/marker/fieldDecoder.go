package marker

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// decodeFields splits a raw payload into key/value pairs. Values may be
// double-quoted and are percent-encoded on the wire. Unknown keys survive
// here and are ignored by the per-kind decoders.
func decodeFields(rawPayload string) map[string]string {
	fields := make(map[string]string)
	for _, piece := range strings.Split(rawPayload, fieldSep) {
		key, value, found := strings.Cut(piece, "=")
		if !found || key == "" {
			continue
		}
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		fields[key] = value
	}
	return fields
}

// decodeDocument builds a DocumentReference from DOC payload fields.
// id and name are required; everything else degrades field by field.
func decodeDocument(rawPayload string) (*DocumentReference, bool) {
	fields := decodeFields(rawPayload)

	id, hasId := fields["id"]
	name, hasName := fields["name"]
	if !hasId || id == "" || !hasName || name == "" {
		return nil, false
	}

	doc := &DocumentReference{
		DocumentID: id,
		Filename:   name,
		FolderPath: fields["folder"],
		Language:   fields["language"],
		CreatedAt:  fields["created"],
		UpdatedAt:  fields["updated"],
		Context:    fields["ctx"],
	}

	if ext, ok := fields["type"]; ok && ext != "" {
		doc.Extension = normalizeExtension(ext)
		doc.MIMEType = MIMEForExtension(ext)
	}

	doc.FileSize = softInt(fields["size"])
	doc.PageCount = softInt(fields["pages"])
	doc.SlideCount = softInt(fields["slides"])

	if raw, ok := fields["topics"]; ok {
		topics := []string{}
		if err := json.Unmarshal([]byte(raw), &topics); err != nil {
			topics = []string{}
		}
		doc.Topics = topics
	}

	return doc, true
}

// decodeLoadMore builds a LoadMoreDescriptor. total and shown are required
// and must be numeric. Remaining is recomputed even when the payload
// carries a literal remaining value, the identity wins over the wire.
func decodeLoadMore(rawPayload string) (*LoadMoreDescriptor, bool) {
	fields := decodeFields(rawPayload)

	total, okTotal := strictInt(fields["total"])
	shown, okShown := strictInt(fields["shown"])
	if !okTotal || !okShown {
		return nil, false
	}

	context := fields["context"]
	if context == "" {
		context = fields["ctx"]
	}

	return &LoadMoreDescriptor{
		Total:     total,
		Shown:     shown,
		Remaining: total - shown,
		ContextID: context,
	}, true
}

// decodeSpan dispatches on kind and wraps the result in a Segment.
func decodeSpan(span Span) (Segment, bool) {
	switch span.Kind {
	case KindDocument:
		doc, ok := decodeDocument(span.RawPayload)
		if !ok {
			return Segment{}, false
		}
		return Segment{Type: SegmentDocument, Document: doc}, true
	case KindLoadMore:
		lm, ok := decodeLoadMore(span.RawPayload)
		if !ok {
			return Segment{}, false
		}
		return Segment{Type: SegmentLoadMore, LoadMore: lm}, true
	}
	return Segment{}, false
}

// softInt parses optional numerics, garbage just drops the field.
func softInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// strictInt parses required numerics, garbage invalidates the marker.
func strictInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
