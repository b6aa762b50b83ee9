package marker

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
	fieldSep   = "::"
)

// scan finds every complete marker span in text, left to right. A span's
// payload is bounded at the nearest "}}" so one malformed marker never
// swallows unrelated trailing text. An opening "{{" with no closing "}}"
// anywhere after it is not a span.
func scan(text string, d Dialect) []Span {
	var spans []Span
	pos := 0
	for {
		open := strings.Index(text[pos:], openDelim)
		if open < 0 {
			break
		}
		open += pos

		closing := strings.Index(text[open+len(openDelim):], closeDelim)
		if closing < 0 {
			// nothing later in the buffer can terminate a marker either
			break
		}
		closing += open + len(openDelim)

		kwEnd := strings.Index(text[open+len(openDelim):], fieldSep)
		if kwEnd < 0 {
			pos = open + 1
			continue
		}
		kwEnd += open + len(openDelim)
		if kwEnd > closing {
			// a "}}" before the first "::", no keyword here
			pos = open + 1
			continue
		}

		kind := d.kindOf(text[open+len(openDelim) : kwEnd])
		if kind == "" {
			// also catches "{{{DOC", the real open may start one byte later
			pos = open + 1
			continue
		}

		spans = append(spans, Span{
			Kind:       kind,
			RawPayload: text[kwEnd+len(fieldSep) : closing],
			Start:      open,
			End:        closing + len(closeDelim),
		})
		pos = closing + len(closeDelim)
	}
	return spans
}
