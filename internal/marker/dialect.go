package marker

import "fmt"

// Dialect names a grammar variant. The live grammar is v3; legacy is the
// older spelling kept as a compatibility shim, it differs only in the
// load-more keyword and the context field name.
type Dialect struct {
	Name            string
	loadMoreKeyword string
}

var (
	DialectV3     = Dialect{Name: "v3", loadMoreKeyword: "LOAD_MORE"}
	DialectLegacy = Dialect{Name: "legacy", loadMoreKeyword: "LOADMORE"}
)

// DialectByName resolves a dialect from its wire name. Empty picks v3.
func DialectByName(name string) (Dialect, error) {
	switch name {
	case "", DialectV3.Name:
		return DialectV3, nil
	case DialectLegacy.Name:
		return DialectLegacy, nil
	}
	return Dialect{}, fmt.Errorf("unknown marker dialect %q", name)
}

// kindOf maps a keyword from the buffer onto a Kind, or "" if the keyword
// is not part of this dialect.
func (d Dialect) kindOf(keyword string) Kind {
	switch keyword {
	case string(KindDocument):
		return KindDocument
	case d.loadMoreKeyword:
		return KindLoadMore
	}
	return ""
}

// keywordOf is the inverse of kindOf, used when re-rendering markers.
func (d Dialect) keywordOf(kind Kind) string {
	if kind == KindLoadMore {
		return d.loadMoreKeyword
	}
	return string(kind)
}
