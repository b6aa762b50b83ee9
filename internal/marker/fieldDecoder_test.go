package marker

import (
	"reflect"
	"testing"
)

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *DocumentReference
		wantOk  bool
	}{
		{
			name: "full metadata payload",
			payload: `id=doc-42::name="Q3%20Report.pdf"::type=pdf::size=20480::language=en` +
				`::topics=%5B%22finance%22%2C%22quarterly%22%5D::folder="reports%2F2026"` +
				`::created=2026-01-02T10:00:00Z::updated=2026-03-04T11:00:00Z::pages=12`,
			want: &DocumentReference{
				DocumentID: "doc-42",
				Filename:   "Q3 Report.pdf",
				Extension:  "pdf",
				MIMEType:   "application/pdf",
				FileSize:   20480,
				FolderPath: "reports/2026",
				Language:   "en",
				Topics:     []string{"finance", "quarterly"},
				CreatedAt:  "2026-01-02T10:00:00Z",
				UpdatedAt:  "2026-03-04T11:00:00Z",
				PageCount:  12,
			},
			wantOk: true,
		},
		{
			name:    "minimal with ctx",
			payload: `id=7::name="a.pdf"::ctx=list`,
			want:    &DocumentReference{DocumentID: "7", Filename: "a.pdf", Context: "list"},
			wantOk:  true,
		},
		{
			name:    "missing id is invalid",
			payload: `name="a.pdf"`,
			wantOk:  false,
		},
		{
			name:    "missing name is invalid",
			payload: `id=1::type=pdf`,
			wantOk:  false,
		},
		{
			name:    "bad page count drops the field only",
			payload: `id=1::name="x.pdf"::pages=abc`,
			want:    &DocumentReference{DocumentID: "1", Filename: "x.pdf"},
			wantOk:  true,
		},
		{
			name:    "malformed topics json becomes empty list",
			payload: `id=1::name="x.pdf"::topics=%5Bnot-json`,
			want:    &DocumentReference{DocumentID: "1", Filename: "x.pdf", Topics: []string{}},
			wantOk:  true,
		},
		{
			name:    "unknown extension gets default mime",
			payload: `id=1::name="x.weird"::type=weird`,
			want: &DocumentReference{
				DocumentID: "1", Filename: "x.weird",
				Extension: "weird", MIMEType: "application/octet-stream",
			},
			wantOk: true,
		},
		{
			name:    "unknown keys are ignored",
			payload: `id=1::name="x.pdf"::future_field=hello`,
			want:    &DocumentReference{DocumentID: "1", Filename: "x.pdf"},
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeDocument(tt.payload)
			if ok != tt.wantOk {
				t.Fatalf("decodeDocument() ok = %v, want %v", ok, tt.wantOk)
			}
			if !tt.wantOk {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeDocument() = %+v, want %+v", got, tt.want)
			}

			// decoding the same payload twice must agree
			again, _ := decodeDocument(tt.payload)
			if !reflect.DeepEqual(got, again) {
				t.Errorf("decodeDocument() is not deterministic: %+v vs %+v", got, again)
			}
		})
	}
}

func TestDecodeLoadMore(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *LoadMoreDescriptor
		wantOk  bool
	}{
		{
			name:    "remaining computed from total and shown",
			payload: "total=50::shown=10",
			want:    &LoadMoreDescriptor{Total: 50, Shown: 10, Remaining: 40},
			wantOk:  true,
		},
		{
			name:    "inconsistent literal remaining is recomputed",
			payload: "total=50::shown=10::remaining=5",
			want:    &LoadMoreDescriptor{Total: 50, Shown: 10, Remaining: 40},
			wantOk:  true,
		},
		{
			name:    "context id carried through",
			payload: "total=9::shown=3::context=files",
			want:    &LoadMoreDescriptor{Total: 9, Shown: 3, Remaining: 6, ContextID: "files"},
			wantOk:  true,
		},
		{
			name:    "missing total is invalid",
			payload: "shown=3",
			wantOk:  false,
		},
		{
			name:    "garbage total is invalid",
			payload: "total=lots::shown=3",
			wantOk:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeLoadMore(tt.payload)
			if ok != tt.wantOk {
				t.Fatalf("decodeLoadMore() ok = %v, want %v", ok, tt.wantOk)
			}
			if tt.wantOk && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeLoadMore() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
