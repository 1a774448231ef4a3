package codec

import (
	"encoding/base64"
	"errors"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/Makepad-fr/sharelist/internal/model"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  model.ListDocument
	}{
		{
			name: "zero document",
			doc:  model.ListDocument{},
		},
		{
			name: "empty items and columns",
			doc:  model.ListDocument{Name: "Groceries", Items: []model.Item{}, CustomColumns: []model.ColumnDef{}},
		},
		{
			name: "multi-byte unicode",
			doc: model.ListDocument{
				Name: "Épicerie – 買い物リスト 🛒",
				Items: []model.Item{
					{Name: "Crème fraîche", URL: "https://example.com/ç?q=ü"},
					{Name: "牛乳"},
					{},
				},
			},
		},
		{
			name: "full document",
			doc: model.ListDocument{
				Name:       "Camping",
				IsDarkMode: true,
				Theme:      &model.ThemeSettings{MainBg: "#000", Font: "Georgia, serif"},
				Subtitle: &model.SubtitleSettings{
					Text:           "Bring these",
					ImageURL:       "https://img.example.com/a.png",
					Alignment:      "center",
					ImageAlignment: "right",
					TextSize:       "4",
					ImageSize:      "1",
				},
				CustomColumns: []model.ColumnDef{{ID: "qty", Name: "Qty"}, {ID: "who", Name: "Who"}},
				Items: []model.Item{
					{Name: "Tent", URL: "https://www.ebay.com/item/1", CustomColumns: map[string]string{"qty": "1", "who": "Ana"}},
					{Name: "Stove", CustomColumns: map[string]string{"who": "Bo"}},
				},
			},
		},
		{
			name: "empty theme and subtitle present",
			doc:  model.ListDocument{Theme: &model.ThemeSettings{}, Subtitle: &model.SubtitleSettings{}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			frag, err := Encode(tt.doc)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if strings.ContainsAny(frag, "+/=# ") {
				t.Fatalf("fragment is not URL-safe: %q", frag)
			}
			got, err := Decode(frag)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !reflect.DeepEqual(got, tt.doc) {
				t.Fatalf("round trip mismatch:\n got: %#v\nwant: %#v", got, tt.doc)
			}
		})
	}
}

func TestDecodeAcceptsLeadingHash(t *testing.T) {
	t.Parallel()
	frag, err := Encode(model.ListDocument{Name: "x"})
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Decode("#" + frag)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Name != "x" {
		t.Fatalf("name = %q", doc.Name)
	}
}

func TestDecodeFailures(t *testing.T) {
	t.Parallel()

	b64 := func(s string) string { return url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(s))) }

	tests := []struct {
		name     string
		in       string
		kind     Kind
		sentinel error
		message  string
	}{
		{name: "empty", in: "", kind: KindEmptyFragment, sentinel: ErrEmptyFragment, message: "No list data found."},
		{name: "only hash", in: "#", kind: KindEmptyFragment, sentinel: ErrEmptyFragment, message: "No list data found."},
		{name: "bad percent escape", in: "abc%zz", kind: KindDecodeFailure, sentinel: ErrDecodeFailure, message: "Invalid or corrupted list data"},
		{name: "not base64", in: "!!!!", kind: KindDecodeFailure, sentinel: ErrDecodeFailure, message: "Invalid or corrupted list data"},
		{name: "truncated base64", in: "eyJuYW1lIjoi" + "Y", kind: KindDecodeFailure, sentinel: ErrDecodeFailure, message: "Invalid or corrupted list data"},
		{name: "invalid utf8", in: url.QueryEscape(base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, '{'})), kind: KindDecodeFailure, sentinel: ErrDecodeFailure, message: "Invalid or corrupted list data"},
		{name: "not json", in: b64("hello"), kind: KindParseFailure, sentinel: ErrParseFailure, message: "Invalid or corrupted list data"},
		{name: "json array", in: b64(`[1,2]`), kind: KindParseFailure, sentinel: ErrParseFailure, message: "Invalid or corrupted list data"},
		{name: "truncated json", in: b64(`{"name":"x","items":[`), kind: KindParseFailure, sentinel: ErrParseFailure, message: "Invalid or corrupted list data"},
		{name: "wrong field type", in: b64(`{"items":"nope"}`), kind: KindParseFailure, sentinel: ErrParseFailure, message: "Invalid or corrupted list data"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tt.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("error %T is not *DecodeError", err)
			}
			if de.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", de.Kind, tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", err, tt.sentinel)
			}
			if de.Message() != tt.message {
				t.Fatalf("message = %q, want %q", de.Message(), tt.message)
			}
		})
	}
}

func TestDecodeToleratesLooseDisplayFields(t *testing.T) {
	t.Parallel()

	b64 := func(s string) string { return url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(s))) }

	tests := []struct {
		name string
		raw  string
		dark bool
		qty  string
	}{
		{name: "dark mode as string", raw: `{"name":"L","items":[{"name":"a"}],"isDarkMode":"true"}`},
		{name: "dark mode as number", raw: `{"name":"L","items":[{"name":"a"}],"isDarkMode":1}`},
		{name: "dark mode null", raw: `{"name":"L","items":[{"name":"a"}],"isDarkMode":null}`},
		{name: "dark mode literal true", raw: `{"name":"L","items":[{"name":"a"}],"isDarkMode":true}`, dark: true},
		{name: "number column value", raw: `{"items":[{"name":"a","customColumns":{"qty":2}}]}`, qty: "2"},
		{name: "decimal column value", raw: `{"items":[{"name":"a","customColumns":{"qty":1.5}}]}`, qty: "1.5"},
		{name: "bool column value", raw: `{"items":[{"name":"a","customColumns":{"qty":false}}]}`, qty: "false"},
		{name: "null column value", raw: `{"items":[{"name":"a","customColumns":{"qty":null}}]}`, qty: ""},
		{name: "nested column value", raw: `{"items":[{"name":"a","customColumns":{"qty":[1, 2]}}]}`, qty: "[1,2]"},
		{name: "column values not an object", raw: `{"items":[{"name":"a","customColumns":"x"}]}`, qty: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Decode(b64(tt.raw))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if bool(doc.IsDarkMode) != tt.dark {
				t.Fatalf("IsDarkMode = %v, want %v", doc.IsDarkMode, tt.dark)
			}
			if len(doc.Items) != 1 {
				t.Fatalf("items = %+v", doc.Items)
			}
			if got := doc.Items[0].CustomColumns["qty"]; got != tt.qty {
				t.Fatalf("qty = %q, want %q", got, tt.qty)
			}
		})
	}
}

func TestDecodeNumericSizeKeys(t *testing.T) {
	t.Parallel()
	raw := `{"name":"n","items":[],"subtitle":{"text":"t","textSize":3,"imageSize":"5"}}`
	doc, err := Decode(url.QueryEscape(base64.StdEncoding.EncodeToString([]byte(raw))))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Subtitle.TextSize != "3" || doc.Subtitle.ImageSize != "5" {
		t.Fatalf("sizes = %q/%q", doc.Subtitle.TextSize, doc.Subtitle.ImageSize)
	}
}

func TestShareURLAndFragmentFromInput(t *testing.T) {
	t.Parallel()
	doc := model.ListDocument{Name: "Party"}
	u, err := ShareURL("https://listassist.app/share.html#old", doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(u, "https://listassist.app/share.html#") {
		t.Fatalf("url = %q", u)
	}
	frag := FragmentFromInput(u)
	got, err := Decode(frag)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Name != "Party" {
		t.Fatalf("name = %q", got.Name)
	}
	if FragmentFromInput("  abc ") != "abc" {
		t.Fatalf("bare fragment not passed through")
	}
}
