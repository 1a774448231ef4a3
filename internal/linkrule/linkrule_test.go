package linkrule

import (
	"net/url"
	"testing"
)

func TestDefaultTableApply(t *testing.T) {
	t.Parallel()

	tbl := DefaultTable()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ebay gets campid", in: "https://www.ebay.com/item/1", want: "https://www.ebay.com/item/1?campid=5339108180"},
		{name: "ebay country domain", in: "https://www.EBAY.co.uk/itm/2?x=1", want: "https://www.EBAY.co.uk/itm/2?x=1&campid=5339108180"},
		{name: "semicolon pairs kept", in: "https://www.ebay.com/itm/1?a=1;b=2", want: "https://www.ebay.com/itm/1?a=1;b=2&campid=5339108180"},
		{name: "param order kept", in: "https://www.ebay.com/itm/1?z=9&a=1", want: "https://www.ebay.com/itm/1?z=9&a=1&campid=5339108180"},
		{name: "query escaping kept", in: "https://www.ebay.com/sch?q=a+b%20c", want: "https://www.ebay.com/sch?q=a+b%20c&campid=5339108180"},
		{name: "fragment stays last", in: "https://www.ebay.com/itm/1?a=1#top", want: "https://www.ebay.com/itm/1?a=1&campid=5339108180#top"},
		{name: "bare question mark", in: "https://www.ebay.com/itm/1?", want: "https://www.ebay.com/itm/1?campid=5339108180"},
		{name: "escaped existing campid kept", in: "https://www.ebay.com/itm/1?%63ampid=7", want: "https://www.ebay.com/itm/1?%63ampid=7"},
		{name: "existing campid kept", in: "https://www.ebay.com/item/1?campid=42", want: "https://www.ebay.com/item/1?campid=42"},
		{name: "other host unchanged", in: "https://example.com/item/1", want: "https://example.com/item/1"},
		{name: "bare ebay.com does not match", in: "https://ebay.com/item/1", want: "https://ebay.com/item/1"},
		{name: "invalid url unchanged", in: "http://[::1", want: "http://[::1"},
		{name: "relative url unchanged", in: "not a url", want: "not a url"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tbl.Apply(tt.in); got != tt.want {
				t.Fatalf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable([]Rule{
		{HostPattern: `(?i)(^|\.)amazon\.`, Param: "tag", Value: "partner-21"},
		EbayRule,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := tbl.Apply("https://www.amazon.de/dp/B00")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatal(err)
	}
	if u.Query().Get("tag") != "partner-21" {
		t.Fatalf("tag missing in %q", got)
	}
	if u.Query().Has("campid") {
		t.Fatalf("only the first matching rule applies: %q", got)
	}
}

func TestNewTableRejectsBadRules(t *testing.T) {
	t.Parallel()
	if _, err := NewTable([]Rule{{HostPattern: "(", Param: "x"}}); err == nil {
		t.Fatal("expected pattern error")
	}
	if _, err := NewTable([]Rule{{HostPattern: "x"}}); err == nil {
		t.Fatal("expected empty param error")
	}
}

func TestNilTable(t *testing.T) {
	t.Parallel()
	var tbl *Table
	if got := tbl.Apply("https://www.ebay.com/"); got != "https://www.ebay.com/" {
		t.Fatalf("nil table changed url: %q", got)
	}
}
