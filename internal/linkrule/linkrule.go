// Package linkrule decorates outbound item links with marketplace partner
// parameters. Rules are data so new marketplaces need no code change.
package linkrule

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Rule adds Param=Value to links whose host matches HostPattern, unless the
// link already carries Param.
type Rule struct {
	HostPattern string `yaml:"hostPattern"`
	Param       string `yaml:"param"`
	Value       string `yaml:"value"`
}

// EbayRule is the partner rule shipped by default.
var EbayRule = Rule{HostPattern: `(?i)\.ebay\.`, Param: "campid", Value: "5339108180"}

type compiled struct {
	re    *regexp.Regexp
	param string
	value string
}

// Table applies the first matching rule to a URL. The zero Table leaves every URL unchanged.
type Table struct {
	rules []compiled
}

// DefaultTable holds only EbayRule.
func DefaultTable() *Table {
	t, _ := NewTable([]Rule{EbayRule})
	return t
}

func NewTable(rules []Rule) (*Table, error) {
	t := &Table{}
	for i, r := range rules {
		if strings.TrimSpace(r.Param) == "" {
			return nil, fmt.Errorf("rule %d: empty param", i)
		}
		re, err := regexp.Compile(r.HostPattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: host pattern: %w", i, err)
		}
		t.rules = append(t.rules, compiled{re: re, param: r.Param, value: r.Value})
	}
	return t, nil
}

// Apply returns raw with the matching rule's parameter appended. The existing
// query text is kept byte for byte. Unparseable URLs, URLs without a host, and
// URLs that already carry the parameter come back untouched.
func (t *Table) Apply(raw string) string {
	if t == nil || raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := u.Hostname()
	for _, r := range t.rules {
		if !r.re.MatchString(host) {
			continue
		}
		if hasParam(u.RawQuery, r.param) {
			return raw
		}
		pair := url.QueryEscape(r.param) + "=" + url.QueryEscape(r.value)
		if u.RawQuery == "" {
			u.RawQuery = pair
		} else {
			u.RawQuery += "&" + pair
		}
		u.ForceQuery = false
		return u.String()
	}
	return raw
}

// hasParam scans an '&'-separated query for name. Pairs that do not unescape
// are compared as written.
func hasParam(rawQuery, name string) bool {
	for _, pair := range strings.Split(rawQuery, "&") {
		key, _, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if key == name {
			return true
		}
	}
	return false
}
