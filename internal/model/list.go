package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ListDocument is the whole shared list as carried in a URL fragment.
// It is built once by the codec and only read afterwards.
type ListDocument struct {
	Name          string            `json:"name,omitempty"`
	Items         []Item            `json:"items"`
	Theme         *ThemeSettings    `json:"theme,omitempty"`
	IsDarkMode    Flag              `json:"isDarkMode,omitempty"`
	Subtitle      *SubtitleSettings `json:"subtitle,omitempty"`
	CustomColumns []ColumnDef       `json:"customColumns"`
}

// Item is one row of the list. CustomColumns is keyed by ColumnDef.ID and may be sparse.
type Item struct {
	Name          string            `json:"name,omitempty"`
	URL           string            `json:"url,omitempty"`
	CustomColumns CellValues        `json:"customColumns,omitempty"`
}

// ThemeSettings is a partial override; empty fields inherit from lower layers.
type ThemeSettings struct {
	MainBg string `json:"mainBg,omitempty" yaml:"mainBg,omitempty"`
	BoxBg  string `json:"boxBg,omitempty" yaml:"boxBg,omitempty"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Font   string `json:"font,omitempty" yaml:"font,omitempty"`
}

// SubtitleSettings is the optional caption block shown under the title.
type SubtitleSettings struct {
	Text           string  `json:"text,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
	Alignment      string  `json:"alignment,omitempty"`      // left | center | right
	ImageAlignment string  `json:"imageAlignment,omitempty"` // left | right | "" (centered)
	TextSize       SizeKey `json:"textSize,omitempty"`
	ImageSize      SizeKey `json:"imageSize,omitempty"`
}

// ColumnDef is a user-defined extra column. ID is the stable key, Name the header text.
type ColumnDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SizeKey is an ordinal "1".."5". Payloads written by older clients carry it as a
// JSON number, so both forms are accepted on decode.
type SizeKey string

func (k *SizeKey) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*k = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*k = SizeKey(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*k = SizeKey(strconv.FormatInt(i, 10))
		return nil
	}
	*k = SizeKey(n.String())
	return nil
}

// Flag is true only for the JSON literal true. Any other value, including
// "true" as a string, decodes to false instead of failing the document.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(bytes.Equal(bytes.TrimSpace(b), []byte("true")))
	return nil
}

// CellValues holds an item's custom column text keyed by column ID. Values
// are shown verbatim, so numbers and booleans keep their JSON spelling, null
// becomes "" and nested values keep their compact JSON text. A value that is
// not an object decodes to no values.
type CellValues map[string]string

func (c *CellValues) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*c = nil
		return nil
	}
	out := make(CellValues, len(raw))
	for k, v := range raw {
		out[k] = cellText(v)
	}
	*c = out
	return nil
}

func cellText(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0, bytes.Equal(v, []byte("null")):
		return ""
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}

// HasContent reports whether the subtitle block should be shown at all.
func (s *SubtitleSettings) HasContent() bool {
	return s != nil && (s.Text != "" || s.ImageURL != "")
}
