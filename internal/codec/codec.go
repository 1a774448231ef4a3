// Package codec converts a ListDocument to and from the text carried in a
// share URL fragment: JSON, then standard base64 of the UTF-8 bytes, then
// percent-encoding.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Makepad-fr/sharelist/internal/model"
)

// Encode returns the fragment text (without the leading '#') for doc.
func Encode(doc model.ListDocument) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return url.QueryEscape(base64.StdEncoding.EncodeToString(b)), nil
}

// Decode reverses Encode. A leading '#' is tolerated. Every failure is a *DecodeError.
func Decode(fragment string) (model.ListDocument, error) {
	fragment = strings.TrimSpace(strings.TrimPrefix(fragment, "#"))
	if fragment == "" {
		return model.ListDocument{}, newDecodeError(KindEmptyFragment, nil)
	}

	// PathUnescape keeps '+' literal; QueryUnescape would turn base64 '+' into a space.
	b64, err := url.PathUnescape(fragment)
	if err != nil {
		return model.ListDocument{}, newDecodeError(KindDecodeFailure, fmt.Errorf("percent-decode: %w", err))
	}
	raw, err := decodeBase64(b64)
	if err != nil {
		return model.ListDocument{}, newDecodeError(KindDecodeFailure, fmt.Errorf("base64: %w", err))
	}
	if !utf8.Valid(raw) {
		return model.ListDocument{}, newDecodeError(KindDecodeFailure, errors.New("payload is not valid UTF-8"))
	}

	var doc model.ListDocument
	if err := unmarshalObject(raw, &doc); err != nil {
		return model.ListDocument{}, newDecodeError(KindParseFailure, err)
	}
	return doc, nil
}

// decodeBase64 accepts padded and unpadded standard base64, and the URL-safe
// alphabet some link shorteners rewrite into.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func unmarshalObject(raw []byte, doc *model.ListDocument) error {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "{") {
		return errors.New("payload is not a JSON object")
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

// ShareURL joins a share page URL and the encoded document.
func ShareURL(base string, doc model.ListDocument) (string, error) {
	frag, err := Encode(doc)
	if err != nil {
		return "", err
	}
	base = strings.TrimSpace(base)
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	return base + "#" + frag, nil
}

// FragmentFromInput accepts a full share URL, "#fragment" or a bare fragment
// and returns the fragment text.
func FragmentFromInput(in string) string {
	in = strings.TrimSpace(in)
	if i := strings.IndexByte(in, '#'); i >= 0 {
		return in[i+1:]
	}
	return in
}
