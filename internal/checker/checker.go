// Package checker evaluates CSS selectors against a parsed document.
package checker

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/Devon-White/html-grader/internal/failure"
)

// Entry is the outcome for one selector.
type Entry struct {
	Selector string
	Present  bool
}

// Result holds one Entry per distinct selector, in check-list order.
type Result []Entry

// Check evaluates each selector against doc. A selector is present when it
// matches at least one element. Repeated selectors are reported once, at
// their first position. A selector that does not compile fails the whole
// check rather than being reported as absent.
func Check(doc *goquery.Document, selectors []string) (Result, error) {
	if doc == nil {
		return nil, errors.New("check: nil document")
	}

	seen := make(map[string]bool, len(selectors))
	result := make(Result, 0, len(selectors))
	for _, sel := range selectors {
		if seen[sel] {
			continue
		}
		seen[sel] = true

		m, err := cascadia.Compile(sel)
		if err != nil {
			return nil, failure.Wrap(failure.KindFormat, err, "invalid selector %q", sel)
		}

		result = append(result, Entry{
			Selector: sel,
			Present:  doc.FindMatcher(m).Length() > 0,
		})
	}
	return result, nil
}

// Passed counts the selectors that matched.
func (r Result) Passed() int {
	n := 0
	for _, e := range r {
		if e.Present {
			n++
		}
	}
	return n
}

// MarshalJSON encodes the result as a JSON object whose keys keep entry order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Selector); err != nil {
			return nil, err
		}
		// Encode terminates each value with a newline.
		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')
		if e.Present {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
