package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ParseBytes decodes an HTML document to UTF-8 and builds a queryable tree.
// contentType is the HTTP Content-Type header, if any; when it names no
// charset the encoding is sniffed from a BOM or the document's <meta> tags.
func ParseBytes(body []byte, contentType string) (*goquery.Document, error) {
	enc, _, _ := charset.DetermineEncoding(body, contentType)

	root, err := html.Parse(enc.NewDecoder().Reader(bytes.NewReader(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	return goquery.NewDocumentFromNode(root), nil
}

// Title returns the document's <title>, falling back to the first <h1>.
func Title(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	return title
}
