package extractor_test

import (
	"testing"

	"github.com/Devon-White/html-grader/internal/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	t.Parallel()

	t.Run("builds a queryable document", func(t *testing.T) {
		t.Parallel()

		doc, err := extractor.ParseBytes([]byte(`<html><body><p class="x">hi</p></body></html>`), "")
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("p.x").Length())
		assert.Equal(t, "hi", doc.Find("p").Text())
	})

	t.Run("decodes charset from content type", func(t *testing.T) {
		t.Parallel()

		// "café" in ISO-8859-1
		body := []byte("<html><body><p>caf\xe9</p></body></html>")

		doc, err := extractor.ParseBytes(body, "text/html; charset=iso-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "café", doc.Find("p").Text())
	})

	t.Run("sniffs charset from meta tag", func(t *testing.T) {
		t.Parallel()

		body := []byte(`<html><head><meta charset="windows-1252"></head><body><p>caf` + "\xe9" + `</p></body></html>`)

		doc, err := extractor.ParseBytes(body, "")
		require.NoError(t, err)
		assert.Equal(t, "café", doc.Find("p").Text())
	})

	t.Run("tolerates fragments and empty input", func(t *testing.T) {
		t.Parallel()

		doc, err := extractor.ParseBytes(nil, "")
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Find("html").Length())
		assert.Equal(t, 0, doc.Find("img").Length())
	})
}

func TestTitle(t *testing.T) {
	t.Parallel()

	doc, err := extractor.ParseBytes([]byte(`<html><head><title> Home </title></head><body><h1>Heading</h1></body></html>`), "")
	require.NoError(t, err)
	assert.Equal(t, "Home", extractor.Title(doc))

	doc, err = extractor.ParseBytes([]byte(`<html><body><h1>Heading</h1></body></html>`), "")
	require.NoError(t, err)
	assert.Equal(t, "Heading", extractor.Title(doc))
}
