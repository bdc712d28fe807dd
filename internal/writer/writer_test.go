package writer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Devon-White/html-grader/internal/checker"
	"github.com/Devon-White/html-grader/internal/failure"
	"github.com/Devon-White/html-grader/internal/writer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = checker.Result{
	{Selector: "a", Present: false},
	{Selector: "body > p", Present: true},
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("json with four space indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, sample, writer.Options{Indent: 4}))
		assert.Equal(t, "{\n    \"a\": false,\n    \"body > p\": true\n}\n", buf.String())
	})

	t.Run("json with zero indent is compact", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, sample, writer.Options{Format: writer.FormatJSON}))
		assert.Equal(t, "{\"a\":false,\"body > p\":true}\n", buf.String())
	})

	t.Run("json for an empty result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, checker.Result{}, writer.Options{Indent: 4}))
		assert.Equal(t, "{}\n", buf.String())
	})

	t.Run("yaml keeps order", func(t *testing.T) {
		t.Parallel()

		r := checker.Result{
			{Selector: "z", Present: true},
			{Selector: "#main", Present: false},
		}

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, r, writer.Options{Format: writer.FormatYAML}))

		var node yaml.Node
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &node))
		mapping := node.Content[0]
		require.Len(t, mapping.Content, 4)
		assert.Equal(t, "z", mapping.Content[0].Value)
		assert.Equal(t, "true", mapping.Content[1].Value)
		assert.Equal(t, "#main", mapping.Content[2].Value)
		assert.Equal(t, "false", mapping.Content[3].Value)
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})

	t.Run("plain text without colour", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, sample, writer.Options{Format: writer.FormatText}))
		assert.Equal(t, "✗ a\n✓ body > p\n1/2 selectors present\n", buf.String())
	})

	t.Run("markdown table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, writer.Write(&buf, sample, writer.Options{Format: writer.FormatMarkdown}))
		assert.Contains(t, buf.String(), "1/2 selectors present")
		assert.Contains(t, buf.String(), "|")
		assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	})

	t.Run("unknown format is a config error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := writer.Write(&buf, sample, writer.Options{Format: "xml"})
		require.Error(t, err)
		assert.Equal(t, failure.KindConfig, failure.KindOf(err))
		assert.Empty(t, buf.String())
	})
}

func TestCheckFormat(t *testing.T) {
	t.Parallel()

	for _, format := range append([]string{""}, writer.Formats...) {
		assert.NoError(t, writer.CheckFormat(format), format)
	}

	err := writer.CheckFormat("html")
	require.Error(t, err)
	assert.Equal(t, failure.KindConfig, failure.KindOf(err))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "nested", "result.json")

	require.NoError(t, writer.WriteFile(path, []byte("{}\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))
}
