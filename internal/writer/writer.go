package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Devon-White/html-grader/internal/checker"
	"github.com/Devon-White/html-grader/internal/converter"
	"github.com/Devon-White/html-grader/internal/failure"
)

// Report formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Formats lists the accepted values of Options.Format.
var Formats = []string{FormatJSON, FormatYAML, FormatText, FormatMarkdown}

// Options controls report rendering.
type Options struct {
	Format string // empty selects FormatJSON
	Indent int    // JSON indentation width in spaces
	Color  bool   // colourize text output
}

// CheckFormat reports a config error unless format is empty or one of Formats.
func CheckFormat(format string) error {
	if format == "" || slices.Contains(Formats, format) {
		return nil
	}
	return failure.New(failure.KindConfig, "unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// Write renders the result and writes it to w, newline terminated.
func Write(w io.Writer, r checker.Result, opts Options) error {
	data, err := Encode(r, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Encode renders the result in the requested format. The output always ends
// with a newline.
func Encode(r checker.Result, opts Options) ([]byte, error) {
	if err := CheckFormat(opts.Format); err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatYAML:
		return encodeYAML(r)
	case FormatText:
		return encodeText(r, opts.Color), nil
	case FormatMarkdown:
		md, err := converter.ResultTable(r)
		if err != nil {
			return nil, err
		}
		return []byte(md + "\n"), nil
	default:
		return encodeJSON(r, opts.Indent)
	}
}

func encodeJSON(r checker.Result, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(r checker.Result) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range r {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Selector},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", e.Present)},
		)
	}
	if len(r) == 0 {
		node.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeText(r checker.Result, colorize bool) []byte {
	success := color.New(color.FgGreen)
	failed := color.New(color.FgRed)
	if !colorize {
		success.DisableColor()
		failed.DisableColor()
	}

	var buf bytes.Buffer
	for _, e := range r {
		if e.Present {
			fmt.Fprintf(&buf, "%s %s\n", success.Sprint("✓"), e.Selector)
		} else {
			fmt.Fprintf(&buf, "%s %s\n", failed.Sprint("✗"), e.Selector)
		}
	}
	fmt.Fprintf(&buf, "%d/%d selectors present\n", r.Passed(), len(r))
	return buf.Bytes()
}

// WriteFile writes a rendered report to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
