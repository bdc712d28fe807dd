package converter

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/Devon-White/html-grader/internal/checker"
)

var multiBlankLines = regexp.MustCompile(`\n{3,}`)

// ResultTable renders a check result as a markdown summary line followed by
// a GitHub-flavoured table with one row per selector.
func ResultTable(r checker.Result) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	md, err := conv.ConvertString(resultHTML(r))
	if err != nil {
		return "", fmt.Errorf("html-to-markdown conversion: %w", err)
	}

	return CleanMarkdown(md), nil
}

func resultHTML(r checker.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<p><strong>%d/%d selectors present</strong></p>\n", r.Passed(), len(r))
	sb.WriteString("<table>\n<thead><tr><th>Selector</th><th>Present</th></tr></thead>\n<tbody>\n")
	for _, e := range r {
		fmt.Fprintf(&sb, "<tr><td><code>%s</code></td><td>%t</td></tr>\n", html.EscapeString(e.Selector), e.Present)
	}
	sb.WriteString("</tbody>\n</table>\n")

	return sb.String()
}

// CleanMarkdown normalizes whitespace in markdown output.
func CleanMarkdown(md string) string {
	// Collapse 3+ blank lines to 2
	md = multiBlankLines.ReplaceAllString(md, "\n\n")

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	md = strings.Join(lines, "\n")

	return strings.TrimSpace(md)
}
