package config

import (
	"os"
	"strings"
	"time"

	"github.com/Devon-White/html-grader/internal/failure"
	"github.com/Devon-White/html-grader/internal/writer"
)

// DefaultChecksFile is used when --checks is not given.
const DefaultChecksFile = "checks.json"

// Config holds all CLI options for an html-grader run.
type Config struct {
	File       string // local HTML file; mutually exclusive with URL
	URL        string // remote HTML document; mutually exclusive with File
	ChecksFile string
	ChecksSet  bool   // ChecksFile was given explicitly rather than defaulted
	Format     string // json, yaml, text or markdown
	Indent     int
	Output     string // optional file receiving a copy of the report
	Timeout    time.Duration
	UserAgent  string
	NoColor    bool
	Verbose    bool
}

// Validate checks each explicitly given option on its own first, then the
// file/URL exclusivity rule, then the defaulted checks file. It never touches
// the network.
func (c *Config) Validate() error {
	if c.File != "" && !exists(c.File) {
		return failure.New(failure.KindNotFound, "%s does not exist. Exiting.", c.File)
	}
	if c.URL != "" && !IsURL(c.URL) {
		return failure.New(failure.KindConfig, "%s is not an URL. Exiting.", c.URL)
	}
	if c.ChecksSet && !exists(c.ChecksFile) {
		return failure.New(failure.KindNotFound, "%s does not exist. Exiting.", c.ChecksFile)
	}
	if (c.File == "") == (c.URL == "") {
		return failure.New(failure.KindConfig, "Specify either a file or an URL. Exiting")
	}
	if !exists(c.ChecksFile) {
		return failure.New(failure.KindNotFound, "%s does not exist. Exiting.", c.ChecksFile)
	}
	if err := writer.CheckFormat(c.Format); err != nil {
		return err
	}
	if c.Indent < 0 {
		return failure.New(failure.KindConfig, "indent must be non-negative")
	}
	if c.Timeout < 0 {
		return failure.New(failure.KindConfig, "timeout must be non-negative")
	}
	return nil
}

// IsURL reports whether s starts with an http or https scheme.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
