// Package source produces parsed HTML documents from a local file or a
// remote URL behind a single interface.
package source

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/PuerkitoBio/goquery"

	"github.com/Devon-White/html-grader/internal/extractor"
	"github.com/Devon-White/html-grader/internal/failure"
	"github.com/Devon-White/html-grader/internal/fetcher"
)

// Source yields the document to grade.
type Source interface {
	// Document reads and parses the document. The context bounds any
	// network I/O.
	Document(ctx context.Context) (*goquery.Document, error)
	// String describes the source for log output.
	String() string
}

var (
	_ Source = (*File)(nil)
	_ Source = (*URL)(nil)
)

// File is a Source backed by a local HTML file.
type File struct {
	Path string
}

// NewFile returns a Source reading the HTML file at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Document reads the whole file and parses it.
func (f *File) Document(ctx context.Context) (*goquery.Document, error) {
	body, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.New(failure.KindNotFound, "%s does not exist. Exiting.", f.Path)
		}
		return nil, failure.Wrap(failure.KindNotFound, err, "could not read %s", f.Path)
	}

	doc, err := extractor.ParseBytes(body, "")
	if err != nil {
		return nil, failure.Wrap(failure.KindFormat, err, "could not parse %s", f.Path)
	}
	return doc, nil
}

func (f *File) String() string {
	return f.Path
}

// Getter fetches a URL. *fetcher.Fetcher satisfies it.
type Getter interface {
	Fetch(ctx context.Context, url string) (*fetcher.Response, error)
}

// URL is a Source backed by an HTTP GET.
type URL struct {
	Addr   string
	Getter Getter
}

// NewURL returns a Source fetching addr with g.
func NewURL(addr string, g Getter) *URL {
	return &URL{Addr: addr, Getter: g}
}

// Document fetches the URL and parses the response body using the charset
// announced by the server.
func (u *URL) Document(ctx context.Context) (*goquery.Document, error) {
	resp, err := u.Getter.Fetch(ctx, u.Addr)
	if err != nil {
		return nil, failure.Wrap(failure.KindNetwork, err, "Could not get URL %s", u.Addr)
	}

	doc, err := extractor.ParseBytes(resp.Body, resp.ContentType)
	if err != nil {
		return nil, failure.Wrap(failure.KindFormat, err, "could not parse %s", u.Addr)
	}
	return doc, nil
}

func (u *URL) String() string {
	return u.Addr
}
