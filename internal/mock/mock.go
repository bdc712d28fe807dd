// Package mock provides function-field fakes of the grader's interfaces.
package mock

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/Devon-White/html-grader/internal/fetcher"
	"github.com/Devon-White/html-grader/internal/source"
)

var (
	_ source.Getter = (*Getter)(nil)
	_ source.Source = (*Source)(nil)
)

// Getter is a mock implementation of source.Getter.
type Getter struct {
	FetchFn func(ctx context.Context, url string) (*fetcher.Response, error)
}

func (g *Getter) Fetch(ctx context.Context, url string) (*fetcher.Response, error) {
	return g.FetchFn(ctx, url)
}

// Source is a mock implementation of source.Source.
type Source struct {
	DocumentFn func(ctx context.Context) (*goquery.Document, error)
	Name       string
}

func (s *Source) Document(ctx context.Context) (*goquery.Document, error) {
	return s.DocumentFn(ctx)
}

func (s *Source) String() string {
	return s.Name
}
