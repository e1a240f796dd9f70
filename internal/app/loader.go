package app

import (
	"context"
	"fmt"
	"time"
)

// LoaderResult is the per-request data handed to the page renderer.
type LoaderResult struct {
	Message    string
	HasMessage bool
	Now        time.Time
}

// Loader fetches the footer message and stamps the request time.
type Loader struct {
	Source MessageSource
	Now    func() time.Time
}

// NewLoader returns a Loader using the wall clock. A nil source yields no message.
func NewLoader(src MessageSource) *Loader {
	return &Loader{Source: src, Now: time.Now}
}

// Load returns the message and current time without transforming either.
func (l *Loader) Load(ctx context.Context) (LoaderResult, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}

	result := LoaderResult{Now: now()}
	if l.Source == nil {
		return result, nil
	}

	msg, err := l.Source.Message(ctx)
	if err != nil {
		return LoaderResult{}, fmt.Errorf("load message: %w", err)
	}
	result.Message = msg
	result.HasMessage = msg != ""
	return result, nil
}
