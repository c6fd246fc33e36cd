// Package ics imports fixture feeds into game sessions and exports week
// plans as iCalendar.
package ics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ClutchChemist/Weekplaner-sub000/internal/config"
	"github.com/ClutchChemist/Weekplaner-sub000/internal/logging"
)

// FetchResult is one feed's raw ICS payload.
type FetchResult struct {
	Feed config.Feed
	Body []byte
}

// Fetcher downloads ICS feeds.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a sane timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchAll downloads every feed concurrently. Individual feed failures
// are logged and skipped; the planner stays usable on partial data.
func (f *Fetcher) FetchAll(ctx context.Context, feeds []config.Feed) ([]FetchResult, error) {
	results := make([]FetchResult, len(feeds))
	ok := make([]bool, len(feeds))

	g, ctx := errgroup.WithContext(ctx)
	for i, feed := range feeds {
		g.Go(func() error {
			body, err := f.fetchOne(ctx, feed)
			if err != nil {
				logging.Logger.Warn("feed fetch failed", "feed", feed.ID, "error", err)
				return nil
			}
			results[i] = FetchResult{Feed: feed, Body: body}
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fetched := make([]FetchResult, 0, len(results))
	for i, res := range results {
		if ok[i] {
			fetched = append(fetched, res)
		}
	}
	return fetched, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, feed config.Feed) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body: %w", err)
	}
	return body, nil
}
