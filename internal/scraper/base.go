// Shared types for listing search.

package scraper

import (
	"context"
	"time"

	"go-internship-automation/internal/config"
)

// Listing is one entry of a search results page. Index is the card position
// on that page, used to reopen it after the page is reloaded.
type Listing struct {
	Index    int
	Title    string
	Company  string
	URL      string
	Duration string
}

// Page is the browser surface a search needs.
type Page interface {
	Navigate(url string) error
	CollectListings(sel config.ListingSelectors) ([]Listing, error)
}

// Scraper defines the interface a job board search implements.
type Scraper interface {
	//Search navigates to the results page and returns its listings
	Search(ctx context.Context, page Page) ([]Listing, error)

	//SearchURL is the query-free results page the campaign returns to
	SearchURL() string

	//Name is the platform name
	Name() string
}

// Pause sleeps for d or until ctx is done, whichever comes first.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
