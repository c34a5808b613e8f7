package internshala

import (
	"context"
	"errors"
	"testing"

	"go-internship-automation/internal/config"
	"go-internship-automation/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakePage struct {
	visited  []string
	listings []scraper.Listing
	navErr   error
}

func (p *fakePage) Navigate(url string) error {
	p.visited = append(p.visited, url)
	return p.navErr
}

func (p *fakePage) CollectListings(config.ListingSelectors) ([]scraper.Listing, error) {
	return p.listings, nil
}

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		prefs    config.Preferences
		expected string
	}{
		{
			name:     "stipend and work from home",
			prefs:    config.Preferences{Category: "web-development", MinStipend: "10000", Location: "work-from-home"},
			expected: "https://internshala.com/internships/web-development-internship/stipend-10000/work-from-home-true",
		},
		{
			name:     "city without stipend",
			prefs:    config.Preferences{Category: "web-development", Location: "Bengaluru"},
			expected: "https://internshala.com/internships/web-development-internship/bengaluru-internship",
		},
		{
			name:     "work from home any case",
			prefs:    config.Preferences{Category: "python", Location: "Work-From-Home"},
			expected: "https://internshala.com/internships/python-internship/work-from-home-true",
		},
		{
			name:     "no location",
			prefs:    config.Preferences{Category: "data-science"},
			expected: "https://internshala.com/internships/data-science-internship",
		},
		{
			name:     "multi word city with diacritics",
			prefs:    config.Preferences{Category: "design", Location: " New Délhi "},
			expected: "https://internshala.com/internships/design-internship/new-delhi-internship",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildSearchURL("https://internshala.com/", tt.prefs))
		})
	}
}

func TestSearch_FiltersByDuration(t *testing.T) {
	page := &fakePage{listings: []scraper.Listing{
		{Index: 0, Title: "Frontend", Duration: "2 Months"},
		{Index: 1, Title: "Backend", Duration: "6 Months"},
		{Index: 2, Title: "Fullstack", Duration: ""},
	}}
	site := config.DefaultSite()
	prefs := config.Preferences{Category: "web-development", Duration: "3"}

	s := NewInternshalaScraper(site, prefs, 0, zaptest.NewLogger(t))
	got, err := s.Search(context.Background(), page)

	require.NoError(t, err)
	assert.Equal(t, []string{s.SearchURL()}, page.visited)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 2, got[1].Index)
}

func TestSearch_EmptyAndErrors(t *testing.T) {
	site := config.DefaultSite()
	s := NewInternshalaScraper(site, config.Preferences{Category: "web-development"}, 0, zaptest.NewLogger(t))

	got, err := s.Search(context.Background(), &fakePage{})
	assert.NoError(t, err)
	assert.Empty(t, got)

	boom := errors.New("boom")
	_, err = s.Search(context.Background(), &fakePage{navErr: boom})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := NewInternshalaScraper(site, config.Preferences{Category: "web-development"}, DefaultSettle, zaptest.NewLogger(t))
	_, err = slow.Search(ctx, &fakePage{})
	assert.ErrorIs(t, err, context.Canceled)
}
