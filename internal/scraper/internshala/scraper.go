package internshala

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go-internship-automation/internal/config"
	"go-internship-automation/internal/filter"
	"go-internship-automation/internal/scraper"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSettle is how long results get to render after navigation.
const DefaultSettle = 5 * time.Second

const workFromHome = "work-from-home"

type InternshalaScraper struct {
	site   *config.Site
	prefs  config.Preferences
	settle time.Duration
	log    *zap.Logger
}

func NewInternshalaScraper(site *config.Site, prefs config.Preferences, settle time.Duration, log *zap.Logger) *InternshalaScraper {
	return &InternshalaScraper{
		site:   site,
		prefs:  prefs,
		settle: settle,
		log:    log,
	}
}

func (s *InternshalaScraper) Name() string {
	return "Internshala"
}

func (s *InternshalaScraper) SearchURL() string {
	return BuildSearchURL(s.site.BaseURL, s.prefs)
}

// slugify lower-cases, strips diacritics and joins words with "-":
// "Thiruvananthapuram " -> "thiruvananthapuram", "São Paulo" -> "sao-paulo".
func slugify(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.Join(strings.Fields(strings.ToLower(result)), "-")
}

// BuildSearchURL composes the results URL:
// {base}/internships/{category}-internship[/stipend-{min}][/work-from-home-true | /{location}-internship]
func BuildSearchURL(base string, prefs config.Preferences) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	b.WriteString("/internships/")
	b.WriteString(slugify(prefs.Category))
	b.WriteString("-internship")

	if stipend := strings.TrimSpace(prefs.MinStipend); stipend != "" {
		b.WriteString("/stipend-")
		b.WriteString(stipend)
	}

	location := strings.TrimSpace(prefs.Location)
	switch {
	case strings.EqualFold(location, workFromHome):
		b.WriteString("/work-from-home-true")
	case location != "":
		b.WriteString("/")
		b.WriteString(slugify(location))
		b.WriteString("-internship")
	}
	return b.String()
}

// Search opens the results page, waits for it to settle and returns the
// listings whose duration fits the preference. No results is not an error.
func (s *InternshalaScraper) Search(ctx context.Context, page scraper.Page) ([]scraper.Listing, error) {
	url := s.SearchURL()
	s.log.Info("🔍 searching internships", zap.String("url", url))

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := scraper.Pause(ctx, s.settle); err != nil {
		return nil, err
	}

	listings, err := page.CollectListings(s.site.Listing)
	if err != nil {
		return nil, fmt.Errorf("collect listings: %w", err)
	}

	kept := listings[:0]
	for _, l := range listings {
		if !filter.MatchesDuration(l.Duration, s.prefs.Duration) {
			s.log.Debug("⏭️ duration out of range", zap.String("title", l.Title), zap.String("duration", l.Duration))
			continue
		}
		kept = append(kept, l)
	}

	s.log.Info("📦 listings found", zap.Int("total", len(listings)), zap.Int("kept", len(kept)))
	return kept, nil
}
