package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-internship-automation/internal/ai"
	"go-internship-automation/internal/config"
	"go-internship-automation/internal/form"
	"go-internship-automation/internal/scraper"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrLoginFailed = errors.New("login failed")

// Browser is the session surface the campaign drives.
type Browser interface {
	Navigate(url string) error
	URL() string
	Content() (string, error)
	Fill(selector, value string) error
	Click(selector string) error
	ClickFirst(selectors []string, forced bool) (string, error)
	CollectListings(sel config.ListingSelectors) ([]scraper.Listing, error)
	OpenListing(l scraper.Listing, sel config.ListingSelectors) error
	Find(identifier string) (form.Control, error)
	Capture(name string)
	Close() error
}

type Analyzer interface {
	Analyze(ctx context.Context, markup, purpose string) ai.Result
}

// Delays are the fixed waits between steps.
type Delays struct {
	AfterNavigate time.Duration
	AfterLogin    time.Duration
	AfterOpen     time.Duration
	AfterClick    time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		AfterNavigate: 3 * time.Second,
		AfterLogin:    5 * time.Second,
		AfterOpen:     5 * time.Second,
		AfterClick:    3 * time.Second,
	}
}

// Summary is the outcome of one run.
type Summary struct {
	RunID     string
	Submitted int
	Attempted int
	Failed    int
	Max       int
}

type Options struct {
	Site            *config.Site
	Credentials     config.Credentials
	MaxApplications int
	Delays          Delays
}

type Campaign struct {
	browser  Browser
	search   scraper.Scraper
	analyzer Analyzer
	profile  form.Profile
	filler   *form.Filler
	site     *config.Site
	creds    config.Credentials
	max      int
	delays   Delays
	base     *zap.Logger
	log      *zap.Logger
	state    State
}

func New(b Browser, search scraper.Scraper, analyzer Analyzer, profile form.Profile, opts Options, log *zap.Logger) *Campaign {
	return &Campaign{
		browser:  b,
		search:   search,
		analyzer: analyzer,
		profile:  profile,
		site:     opts.Site,
		creds:    opts.Credentials,
		max:      opts.MaxApplications,
		delays:   opts.Delays,
		base:     log,
		log:      log,
		state:    LoggedOut,
	}
}

func (c *Campaign) State() State {
	return c.state
}

func (c *Campaign) setState(s State) {
	c.state = s
	c.log.Debug("state", zap.Stringer("state", s))
}

// Run logs in, searches and applies until the quota is met or the listings
// run out. The browser is closed exactly once when Run returns, whatever the
// reason, and a panic is returned as an error.
func (c *Campaign) Run(ctx context.Context) (sum Summary, err error) {
	sum = Summary{RunID: uuid.NewString(), Max: c.max}
	c.log = c.base.With(zap.String("run_id", sum.RunID))
	c.filler = form.NewFiller(c.browser, c.profile, c.log)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("campaign panic: %v", r)
			c.log.Error("💥 campaign crashed", zap.Any("panic", r))
		}
		if cerr := c.browser.Close(); cerr != nil {
			c.log.Warn("⚠️ error during cleanup", zap.Error(cerr))
		}
		c.setState(Done)
	}()

	c.setState(LoggingIn)
	ok, err := c.login(ctx)
	if err != nil {
		return sum, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if !ok {
		return sum, fmt.Errorf("%w: still at %s", ErrLoginFailed, c.browser.URL())
	}

	c.setState(Searching)
	listings, err := c.search.Search(ctx, c.browser)
	if err != nil {
		return sum, fmt.Errorf("search: %w", err)
	}
	if len(listings) == 0 {
		c.log.Info("📭 no internships found matching your criteria")
		return sum, nil
	}

	c.setState(Iterating)
	for i, l := range listings {
		if sum.Submitted >= c.max {
			c.log.Info("🎯 application quota reached", zap.Int("max", c.max))
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		c.log.Info("📋 processing internship", zap.Int("n", i+1), zap.Int("of", len(listings)))
		sum.Attempted++
		stage, err := c.apply(ctx, l)
		if stage == Submitted {
			sum.Submitted++
			c.log.Info("✅ application submitted", zap.String("title", l.Title), zap.Int("submitted", sum.Submitted), zap.Int("max", c.max))
		} else {
			sum.Failed++
			c.log.Warn("⚠️ application failed, continuing", zap.String("title", l.Title), zap.Error(err))
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		if err := c.returnToResults(ctx); err != nil {
			return sum, err
		}
	}

	c.log.Info("🏁 application campaign completed", zap.Int("submitted", sum.Submitted), zap.Int("attempted", sum.Attempted))
	return sum, nil
}

// login reports false without error when the form was submitted but the
// site did not redirect to a signed-in page.
func (c *Campaign) login(ctx context.Context) (bool, error) {
	c.log.Info("🔐 logging in", zap.String("email", c.creds.Email))
	if err := c.browser.Navigate(c.site.LoginURL()); err != nil {
		return false, err
	}
	if err := scraper.Pause(ctx, c.delays.AfterNavigate); err != nil {
		return false, err
	}

	if err := c.browser.Fill(c.site.Login.Email, c.creds.Email); err != nil {
		return false, err
	}
	if err := c.browser.Fill(c.site.Login.Password, c.creds.Password); err != nil {
		return false, err
	}
	if err := c.browser.Click(c.site.Login.Submit); err != nil {
		return false, err
	}
	if err := scraper.Pause(ctx, c.delays.AfterLogin); err != nil {
		return false, err
	}

	current := c.browser.URL()
	for _, marker := range c.site.Login.SuccessMarkers {
		if strings.Contains(current, marker) {
			c.log.Info("✅ logged in", zap.String("url", current))
			return true, nil
		}
	}
	c.log.Error("❌ login failed, no redirect to a signed-in page", zap.String("url", current))
	c.browser.Capture("login-failed")
	return false, nil
}

func (c *Campaign) apply(ctx context.Context, l scraper.Listing) (Stage, error) {
	log := c.log.With(zap.String("title", l.Title), zap.String("company", l.Company))
	log.Info("🚀 applying")

	if err := c.browser.OpenListing(l, c.site.Listing); err != nil {
		if l.URL == "" {
			return Failed, err
		}
		log.Debug("title click failed, following link", zap.String("url", l.URL), zap.Error(err))
		if err := c.browser.Navigate(l.URL); err != nil {
			return Failed, err
		}
	}
	if err := scraper.Pause(ctx, c.delays.AfterOpen); err != nil {
		return Failed, err
	}
	log.Debug("stage", zap.Stringer("stage", Opened))

	hit, err := c.browser.ClickFirst(c.site.ApplyButtons, false)
	if err != nil {
		log.Debug("standard apply click missed, forcing", zap.Error(err))
		hit, err = c.browser.ClickFirst(c.site.ApplyButtons, true)
	}
	if err != nil {
		c.browser.Capture("apply-button-missing")
		return Failed, fmt.Errorf("could not click any apply button: %w", err)
	}
	log.Info("👆 clicked apply", zap.String("selector", hit), zap.Stringer("stage", ApplyClicked))
	if err := scraper.Pause(ctx, c.delays.AfterClick); err != nil {
		return Failed, err
	}

	markup, err := c.browser.Content()
	if err != nil {
		return Failed, err
	}
	fields := form.ParseFields(c.analyzer.Analyze(ctx, markup, ai.PurposeIdentifyFields).Map())
	job := form.ParseJobAnalysis(c.analyzer.Analyze(ctx, markup, ai.PurposeAnalyzeJob).Map())
	log.Info("🧠 form analysis complete", zap.Int("fields", len(fields)), zap.Stringer("stage", FormAnalyzed))

	c.filler.Fill(fields, job)
	log.Debug("stage", zap.Stringer("stage", FormFilled))

	hit, err = c.browser.ClickFirst(c.site.SubmitButtons, false)
	if err != nil {
		c.browser.Capture("submit-button-missing")
		return Failed, fmt.Errorf("could not find submit button: %w", err)
	}
	log.Info("📨 clicked submit", zap.String("selector", hit))
	//the submit went through; a cancelled wait does not undo it
	_ = scraper.Pause(ctx, c.delays.AfterClick)
	return Submitted, nil
}

// returnToResults goes back to the query-free results page when the last
// application navigated away from it.
func (c *Campaign) returnToResults(ctx context.Context) error {
	if strings.Contains(c.browser.URL(), c.site.Listing.PageMarker) {
		return nil
	}
	target := c.search.SearchURL()
	if err := c.browser.Navigate(target); err != nil {
		c.log.Warn("⚠️ could not return to search results", zap.String("url", target), zap.Error(err))
		return nil
	}
	return scraper.Pause(ctx, c.delays.AfterNavigate)
}
