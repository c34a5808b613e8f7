package browser

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"go-internship-automation/internal/config"
	"go-internship-automation/internal/form"
	"go-internship-automation/internal/scraper"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

const navigationTimeout = 30 * time.Second

type Options struct {
	Headless      bool
	Timeout       time.Duration
	ScreenshotDir string
	// Install downloads the chromium build on first use.
	Install bool
}

// Session owns the playwright driver, one browser, one context and one page.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	timeout time.Duration
	shots   *ScreenShotDebugger
	log     *zap.Logger

	closeOnce sync.Once
	closeErr  error
}

// Launch starts chromium with a 1920x1080 window and notification/popup
// prompts disabled. Anything started before a failure is released.
func Launch(opts Options, log *zap.Logger) (*Session, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultBrowserTimeout
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = config.DefaultScreenshotDir
	}

	if opts.Install {
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--window-size=1920,1080",
			"--disable-notifications",
			"--disable-popup-blocking",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1920, Height: 1080},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("new page: %w", err)
	}
	page.SetDefaultTimeout(millis(opts.Timeout))

	log.Info("🌐 browser started", zap.Bool("headless", opts.Headless), zap.Duration("timeout", opts.Timeout))
	return &Session{
		pw:      pw,
		browser: browser,
		context: bctx,
		page:    page,
		timeout: opts.Timeout,
		shots:   NewScreenShotDebugger(opts.ScreenshotDir, log),
		log:     log,
	}, nil
}

func millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}

func (s *Session) Navigate(target string) error {
	_, err := s.page.Goto(target, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(millis(navigationTimeout)),
	})
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", target, err)
	}
	return nil
}

func (s *Session) URL() string {
	return s.page.URL()
}

func (s *Session) Content() (string, error) {
	html, err := s.page.Content()
	if err != nil {
		return "", fmt.Errorf("page content: %w", err)
	}
	return html, nil
}

// WaitFor returns the first match of selector once it reaches state, or
// ErrElementNotFound when timeout runs out.
func (s *Session) WaitFor(selector string, state *playwright.WaitForSelectorState, timeout time.Duration) (playwright.Locator, error) {
	loc := s.page.Locator(selector).First()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   state,
		Timeout: playwright.Float(millis(timeout)),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrElementNotFound, selector, err)
	}
	return loc, nil
}

func (s *Session) Fill(selector, value string) error {
	loc, err := s.WaitFor(selector, playwright.WaitForSelectorStateVisible, s.timeout)
	if err != nil {
		return err
	}
	if err := loc.Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", selector, err)
	}
	return nil
}

func (s *Session) Click(selector string) error {
	loc, err := s.WaitFor(selector, playwright.WaitForSelectorStateVisible, s.timeout)
	if err != nil {
		return err
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

// ClickFirst clicks the first selector that works and returns it.
// Standard mode waits for visibility, scrolls into view and clicks like a
// user. Forced mode skips actionability checks and calls el.click() in the
// page on the first attached match.
func (s *Session) ClickFirst(selectors []string, forced bool) (string, error) {
	try := s.standardClick
	if forced {
		try = s.forcedClick
	}

	hit, err := FirstMatch(SelectorStrategies(selectors), func(st Strategy) error {
		if err := try(st.Selector); err != nil {
			s.log.Debug("click miss", zap.String("selector", st.Selector), zap.Bool("forced", forced), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return hit.Selector, nil
}

func (s *Session) standardClick(selector string) error {
	loc, err := s.WaitFor(selector, playwright.WaitForSelectorStateVisible, s.timeout)
	if err != nil {
		return err
	}
	if err := loc.ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scroll to %s: %w", selector, err)
	}
	return loc.Click()
}

func (s *Session) forcedClick(selector string) error {
	loc := s.page.Locator(selector)
	n, err := loc.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	_, err = loc.First().Evaluate("el => el.click()", nil)
	return err
}

// Find locates a form control by id, then name, then as a selector. The
// lookup does not wait: the form is already rendered when it runs.
func (s *Session) Find(identifier string) (form.Control, error) {
	var found playwright.Locator
	_, err := FirstMatch(FieldStrategies(identifier), func(st Strategy) error {
		loc := s.page.Locator(st.Selector)
		n, err := loc.Count()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrElementNotFound
		}
		found = loc.First()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &locatorControl{loc: found}, nil
}

// CollectListings reads the visible cards of the current results page.
func (s *Session) CollectListings(sel config.ListingSelectors) ([]scraper.Listing, error) {
	//scroll to the bottom so lazily rendered cards are attached
	if _, err := s.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
		s.log.Debug("scroll failed", zap.Error(err))
	}

	cards, err := s.page.Locator(sel.Card).All()
	if err != nil {
		return nil, fmt.Errorf("find listing cards: %w", err)
	}

	quick := playwright.Float(100)
	var listings []scraper.Listing
	for i, card := range cards {
		if visible, _ := card.IsVisible(); !visible {
			continue
		}

		titleEl := card.Locator(sel.Title).First()
		title, err := titleEl.TextContent(playwright.LocatorTextContentOptions{Timeout: quick})
		if err != nil || strings.TrimSpace(title) == "" {
			continue
		}
		href, _ := titleEl.GetAttribute("href", playwright.LocatorGetAttributeOptions{Timeout: quick})
		company, _ := card.Locator(sel.Company).First().TextContent(playwright.LocatorTextContentOptions{Timeout: quick})
		duration := ""
		if sel.Duration != "" {
			duration, _ = card.Locator(sel.Duration).First().TextContent(playwright.LocatorTextContentOptions{Timeout: quick})
		}

		listings = append(listings, scraper.Listing{
			Index:    i,
			Title:    strings.TrimSpace(title),
			URL:      s.absolute(href),
			Company:  strings.TrimSpace(company),
			Duration: strings.TrimSpace(duration),
		})
	}
	return listings, nil
}

func (s *Session) absolute(href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(s.page.URL())
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// OpenListing clicks the title of the card at l.Index on the results page.
func (s *Session) OpenListing(l scraper.Listing, sel config.ListingSelectors) error {
	title := s.page.Locator(sel.Card).Nth(l.Index).Locator(sel.Title).First()
	if err := title.Click(playwright.LocatorClickOptions{Timeout: playwright.Float(millis(s.timeout))}); err != nil {
		return fmt.Errorf("open listing %q: %w", l.Title, err)
	}
	return nil
}

// Capture saves a screenshot of the page. Errors are logged only.
func (s *Session) Capture(name string) {
	s.shots.CaptureAndLog(s.page, name, "capturing "+name)
}

// Close releases page, context, browser and driver. Safe to call repeatedly;
// only the first call does any work.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if err := s.context.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
		s.closeErr = errors.Join(errs...)
		s.log.Info("🌐 browser closed")
	})
	return s.closeErr
}

// locatorControl adapts a playwright locator to form.Control; the locator
// methods take variadic options so they do not satisfy it directly.
type locatorControl struct {
	loc playwright.Locator
}

func (c *locatorControl) Clear() error                    { return c.loc.Clear() }
func (c *locatorControl) Fill(value string) error         { return c.loc.Fill(value) }
func (c *locatorControl) SetInputFiles(path string) error { return c.loc.SetInputFiles(path) }
func (c *locatorControl) IsChecked() (bool, error)        { return c.loc.IsChecked() }
func (c *locatorControl) Click() error                    { return c.loc.Click() }
