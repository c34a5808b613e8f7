package browser

import (
	"net/url"
	"testing"
	"time"

	"go-internship-automation/internal/config"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testOrigin = "https://internshala.test"

//helper start a headless session whose requests are answered from pages
func newTestSession(t *testing.T, pages map[string]string) *Session {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	s, err := Launch(Options{Headless: true, Timeout: 500 * time.Millisecond, ScreenshotDir: t.TempDir()}, zaptest.NewLogger(t))
	require.NoError(t, err, "could not launch browser")
	t.Cleanup(func() { s.Close() })

	err = s.page.Route("**/*", func(route playwright.Route) {
		u, _ := url.Parse(route.Request().URL())
		body, ok := pages[u.Path]
		status := 200
		if !ok {
			status, body = 404, "<html><body>not found</body></html>"
		}
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("text/html"),
			Body:        body,
		})
	})
	require.NoError(t, err)
	return s
}

func attr(t *testing.T, c any, name string) string {
	lc, ok := c.(*locatorControl)
	require.True(t, ok)
	v, err := lc.loc.GetAttribute(name)
	require.NoError(t, err)
	return v
}

func TestSession_FindOrder(t *testing.T) {
	s := newTestSession(t, map[string]string{
		"/form": `<html><body><form>
			<input id="email" data-hit="id">
			<input name="email" data-hit="name">
			<input name="applicant_name" data-hit="name-only">
			<textarea class="cover" data-hit="selector"></textarea>
		</form></body></html>`,
	})
	require.NoError(t, s.Navigate(testOrigin+"/form"))

	byID, err := s.Find("email")
	require.NoError(t, err)
	assert.Equal(t, "id", attr(t, byID, "data-hit"), "id beats name")

	byName, err := s.Find("applicant_name")
	require.NoError(t, err)
	assert.Equal(t, "name-only", attr(t, byName, "data-hit"))
	require.NoError(t, byName.Fill("Asha Rao"))
	value, err := s.page.Locator(`[name="applicant_name"]`).InputValue()
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", value)

	bySelector, err := s.Find("textarea.cover")
	require.NoError(t, err)
	assert.Equal(t, "selector", attr(t, bySelector, "data-hit"))

	_, err = s.Find("Full Name")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSession_ClickFirst(t *testing.T) {
	s := newTestSession(t, map[string]string{
		"/detail": `<html><body>
			<button id="visible_apply" onclick="document.body.dataset.clicked='standard'">Apply now</button>
			<button id="hidden_apply" style="display:none" onclick="document.body.dataset.clicked='forced'">Apply now</button>
		</body></html>`,
	})
	clicked := func() any {
		v, err := s.page.Evaluate("document.body.dataset.clicked || ''")
		require.NoError(t, err)
		return v
	}

	t.Run("standard skips missing selectors", func(t *testing.T) {
		require.NoError(t, s.Navigate(testOrigin+"/detail"))
		hit, err := s.ClickFirst([]string{"#missing", "#visible_apply"}, false)
		require.NoError(t, err)
		assert.Equal(t, "#visible_apply", hit)
		assert.Equal(t, "standard", clicked())
	})

	t.Run("hidden button needs forced click", func(t *testing.T) {
		require.NoError(t, s.Navigate(testOrigin+"/detail"))
		selectors := []string{"#missing", "#hidden_apply"}

		_, err := s.ClickFirst(selectors, false)
		assert.ErrorIs(t, err, ErrNoMatch)
		assert.Equal(t, "", clicked())

		hit, err := s.ClickFirst(selectors, true)
		require.NoError(t, err)
		assert.Equal(t, "#hidden_apply", hit)
		assert.Equal(t, "forced", clicked())
	})
}

func TestSession_CollectAndOpenListings(t *testing.T) {
	card := func(style, slug, title, company, duration string) string {
		return `<div class="individual_internship" style="` + style + `">
			<a class="job-title-href" href="/internship/detail/` + slug + `">` + title + `</a>
			<p class="company-name"> ` + company + ` </p>
			<div class="row-1-item"><i class="ic-16-calendar"></i><span>` + duration + `</span></div>
		</div>`
	}
	s := newTestSession(t, map[string]string{
		"/internships/web-development-internship": `<html><body>` +
			card("", "a", "Frontend Intern", "Acme", "2 Months") +
			card("display:none", "b", "Promoted Intern", "Ads Co", "1 Month") +
			card("", "c", "Backend Intern", "Globex", "6 Months") +
			`</body></html>`,
		"/internship/detail/c": `<html><body><h1>Backend Intern</h1></body></html>`,
	})
	sel := config.DefaultSite().Listing
	require.NoError(t, s.Navigate(testOrigin+"/internships/web-development-internship"))

	listings, err := s.CollectListings(sel)
	require.NoError(t, err)
	require.Len(t, listings, 2, "hidden card is skipped")

	assert.Equal(t, 0, listings[0].Index)
	assert.Equal(t, "Frontend Intern", listings[0].Title)
	assert.Equal(t, "Acme", listings[0].Company)
	assert.Equal(t, "2 Months", listings[0].Duration)
	assert.Equal(t, testOrigin+"/internship/detail/a", listings[0].URL)

	assert.Equal(t, 2, listings[1].Index, "index counts the hidden card")
	assert.Equal(t, "Backend Intern", listings[1].Title)

	require.NoError(t, s.OpenListing(listings[1], sel))
	require.NoError(t, s.page.WaitForURL("**/internship/detail/c"))
	assert.Equal(t, testOrigin+"/internship/detail/c", s.URL())
}

func TestSession_CloseOnce(t *testing.T) {
	s := newTestSession(t, map[string]string{})

	first := s.Close()
	second := s.Close()

	assert.NoError(t, first)
	assert.Equal(t, first, second)
}
