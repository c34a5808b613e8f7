package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go-internship-automation/internal/browser"
	"go-internship-automation/internal/config"
	"go-internship-automation/internal/scraper/internshala"

	"go.uber.org/zap"
)

// Opens the search results for the configured preferences without logging
// in and prints what the listing collector sees.
func main() {
	path := "config.ini"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("🌐 Testing browser session...")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	site, err := config.LoadSite(cfg.Browser.SiteProfile)
	if err != nil {
		log.Fatalf("Failed to load site profile: %v", err)
	}

	zl, _ := zap.NewDevelopment()
	defer zl.Sync()

	sess, err := browser.Launch(browser.Options{
		Headless:      cfg.Browser.Headless,
		Timeout:       cfg.Browser.Timeout,
		ScreenshotDir: cfg.Browser.ScreenshotDir,
	}, zl)
	if err != nil {
		log.Fatalf("Failed to launch browser: %v", err)
	}
	defer sess.Close()
	fmt.Println("✅ Browser started")

	search := internshala.NewInternshalaScraper(site, cfg.Preferences, internshala.DefaultSettle, zl)
	fmt.Printf("🔍 Navigating to %s\n", search.SearchURL())
	listings, err := search.Search(context.Background(), sess)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}

	fmt.Printf("✅ Found %d listings\n", len(listings))
	for _, l := range listings {
		fmt.Printf("   [%d] %s @ %s (%s)\n       %s\n", l.Index, l.Title, l.Company, l.Duration, l.URL)
	}

	//take screenshot
	sess.Capture("search-smoke")
}
