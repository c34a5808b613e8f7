package main

import (
	"fmt"
	"log"
	"os"

	"go-internship-automation/internal/config"
)

func main() {
	path := "config.ini"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	if cfg.Created {
		fmt.Printf("📄 Wrote default config to %s\n", cfg.Path)
	}

	site, err := config.LoadSite(cfg.Browser.SiteProfile)
	if err != nil {
		log.Fatalf("❌ Site profile error: %v", err)
	}

	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Email: %s\n", cfg.Credentials.Email)
	fmt.Printf("   Category: %s, Location: %s, Duration: %q\n", cfg.Preferences.Category, cfg.Preferences.Location, cfg.Preferences.Duration)
	fmt.Printf("   Max applications: %d\n", cfg.Preferences.MaxApplications)
	fmt.Printf("   USER_INFO keys: %d\n", len(cfg.UserInfo.Entries))
	fmt.Printf("   AI model: %s (timeout %s)\n", cfg.AI.Model, cfg.AI.Timeout)
	fmt.Printf("   Telegram enabled: %t\n", cfg.Telegram.Enabled())
	fmt.Printf("   Site: %s (%d apply / %d submit selectors)\n", site.BaseURL, len(site.ApplyButtons), len(site.SubmitButtons))
}
