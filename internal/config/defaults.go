package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

type defaultSection struct {
	name    string
	comment string
	keys    [][2]string
}

// Placeholder values written on first start. The user is expected to edit
// them before the next run.
var defaultSections = []defaultSection{
	{
		name: SectionCredentials,
		keys: [][2]string{
			{"email", "you@example.com"},
			{"password", "change-me"},
		},
	},
	{
		name: SectionUserInfo,
		keys: [][2]string{
			{"full_name", "Your Name"},
			{"phone", "+910000000000"},
			{"city", "Bengaluru"},
			{"expected_stipend", "10000"},
			{"resume_path", "resume.pdf"},
			{"github", "https://github.com/your-handle"},
			{"linkedin", "https://www.linkedin.com/in/your-handle/"},
			{"portfolio", "https://your-portfolio.example.com/"},
		},
	},
	{
		name:    SectionPreferences,
		comment: "location: work-from-home or a city; duration: months, \"2\" or a range \"2,3\"",
		keys: [][2]string{
			{"category", "web-development"},
			{"min_stipend", "10000"},
			{"location", "work-from-home"},
			{"duration", "2"},
			{"max_applications", "10"},
		},
	},
	{
		name: SectionAI,
		keys: [][2]string{
			{"api_key", "your-gemini-api-key"},
			{"model", DefaultModel},
			{"timeout_seconds", "60"},
		},
	},
	{
		name: SectionBrowser,
		keys: [][2]string{
			{"headless", "false"},
			{"timeout_seconds", "10"},
			{"site_profile", ""},
			{"screenshot_dir", DefaultScreenshotDir},
		},
	},
	{
		name:    SectionTelegram,
		comment: "optional: leave empty to disable the end-of-campaign message",
		keys: [][2]string{
			{"bot_token", ""},
			{"chat_id", ""},
		},
	},
}

// WriteDefault writes a settings file filled with placeholder values.
func WriteDefault(path string) error {
	file := ini.Empty()
	for _, ds := range defaultSections {
		sec, err := file.NewSection(ds.name)
		if err != nil {
			return fmt.Errorf("build default section %s: %w", ds.name, err)
		}
		sec.Comment = ds.comment
		for _, kv := range ds.keys {
			if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
				return fmt.Errorf("build default key %s.%s: %w", ds.name, kv[0], err)
			}
		}
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("write default config %s: %w", path, err)
	}
	return nil
}
