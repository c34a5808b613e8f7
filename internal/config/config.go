// Load envs from .env
// Load INI settings, create them with placeholders when missing
// Validate required sections and keys
// Provide default values for optional ones

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

var (
	ErrMissingSetting = errors.New("missing setting")
	ErrInvalidSetting = errors.New("invalid setting")
)

const (
	SectionCredentials = "CREDENTIALS"
	SectionUserInfo    = "USER_INFO"
	SectionPreferences = "PREFERENCES"
	SectionAI          = "AI"
	SectionBrowser     = "BROWSER"
	SectionTelegram    = "TELEGRAM"

	DefaultModel          = "gemini-1.5-flash"
	DefaultBrowserTimeout = 10 * time.Second
	DefaultAITimeout      = 60 * time.Second
	DefaultScreenshotDir  = "logs/screenshots"
)

type Credentials struct {
	Email    string
	Password string
}

// Entry is one USER_INFO key in file order.
type Entry struct {
	Key   string
	Value string
}

type UserInfo struct {
	FullName        string
	Phone           string
	City            string
	ExpectedStipend string
	ResumePath      string
	GitHub          string
	LinkedIn        string
	Portfolio       string
	// Entries holds every USER_INFO key, including ones the user added.
	Entries []Entry
}

type Preferences struct {
	Category        string
	MinStipend      string
	Location        string
	Duration        string
	MaxApplications int
}

type AI struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Browser struct {
	Headless      bool
	Timeout       time.Duration
	SiteProfile   string
	ScreenshotDir string
}

type Telegram struct {
	Token  string
	ChatID int64
}

// Enabled reports whether a Telegram target is configured.
func (t Telegram) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

type Config struct {
	Credentials Credentials
	UserInfo    UserInfo
	Preferences Preferences
	AI          AI
	Browser     Browser
	Telegram    Telegram

	Path string
	// Created is true when Load wrote the default file.
	Created bool
}

var requiredKeys = map[string][]string{
	SectionCredentials: {"email", "password"},
	SectionUserInfo:    {"full_name", "phone", "city", "expected_stipend", "resume_path", "github", "linkedin", "portfolio"},
	SectionPreferences: {"category", "min_stipend", "location", "duration", "max_applications"},
	SectionAI:          {"api_key"},
}

var sectionOrder = []string{SectionCredentials, SectionUserInfo, SectionPreferences, SectionAI}

// Load reads the settings file at path. A missing file is replaced by the
// default one and loading proceeds from it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	created := false
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := WriteDefault(path); err != nil {
			return nil, err
		}
		created = true
	} else if err != nil {
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg, err := fromFile(file)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	cfg.Created = created

	//override with env vars
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func fromFile(file *ini.File) (*Config, error) {
	values := make(map[string]map[string]string, len(requiredKeys))
	for _, name := range sectionOrder {
		sec, err := file.GetSection(name)
		if err != nil {
			return nil, fmt.Errorf("%w: section [%s]", ErrMissingSetting, name)
		}
		values[name] = make(map[string]string)
		for _, key := range requiredKeys[name] {
			if !sec.HasKey(key) {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingSetting, name, key)
			}
			values[name][key] = strings.TrimSpace(sec.Key(key).String())
		}
	}

	maxApps, err := strconv.Atoi(values[SectionPreferences]["max_applications"])
	if err != nil {
		return nil, fmt.Errorf("%w: %s.max_applications must be an integer", ErrInvalidSetting, SectionPreferences)
	}

	user := values[SectionUserInfo]
	cfg := &Config{
		Credentials: Credentials{
			Email:    values[SectionCredentials]["email"],
			Password: values[SectionCredentials]["password"],
		},
		UserInfo: UserInfo{
			FullName:        user["full_name"],
			Phone:           user["phone"],
			City:            user["city"],
			ExpectedStipend: user["expected_stipend"],
			ResumePath:      user["resume_path"],
			GitHub:          user["github"],
			LinkedIn:        user["linkedin"],
			Portfolio:       user["portfolio"],
		},
		Preferences: Preferences{
			Category:        values[SectionPreferences]["category"],
			MinStipend:      values[SectionPreferences]["min_stipend"],
			Location:        values[SectionPreferences]["location"],
			Duration:        values[SectionPreferences]["duration"],
			MaxApplications: maxApps,
		},
		AI: AI{
			APIKey:  values[SectionAI]["api_key"],
			Model:   DefaultModel,
			Timeout: DefaultAITimeout,
		},
		Browser: Browser{
			Timeout:       DefaultBrowserTimeout,
			ScreenshotDir: DefaultScreenshotDir,
		},
	}

	userSec := file.Section(SectionUserInfo)
	for _, key := range userSec.Keys() {
		cfg.UserInfo.Entries = append(cfg.UserInfo.Entries, Entry{Key: key.Name(), Value: strings.TrimSpace(key.String())})
	}

	aiSec := file.Section(SectionAI)
	if v := strings.TrimSpace(aiSec.Key("model").String()); v != "" {
		cfg.AI.Model = v
	}
	if aiSec.HasKey("timeout_seconds") {
		d, err := seconds(aiSec.Key("timeout_seconds"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s.timeout_seconds: %v", ErrInvalidSetting, SectionAI, err)
		}
		cfg.AI.Timeout = d
	}

	if sec, err := file.GetSection(SectionBrowser); err == nil {
		if sec.HasKey("headless") {
			headless, err := sec.Key("headless").Bool()
			if err != nil {
				return nil, fmt.Errorf("%w: %s.headless: %v", ErrInvalidSetting, SectionBrowser, err)
			}
			cfg.Browser.Headless = headless
		}
		if sec.HasKey("timeout_seconds") {
			d, err := seconds(sec.Key("timeout_seconds"))
			if err != nil {
				return nil, fmt.Errorf("%w: %s.timeout_seconds: %v", ErrInvalidSetting, SectionBrowser, err)
			}
			cfg.Browser.Timeout = d
		}
		cfg.Browser.SiteProfile = strings.TrimSpace(sec.Key("site_profile").String())
		if v := strings.TrimSpace(sec.Key("screenshot_dir").String()); v != "" {
			cfg.Browser.ScreenshotDir = v
		}
	}

	if sec, err := file.GetSection(SectionTelegram); err == nil {
		cfg.Telegram.Token = strings.TrimSpace(sec.Key("bot_token").String())
		if raw := strings.TrimSpace(sec.Key("chat_id").String()); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.chat_id: %v", ErrInvalidSetting, SectionTelegram, err)
			}
			cfg.Telegram.ChatID = id
		}
	}

	return cfg, nil
}

func seconds(key *ini.Key) (time.Duration, error) {
	n, err := key.Int()
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return time.Duration(n) * time.Second, nil
}

func applyEnv(cfg *Config) error {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.AI.APIKey = key
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: TELEGRAM_CHAT_ID: %v", ErrInvalidSetting, err)
		}
		cfg.Telegram.ChatID = id
	}
	if headless := os.Getenv("INTERNBOT_HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return fmt.Errorf("%w: INTERNBOT_HEADLESS: %v", ErrInvalidSetting, err)
		}
		cfg.Browser.Headless = v
	}
	return nil
}

func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{SectionCredentials + ".email", c.Credentials.Email},
		{SectionCredentials + ".password", c.Credentials.Password},
		{SectionPreferences + ".category", c.Preferences.Category},
		{SectionAI + ".api_key", c.AI.APIKey},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrMissingSetting, r.name)
		}
	}
	if c.Preferences.MaxApplications < 0 {
		return fmt.Errorf("%w: %s.max_applications must not be negative", ErrInvalidSetting, SectionPreferences)
	}
	return nil
}
