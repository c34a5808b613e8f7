package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

type LoginSelectors struct {
	Email          string   `yaml:"email"`
	Password       string   `yaml:"password"`
	Submit         string   `yaml:"submit"`
	SuccessMarkers []string `yaml:"success_markers"`
}

type ListingSelectors struct {
	Card     string `yaml:"card"`
	Title    string `yaml:"title"`
	Company  string `yaml:"company"`
	Duration string `yaml:"duration"`
	// PageMarker is the URL substring identifying a search results page.
	PageMarker string `yaml:"page_marker"`
}

// Site holds the URLs and selectors of the target job board.
type Site struct {
	BaseURL       string           `yaml:"base_url"`
	LoginPath     string           `yaml:"login_path"`
	Login         LoginSelectors   `yaml:"login"`
	Listing       ListingSelectors `yaml:"listing"`
	ApplyButtons  []string         `yaml:"apply_buttons"`
	SubmitButtons []string         `yaml:"submit_buttons"`
}

func (s *Site) LoginURL() string {
	return strings.TrimRight(s.BaseURL, "/") + s.LoginPath
}

// DefaultSite returns the embedded Internshala profile.
func DefaultSite() *Site {
	site := &Site{}
	if err := yaml.Unmarshal(defaultSiteYAML, site); err != nil {
		panic(fmt.Sprintf("embedded site profile is invalid: %v", err))
	}
	return site
}

// LoadSite returns the embedded profile, with the YAML file at path laid over
// it when path is not empty. Lists in the override replace the defaults.
func LoadSite(path string) (*Site, error) {
	site := DefaultSite()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read site profile %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, site); err != nil {
			return nil, fmt.Errorf("parse site profile %s: %w", path, err)
		}
	}

	if site.BaseURL == "" {
		return nil, fmt.Errorf("%w: site profile base_url is empty", ErrMissingSetting)
	}
	if len(site.ApplyButtons) == 0 || len(site.SubmitButtons) == 0 {
		return nil, fmt.Errorf("%w: site profile needs apply_buttons and submit_buttons", ErrMissingSetting)
	}
	return site, nil
}
