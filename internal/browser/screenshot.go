package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ScreenShotDebugger writes full-page captures of failed steps.
type ScreenShotDebugger struct {
	outputDir string
	log       *zap.Logger
}

func NewScreenShotDebugger(dir string, log *zap.Logger) *ScreenShotDebugger {
	return &ScreenShotDebugger{
		outputDir: dir,
		log:       log,
	}
}

// CaptureAndLog saves <name>_<timestamp>.png and returns its path.
func (s *ScreenShotDebugger) CaptureAndLog(page playwright.Page, name, message string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		s.log.Warn("📸 cannot create screenshot dir", zap.String("dir", s.outputDir), zap.Error(err))
		return "", err
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.png", name, timestamp))
	s.log.Info("📸 "+message, zap.String("file", path))

	_, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		s.log.Warn("⚠️ failed to capture screenshot", zap.Error(err))
		return "", err
	}
	return path, nil
}
