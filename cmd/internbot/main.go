package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-internship-automation/internal/ai"
	"go-internship-automation/internal/browser"
	"go-internship-automation/internal/campaign"
	"go-internship-automation/internal/config"
	"go-internship-automation/internal/form"
	"go-internship-automation/internal/logger"
	"go-internship-automation/internal/reporter"
	"go-internship-automation/internal/scraper/internshala"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.ini", "path to the INI settings file")
	logFile := flag.String("log-file", logger.DefaultFile, "log file, appended to")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	install := flag.Bool("install-browsers", false, "download chromium before starting")
	flag.Parse()

	log, err := logger.New(logger.Options{Level: *logLevel, FilePath: *logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ cannot set up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *configPath, *install); err != nil {
		log.Error("💀 critical error", zap.Error(err))
	}
}

func run(log *zap.Logger, configPath string, install bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Created {
		log.Warn("📄 created default config, fill in your details", zap.String("path", cfg.Path))
	}
	log.Info("🔧 config loaded", zap.String("category", cfg.Preferences.Category), zap.Int("max_applications", cfg.Preferences.MaxApplications))

	site, err := config.LoadSite(cfg.Browser.SiteProfile)
	if err != nil {
		return err
	}

	gemini, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		return err
	}
	defer gemini.Close()
	log.Info("🤖 gemini configured", zap.String("model", cfg.AI.Model))

	var rep *reporter.TelegramReporter
	if cfg.Telegram.Enabled() {
		rep, err = reporter.NewTelegramReporter(cfg.Telegram, log)
		if err != nil {
			log.Warn("⚠️ telegram disabled", zap.Error(err))
			rep = nil
		}
	}

	sess, err := browser.Launch(browser.Options{
		Headless:      cfg.Browser.Headless,
		Timeout:       cfg.Browser.Timeout,
		ScreenshotDir: cfg.Browser.ScreenshotDir,
		Install:       install,
	}, log)
	if err != nil {
		return err
	}

	search := internshala.NewInternshalaScraper(site, cfg.Preferences, internshala.DefaultSettle, log)
	c := campaign.New(sess, search, ai.NewAnalyzer(gemini, cfg.AI.Timeout, log), form.ProfileFromConfig(cfg), campaign.Options{
		Site:            site,
		Credentials:     cfg.Credentials,
		MaxApplications: cfg.Preferences.MaxApplications,
		Delays:          campaign.DefaultDelays(),
	}, log)

	log.Info("🚀 starting application campaign")
	sum, runErr := c.Run(ctx)

	if rep != nil {
		if runErr != nil {
			rep.SendError(runErr)
		}
		rep.SendSummary(sum)
	}
	return runErr
}
