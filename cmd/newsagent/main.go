package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/yuji-sgs/news-summary-agent/pkg/config"
	"github.com/yuji-sgs/news-summary-agent/pkg/content"
	"github.com/yuji-sgs/news-summary-agent/pkg/curator"
	"github.com/yuji-sgs/news-summary-agent/pkg/feed"
	"github.com/yuji-sgs/news-summary-agent/pkg/llm"
	"github.com/yuji-sgs/news-summary-agent/pkg/notify"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	Simple bool   `long:"simple" description:"summarize newest items without scoring (compatibility mode)"`
	DryRun bool   `long:"dry-run" env:"DRY_RUN" description:"print the digest without posting it"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] run failed: %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
}

// run executes a single curation batch: load config, build the
// pipeline, produce the digest, print it and deliver it
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var secrets []string
	for _, s := range []string{cfg.LLM.APIKey, cfg.Slack.Token} {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	setupLog(opts.Debug, secrets...)
	log.Printf("[INFO] starting news agent version %s", revision)

	extractor := content.NewHTTPExtractor(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)

	aggregator := feed.NewAggregator(feed.AggregatorConfig{
		Fetcher:         feed.NewParser(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		Feeds:           cfg.Feeds,
		MaxItemsPerFeed: cfg.Curation.PerFeed,
		Limit:           cfg.Curation.Limit,
		MaxAgeDays:      cfg.Curation.MaxAgeDays,
	})

	summarizer := llm.NewSummarizer(llm.SummarizerConfig{
		APIKey:        cfg.LLM.APIKey,
		Endpoint:      cfg.LLM.Endpoint,
		Model:         cfg.LLM.Model,
		FallbackModel: cfg.LLM.FallbackModel,
		Extractor:     extractor,
	})

	var notifier curator.Notifier
	if cfg.Slack.Token != "" && !opts.DryRun {
		notifier = notify.NewSlack(cfg.Slack.Token, cfg.Slack.Channel)
	}

	cur := curator.New(curator.Config{
		Aggregator: aggregator,
		Summarizer: summarizer,
		Notifier:   notifier,
		Scorer:     curator.NewScorer(cfg.Curation.PrimaryKeywords, cfg.Curation.SecondaryKeywords),
		TopK:       cfg.Curation.TopK,
		MaxAgeDays: cfg.Curation.MaxAgeDays,
		Mode:       cfg.Curation.Mode,
		UseSnippet: cfg.Curation.UseSnippet,
		Channel:    cfg.Slack.Channel,
	})

	var digestText string
	if opts.Simple {
		digestText, err = cur.RunSimple(ctx, cfg.Curation.TopK)
	} else {
		digestText, err = cur.Run(ctx)
	}
	if err != nil {
		return fmt.Errorf("curation failed: %w", err)
	}

	fmt.Println(digestText)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
