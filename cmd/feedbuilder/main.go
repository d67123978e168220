// Package main provides the feed builder command-line tool for producing
// marketplace product feeds from a catalog.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"feedbuilder/internal/catalog"
	"feedbuilder/internal/config"
	"feedbuilder/internal/encoder"
	"feedbuilder/internal/feed"
	"feedbuilder/internal/formatter"
	"feedbuilder/internal/logger"
	"feedbuilder/internal/normalizer"
	"feedbuilder/internal/verify"

	"github.com/google/uuid"
)

const (
	defaultConfig     = "configs/feedbuilder.yaml"
	defaultSampleSize = 10
	previewCellWidth  = 40
	stdoutPath        = "-"
)

type options struct {
	legacy  bool
	preview int
	verify  bool
}

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to YAML configuration file")
	catalogPath := flag.String("catalog", "", "Product catalog YAML file (overrides config)")
	sampleSize := flag.Int("sample", 0, "Generate N sample products instead of reading a catalog")
	platform := flag.String("platform", "", "Target platform: google or facebook (overrides config outputs)")
	format := flag.String("format", "", "Output format: xml or csv (defaults to the platform's format)")
	output := flag.String("output", "", "Output file path, or - for stdout")
	legacy := flag.Bool("legacy", false, "Use the fixed-schema file formatters instead of the encoder pipeline")
	preview := flag.Int("preview", 0, "Print a markdown preview of the first N normalized products")
	verifyFeed := flag.Bool("verify", false, "Re-read generated Google feeds and check them")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, *platform, *format, *output)
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	// Flags override the configured catalog and level
	if *catalogPath != "" {
		cfg.Catalog = config.CatalogConfig{Path: *catalogPath}
	} else if *sampleSize > 0 {
		cfg.Catalog = config.CatalogConfig{SampleSize: *sampleSize}
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v\n", err)
	}

	runID := uuid.NewString()
	logr := logger.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format).With("run_id", runID)

	// Keep stdout clean when a feed is streamed to it
	status := io.Writer(os.Stdout)
	for _, out := range cfg.EnabledOutputs() {
		if out.Path == stdoutPath {
			status = os.Stderr
		}
	}

	fmt.Fprintf(status, "⚙️  %s (run %s)\n", cfg, runID)

	fd, err := loadFeed(cfg.Catalog)
	if err != nil {
		logr.Error("catalog load failed", "error", err)
		log.Fatalf("❌ Failed to load catalog: %v\n", err)
	}

	logr.Info("catalog loaded", "products", fd.Count())

	opts := options{legacy: *legacy, preview: *preview, verify: *verifyFeed}
	f := formatter.NewDefault().WithLogger(logr)

	failures := 0

	for i, out := range cfg.EnabledOutputs() {
		fmt.Fprintf(status, "\n📦 Output %d/%d: %s/%s -> %s\n", i+1, len(cfg.EnabledOutputs()), out.Platform, out.Format, out.Path)

		outLog := logr.With("platform", out.Platform, "format", out.Format, "path", out.Path)

		if err := runOutput(f, fd, out, opts, status, outLog); err != nil {
			outLog.Error("output failed", "error", err)
			fmt.Fprintf(status, "❌ %v\n", err)

			failures++

			continue
		}

		fmt.Fprintf(status, "✅ Done\n")
	}

	fmt.Fprintf(status, "\n📈 Summary: %d products, %d outputs, %d failed\n",
		fd.Count(), len(cfg.EnabledOutputs()), failures)

	if failures > 0 {
		os.Exit(1)
	}
}

// loadConfig reads -config, builds a single-output config from flags, or
// falls back to the default config location.
func loadConfig(configFile, platform, format, output string) (*config.Config, error) {
	if configFile == "" && platform == "" {
		if _, statErr := os.Stat(defaultConfig); statErr == nil {
			configFile = defaultConfig
		}
	}

	var cfg *config.Config

	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}

		cfg = loaded
	} else {
		cfg = &config.Config{Catalog: config.CatalogConfig{SampleSize: defaultSampleSize}}
	}

	if platform != "" {
		if output == "" {
			return nil, errors.New("-output is required with -platform")
		}

		if format == "" {
			format = defaultFormat(platform)
		}

		cfg.Outputs = []config.OutputConfig{{Platform: platform, Format: format, Path: output}}
	} else if len(cfg.Outputs) == 0 {
		return nil, errors.New("please provide -config file or -platform and -output flags, or place " + defaultConfig + " in working directory")
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

func defaultFormat(platform string) string {
	if normalizer.NewGoogleNormalizer().IsSupported(platform) {
		return encoder.FormatXML
	}

	return encoder.FormatCSV
}

func loadFeed(c config.CatalogConfig) (*feed.Feed, error) {
	if c.Path != "" {
		return catalog.LoadFile(c.Path)
	}

	return catalog.Sample(c.SampleSize)
}

func runOutput(f *formatter.Formatter, fd *feed.Feed, out config.OutputConfig, opts options, status io.Writer, logr *logger.Logger) error {
	if opts.preview > 0 {
		table, err := previewTable(fd, out.Platform, opts.preview)
		if err != nil {
			return fmt.Errorf("preview: %w", err)
		}

		fmt.Fprintln(status, table)
	}

	if out.Path == stdoutPath {
		seq, err := f.Format(fd, out.Platform, out.Format)
		if err != nil {
			return err
		}

		_, err = formatter.WriteTo(os.Stdout, seq)

		return err
	}

	if dir := filepath.Dir(out.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", formatter.ErrResource, err)
		}
	}

	if opts.legacy {
		ff, err := formatter.NewFileFormatter(out.Platform, out.Path)
		if err != nil {
			return err
		}

		if err := ff.Format(fd); err != nil {
			return err
		}

		logr.Info("feed written", "products", fd.Count(), "legacy", true)
	} else if err := f.FormatToFile(fd, out.Platform, out.Format, out.Path); err != nil {
		return err
	}

	if opts.verify && out.Platform == normalizer.PlatformGoogle {
		result, err := verify.File(out.Path)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		if err := result.Expect(fd.Count()); err != nil {
			return fmt.Errorf("verify: %w", err)
		}

		logr.Info("feed verified", "items", result.Items, "type", result.FeedType, "version", result.FeedVersion)
		fmt.Fprintf(status, "🔎 Verified %d items (%s %s)\n", result.Items, result.FeedType, result.FeedVersion)
	}

	return nil
}

func previewTable(fd *feed.Feed, platform string, limit int) (string, error) {
	for _, n := range []normalizer.Normalizer{normalizer.NewFacebookNormalizer(), normalizer.NewGoogleNormalizer()} {
		if n.IsSupported(platform) {
			return formatter.Preview(fd, n, limit, previewCellWidth)
		}
	}

	return "", fmt.Errorf("%w: no normalizer for platform %q", formatter.ErrUnsupportedCombination, platform)
}

func printUsage() {
	fmt.Println("Feed Builder - Marketplace product feed generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  feedbuilder [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Build every output listed in the config")
	fmt.Println("  feedbuilder -config configs/feedbuilder.yaml")
	fmt.Println()
	fmt.Println("  # Google feed from a catalog, checked after writing")
	fmt.Println("  feedbuilder -catalog products.yaml -platform google -output out/google.xml -verify")
	fmt.Println()
	fmt.Println("  # Facebook CSV of 100 sample products to stdout")
	fmt.Println("  feedbuilder -sample 100 -platform facebook -output -")
	fmt.Println()
	fmt.Println("  # Preview the normalized Facebook records")
	fmt.Println("  feedbuilder -sample 5 -platform facebook -output out/facebook.csv -preview 5")
}
