package formatter

import (
	"fmt"
	"os"
	"strings"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
	"feedbuilder/internal/writer"
)

// FileFormatter writes a whole feed to a file.
type FileFormatter interface {
	Format(f *feed.Feed) error
}

// NewFileFormatter returns the file formatter for platform ("google" or "facebook").
func NewFileFormatter(platform, outputPath string) (FileFormatter, error) {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case normalizer.PlatformGoogle:
		return &googleFileFormatter{path: outputPath}, nil
	case normalizer.PlatformFacebook:
		return NewFacebookFeedFormatter(outputPath), nil
	default:
		return nil, fmt.Errorf("%w: unsupported platform %q", ErrUnsupportedCombination, platform)
	}
}

// googleFileFormatter streams a Google feed into a file.
type googleFileFormatter struct {
	path string
}

func (g *googleFileFormatter) Format(f *feed.Feed) (err error) {
	file, err := os.Create(g.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResource, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", g.path, closeErr)
		}
	}()

	_, err = NewGoogleFeedFormatter(writer.NewStreamWriter(file)).Format(f)

	return err
}
