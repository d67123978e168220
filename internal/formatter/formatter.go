// Package formatter drives a feed through platform-specific normalizers,
// encoders and writers to produce marketplace feed files.
package formatter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"feedbuilder/internal/encoder"
	"feedbuilder/internal/feed"
	"feedbuilder/internal/logger"
	"feedbuilder/internal/normalizer"
)

// Formatter errors.
var (
	ErrUnsupportedCombination = errors.New("unsupported platform/format combination")
	ErrResource               = errors.New("cannot open output")
)

// Formatter picks the first normalizer and encoder that support a
// (platform, format) pair and delegates the encoding to them.
type Formatter struct {
	normalizers []normalizer.Normalizer
	encoders    []encoder.Encoder
	log         *logger.Logger
}

// New creates a formatter over the given strategies. Order matters: the first match wins.
func New(normalizers []normalizer.Normalizer, encoders []encoder.Encoder) *Formatter {
	return &Formatter{
		normalizers: normalizers,
		encoders:    encoders,
		log:         logger.Nop(),
	}
}

// NewDefault registers Facebook CSV and Google XML.
func NewDefault() *Formatter {
	return New(
		[]normalizer.Normalizer{normalizer.NewFacebookNormalizer(), normalizer.NewGoogleNormalizer()},
		[]encoder.Encoder{encoder.NewCSVEncoder(), encoder.NewXMLEncoder()},
	)
}

// WithLogger sets the logger and returns f.
func (f *Formatter) WithLogger(log *logger.Logger) *Formatter {
	f.log = log
	return f
}

// Format returns the lazy chunk sequence for (platform, format).
// No product is read until the sequence is consumed.
func (f *Formatter) Format(fd *feed.Feed, platform, format string) (iter.Seq2[string, error], error) {
	var norm normalizer.Normalizer

	for _, n := range f.normalizers {
		if n.IsSupported(platform) {
			norm = n
			break
		}
	}

	if norm == nil {
		return nil, fmt.Errorf("%w: no normalizer for platform %q", ErrUnsupportedCombination, platform)
	}

	var enc encoder.Encoder

	for _, e := range f.encoders {
		if e.IsSupported(platform, format) {
			enc = e
			break
		}
	}

	if enc == nil {
		return nil, fmt.Errorf("%w: no encoder for %q/%q", ErrUnsupportedCombination, platform, format)
	}

	f.log.Debug("strategy selected",
		"platform", platform,
		"format", format,
		"normalizer", fmt.Sprintf("%T", norm),
		"encoder", fmt.Sprintf("%T", enc),
	)

	return enc.Encode(fd, norm), nil
}

// FormatToFile streams (platform, format) output into path. The file is
// closed on every exit path; on error the partial file must be treated as invalid.
func (f *Formatter) FormatToFile(fd *feed.Feed, platform, format, path string) (err error) {
	seq, err := f.Format(fd, platform, format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResource, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	chunks, err := WriteTo(file, seq)
	if err != nil {
		return err
	}

	f.log.Info("feed written",
		"platform", platform,
		"format", format,
		"path", path,
		"products", fd.Count(),
		"chunks", chunks,
	)

	return nil
}

// WriteTo drains seq into w, terminating every chunk with a newline.
// It returns the number of chunks written.
func WriteTo(w io.Writer, seq iter.Seq2[string, error]) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0

	for chunk, err := range seq {
		if err != nil {
			return n, err
		}

		if _, err := bw.WriteString(chunk); err != nil {
			return n, fmt.Errorf("write chunk %d: %w", n, err)
		}

		if err := bw.WriteByte('\n'); err != nil {
			return n, fmt.Errorf("write chunk %d: %w", n, err)
		}

		n++
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush: %w", err)
	}

	return n, nil
}
