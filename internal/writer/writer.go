// Package writer builds Google Merchant RSS documents element by element,
// either in memory or streamed into an io.Writer.
package writer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// GoogleNamespace is the Google Merchant namespace bound to the "g" prefix.
const GoogleNamespace = "http://base.google.com/ns/1.0"

// Writer errors.
var (
	ErrNoOpenElement = errors.New("no open element to end")
	ErrClosed        = errors.New("writer already saved")
	ErrInvalidName   = errors.New("invalid XML element name")
)

// Writer manages the rss/channel container and the elements written inside it.
//
// Errors are sticky: after the first failure every call is a no-op and Save
// returns that error.
type Writer interface {
	StartElement(name string)
	WriteElement(name, text string)
	EndElement()
	// Save closes channel and rss. In-memory writers return the document;
	// streaming writers flush their sink and return "".
	Save() (string, error)
}

// xmlWriter is the shared encoder state behind both writers.
type xmlWriter struct {
	sink io.Writer
	enc  *xml.Encoder
	open []xml.Name
	// depth of the rss/channel containers still open
	base   int
	closed bool
	err    error
}

func newXMLWriter(sink io.Writer) *xmlWriter {
	w := &xmlWriter{sink: sink}

	if _, err := io.WriteString(sink, xml.Header); err != nil {
		w.err = fmt.Errorf("write xml declaration: %w", err)
		return w
	}

	w.enc = xml.NewEncoder(sink)
	w.enc.Indent("", "  ")

	w.start(xml.StartElement{
		Name: xml.Name{Local: "rss"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: "2.0"},
			{Name: xml.Name{Local: "xmlns:g"}, Value: GoogleNamespace},
		},
	})
	w.start(xml.StartElement{Name: xml.Name{Local: "channel"}})
	w.base = len(w.open)

	return w
}

func (w *xmlWriter) usable() bool {
	if w.err != nil {
		return false
	}

	if w.closed {
		w.err = ErrClosed
		return false
	}

	return true
}

func (w *xmlWriter) start(el xml.StartElement) {
	if !ValidName(el.Name.Local) {
		w.err = fmt.Errorf("%w: %q", ErrInvalidName, el.Name.Local)
		return
	}

	if err := w.enc.EncodeToken(el); err != nil {
		w.err = fmt.Errorf("start <%s>: %w", el.Name.Local, err)
		return
	}

	w.open = append(w.open, el.Name)
}

func (w *xmlWriter) end() {
	name := w.open[len(w.open)-1]

	if err := w.enc.EncodeToken(xml.EndElement{Name: name}); err != nil {
		w.err = fmt.Errorf("end <%s>: %w", name.Local, err)
		return
	}

	w.open = w.open[:len(w.open)-1]
}

// ValidName reports whether name is an XML name with at most one "prefix:" part.
func ValidName(name string) bool {
	prefix, local, found := strings.Cut(name, ":")
	if !found {
		return validNCName(prefix)
	}

	return validNCName(prefix) && validNCName(local)
}

// validNCName checks a colon-free XML name.
func validNCName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)):
		default:
			return false
		}
	}

	return true
}

// StartElement opens a child element.
func (w *xmlWriter) StartElement(name string) {
	if !w.usable() {
		return
	}

	w.start(xml.StartElement{Name: xml.Name{Local: name}})
}

// WriteElement writes <name>text</name> with text escaped.
func (w *xmlWriter) WriteElement(name, text string) {
	if !w.usable() {
		return
	}

	w.start(xml.StartElement{Name: xml.Name{Local: name}})

	if w.err != nil {
		return
	}

	if text != "" {
		if err := w.enc.EncodeToken(xml.CharData(text)); err != nil {
			w.err = fmt.Errorf("text of <%s>: %w", name, err)
			return
		}
	}

	w.end()
}

// EndElement closes the most recently opened child element.
func (w *xmlWriter) EndElement() {
	if !w.usable() {
		return
	}

	if len(w.open) <= w.base {
		w.err = ErrNoOpenElement
		return
	}

	w.end()
}

// Flush pushes buffered output to the sink.
func (w *xmlWriter) Flush() error {
	if w.err != nil {
		return w.err
	}

	if err := w.enc.Flush(); err != nil {
		w.err = fmt.Errorf("flush: %w", err)
	}

	return w.err
}

// finish closes every open element, including channel and rss, and flushes.
func (w *xmlWriter) finish() error {
	if !w.usable() {
		return w.err
	}

	for len(w.open) > 0 && w.err == nil {
		w.end()
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w.sink, "\n"); err != nil {
		w.err = fmt.Errorf("write trailing newline: %w", err)
		return w.err
	}

	w.closed = true

	return nil
}

// MemoryWriter accumulates the whole document and returns it from Save.
type MemoryWriter struct {
	*xmlWriter
	buf *bytes.Buffer
}

// NewMemoryWriter opens an in-memory document.
func NewMemoryWriter() *MemoryWriter {
	buf := &bytes.Buffer{}

	return &MemoryWriter{xmlWriter: newXMLWriter(buf), buf: buf}
}

// Save closes the document and returns it.
func (w *MemoryWriter) Save() (string, error) {
	if err := w.finish(); err != nil {
		return "", err
	}

	return w.buf.String(), nil
}

// StreamWriter writes the document incrementally into a sink.
type StreamWriter struct {
	*xmlWriter
}

// NewStreamWriter opens a document streamed into sink. The caller owns sink
// and closes it after Save.
func NewStreamWriter(sink io.Writer) *StreamWriter {
	return &StreamWriter{xmlWriter: newXMLWriter(sink)}
}

// Save closes the document, flushes it into the sink and returns "".
func (w *StreamWriter) Save() (string, error) {
	return "", w.finish()
}
