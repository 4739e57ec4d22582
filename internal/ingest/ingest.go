// Package ingest loads text from files and standard input.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ErrNotText is returned for input that is not valid UTF-8.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// Document is a loaded piece of text.
type Document struct {
	Path  string
	Title string
	Text  string
}

// LoadFile reads path, extracting text from PDF and HTML by extension.
func LoadFile(path string) (Document, error) {
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = parsePDF(path)
	case ".html", ".htm", ".xhtml":
		var raw []byte
		raw, err = os.ReadFile(path)
		if err != nil {
			return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		var htmlTitle string
		text, htmlTitle, err = parseHTML(bytes.NewReader(raw))
		if htmlTitle != "" {
			title = htmlTitle
		}
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return Document{}, fmt.Errorf("failed to open %s: %w", path, err)
		}
		text, err = ReadText(f)
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return Document{Path: path, Title: title, Text: text}, nil
}

// Load reads path, or standard input when path is "-".
func Load(path string, stdin io.Reader) (Document, error) {
	if path != StdinPath {
		return LoadFile(path)
	}
	text, err := ReadText(stdin)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return Document{Path: StdinPath, Title: "stdin", Text: text}, nil
}

// ReadText reads all of r as UTF-8, dropping a leading byte order mark.
func ReadText(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		return "", ErrNotText
	}
	return string(raw), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		// Best-effort close.
		_ = f.Close()
	}()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		if content = strings.TrimSpace(content); content != "" {
			pages = append(pages, content)
		}
	}
	if len(pages) == 0 {
		return "", errors.New("no extractable text found in pdf")
	}
	return strings.Join(pages, "\n\n"), nil
}

const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, td, th, dt, dd, figcaption"

// parseHTML returns the visible text with one paragraph per block element.
func parseHTML(r io.Reader) (text, title string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	title = collapseSpace(doc.Find("title").First().Text())
	doc.Find("head, script, style, noscript, template, nav, footer, header, aside").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are emitted by their innermost element.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if t := collapseSpace(s.Text()); t != "" {
			blocks = append(blocks, t)
		}
	})
	if len(blocks) == 0 {
		if t := collapseSpace(doc.Find("body").Text()); t != "" {
			blocks = append(blocks, t)
		}
	}
	return strings.Join(blocks, "\n\n"), title, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
