// Package extractor turns uploaded documents into plain text suitable for
// summarization. Plain text and Markdown pass through unchanged; HTML is
// reduced to article text with the Readability algorithm, falling back to
// a DOM text walk when Readability finds no article.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"smart-summarizer/internal/observability/metrics"
)

// ErrUnsupportedType indicates the uploaded file extension is not handled.
var ErrUnsupportedType = errors.New("unsupported document type")

// ErrNotText indicates the uploaded bytes are not valid UTF-8 text.
var ErrNotText = errors.New("document is not valid UTF-8 text")

// Extract converts the uploaded document to plain text based on its file
// extension. Supported: .txt, .md, .markdown, .html, .htm.
func Extract(filename string, data []byte) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	text, err := extract(format, data)
	metrics.RecordExtraction(format, err == nil)
	if err != nil {
		return "", err
	}
	return text, nil
}

func extract(format string, data []byte) (string, error) {
	switch format {
	case "txt", "md", "markdown":
		if !utf8.Valid(data) {
			return "", ErrNotText
		}
		return string(data), nil
	case "html", "htm":
		return extractHTML(data)
	default:
		return "", fmt.Errorf("%w: .%s", ErrUnsupportedType, format)
	}
}

// extractHTML extracts readable text from an HTML document. Readability
// strips boilerplate (navigation, ads, footers) from article-shaped pages;
// for fragments or pages it cannot parse into an article, the whole body
// text is used instead.
func extractHTML(data []byte) (string, error) {
	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return strings.TrimSpace(article.TextContent), nil
	}
	if err != nil {
		slog.Debug("readability extraction failed, falling back to DOM text",
			slog.Any("error", err))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return "", fmt.Errorf("no readable content found")
	}
	return text, nil
}
