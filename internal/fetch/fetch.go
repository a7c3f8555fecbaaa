// Package fetch retrieves job postings from URLs and reduces them to plain
// text suitable for extraction.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single posting fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the fetcher to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CVChecker/1.0)"

// MinContentLength is the minimum extracted text length for a posting to be
// considered usable. Shorter pages are likely JavaScript-rendered shells or
// interstitials.
const MinContentLength = 500

// Markers of bot-protection interstitials. Matching is case-insensitive
// against the extracted text.
var antiAutomationMarkers = []string{
	"authwall",
	"captcha",
	"verify you are human",
	"unusual activity",
	"access to this page has been denied",
}

// Options configures posting retrieval.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Fetcher retrieves job postings over HTTP, with an optional headless
// browser fallback for single-page-application job boards.
type Fetcher struct {
	opts   *Options
	client *http.Client
	log    *zap.Logger
}

// New creates a fetcher. A nil opts uses DefaultOptions.
func New(opts *Options, logger *zap.Logger) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
		log:    logger,
	}
}

// JobPosting fetches the page at urlStr and returns the posting text. All
// failures carry a classified *Error so the caller can report a stable
// reason.
func (f *Fetcher) JobPosting(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: fmt.Errorf("invalid URL")}
	}

	html, err := f.fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: err}
	}

	if reason, hit := detectAntiAutomation(text); hit {
		f.log.Warn("anti-automation interstitial detected",
			zap.String("url", urlStr),
			zap.String("marker", reason))
		return "", &Error{URL: urlStr, Reason: ReasonAntiAutomation}
	}

	if len(strings.TrimSpace(text)) < MinContentLength && f.opts.UseBrowser {
		f.log.Info("content too short, falling back to browser rendering",
			zap.String("url", urlStr),
			zap.Int("length", len(text)))
		browserHTML, browserErr := f.renderWithBrowser(ctx, urlStr)
		if browserErr != nil {
			f.log.Warn("browser rendering failed, keeping HTTP content",
				zap.String("url", urlStr),
				zap.Error(browserErr))
		} else if rendered, extractErr := ExtractText(browserHTML); extractErr == nil {
			text = rendered
		}
	}

	if len(strings.TrimSpace(text)) < MinContentLength {
		return "", &Error{
			URL:    urlStr,
			Reason: ReasonNotFound,
			Cause:  fmt.Errorf("extracted %d chars, need at least %d", len(strings.TrimSpace(text)), MinContentLength),
		}
	}

	return text, nil
}

func (f *Fetcher) fetchHTML(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", &Error{URL: urlStr, Reason: ReasonTimeout, Cause: err}
		}
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return "", &Error{URL: urlStr, Reason: ReasonAntiAutomation, Cause: fmt.Errorf("HTTP status %d", resp.StatusCode)}
	case resp.StatusCode != http.StatusOK:
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: fmt.Errorf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Reason: ReasonNotFound, Cause: err}
	}
	return string(body), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func detectAntiAutomation(text string) (string, bool) {
	lowered := strings.ToLower(text)
	for _, marker := range antiAutomationMarkers {
		if strings.Contains(lowered, marker) {
			return marker, true
		}
	}
	return "", false
}

// ExtractText parses HTML and returns the posting body text. Noise elements
// are stripped and posting-specific selectors are tried before falling back
// to the body element.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// postingSelectors returns selectors tried in order against job board pages.
func postingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
