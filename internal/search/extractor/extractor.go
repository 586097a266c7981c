package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

// Defaults used when a container is missing the expected elements
const (
	DefaultTitle       = "No title"
	DefaultDescription = "No description available"
)

// containerSelectors is the prioritized cascade of result-container patterns.
// The result page markup is owned by a third party and changes without notice,
// so each selector is tried in order until one matches.
var containerSelectors = []string{
	"div.g",
	"div.tF2Cxc",
	"div.MjjYud",
	"div[data-hveid]",
}

// snippetSelectors are the known snippet class patterns, most recent first.
var snippetSelectors = []string{
	"div.VwiC3b",
	"div.IsZvec",
}

// Extractor parses raw search-result markup into structured results.
type Extractor struct {
	logger *zap.Logger
}

// New creates a new extractor.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract parses the markup and returns at most maxResults structured results.
// It never fails: malformed or empty markup yields an empty slice.
func (e *Extractor) Extract(markup string, maxResults int) []*types.SearchResult {
	results := make([]*types.SearchResult, 0, maxResults)
	if maxResults <= 0 || strings.TrimSpace(markup) == "" {
		return results
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		e.logger.Debug("failed to parse markup", zap.Error(err))
		return results
	}

	containers := e.findContainers(doc)
	if containers == nil {
		return results
	}

	containers.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}

		result, ok := e.extractOne(s)
		if !ok {
			// Skip containers that carry no usable link; the page mixes
			// result blocks with ads and feature widgets.
			e.logger.Debug("skipping container without link", zap.Int("index", i))
			return true
		}

		results = append(results, result)
		return true
	})

	return results
}

// findContainers walks the selector cascade and returns the first
// non-empty container set, or nil if every selector misses.
func (e *Extractor) findContainers(doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerSelectors {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			e.logger.Debug("matched container selector",
				zap.String("selector", selector),
				zap.Int("count", sel.Length()),
			)
			return sel
		}
	}

	e.logger.Debug("no container selector matched")
	return nil
}

// extractOne pulls title, url and snippet out of a single result container.
func (e *Extractor) extractOne(s *goquery.Selection) (*types.SearchResult, bool) {
	anchor := s.Find("a[href]").First()
	href, ok := anchor.Attr("href")
	if !ok || href == "" {
		return nil, false
	}

	title := strings.TrimSpace(s.Find("h3").First().Text())
	if title == "" {
		title = strings.TrimSpace(anchor.Text())
	}
	if title == "" {
		title = DefaultTitle
	}

	description := ""
	for _, selector := range snippetSelectors {
		description = strings.TrimSpace(s.Find(selector).First().Text())
		if description != "" {
			break
		}
	}
	if description == "" {
		description = DefaultDescription
	}

	return &types.SearchResult{
		Title:       title,
		URL:         unwrapRedirect(href),
		Description: description,
		Kind:        types.ResultKind,
	}, true
}

// unwrapRedirect strips the "/url?q=<target>&..." indirection the result
// page wraps around outbound links.
func unwrapRedirect(href string) string {
	const marker = "/url?q="
	idx := strings.Index(href, marker)
	if idx == -1 {
		return href
	}

	target := href[idx+len(marker):]
	if amp := strings.IndexByte(target, '&'); amp != -1 {
		target = target[:amp]
	}
	return target
}
