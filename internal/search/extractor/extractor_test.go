package extractor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/search-api-backend/internal/search/types"
)

func resultBlock(title, href, snippet string) string {
	s := fmt.Sprintf(`<div class="g"><a href="%s"><h3>%s</h3></a>`, href, title)
	if snippet != "" {
		s += fmt.Sprintf(`<div class="VwiC3b">%s</div>`, snippet)
	}
	return s + `</div>`
}

func TestExtract_EmptyAndGarbageMarkup(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name   string
		markup string
	}{
		{"empty string", ""},
		{"whitespace only", "   \n\t"},
		{"plain text", "not html at all"},
		{"unclosed tags", "<div><a href='x'><h3>broken"},
		{"html without results", "<html><body><p>nothing here</p></body></html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Extract(tt.markup, 10)
			assert.Empty(t, results)
		})
	}
}

func TestExtract_FullResult(t *testing.T) {
	e := New(nil)
	markup := resultBlock("Go Programming", "https://go.dev", "The Go programming language.")

	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Go Programming", results[0].Title)
	assert.Equal(t, "https://go.dev", results[0].URL)
	assert.Equal(t, "The Go programming language.", results[0].Description)
	assert.Equal(t, types.ResultKind, results[0].Kind)
}

func TestExtract_MissingSnippetUsesDefault(t *testing.T) {
	e := New(nil)
	markup := resultBlock("Some Page", "https://example.com", "")

	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Some Page", results[0].Title)
	assert.Equal(t, "https://example.com", results[0].URL)
	assert.Equal(t, DefaultDescription, results[0].Description)
}

func TestExtract_MissingHeadingFallsBackToAnchorText(t *testing.T) {
	e := New(nil)
	markup := `<div class="g"><a href="https://example.com">Anchor title</a></div>`

	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Anchor title", results[0].Title)
}

func TestExtract_NoTitleAtAll(t *testing.T) {
	e := New(nil)
	markup := `<div class="g"><a href="https://example.com"><img src="x.png"></a></div>`

	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, DefaultTitle, results[0].Title)
}

func TestExtract_RedirectUnwrap(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{
			name: "wrapped with trailing params",
			href: "/url?q=https://example.com/page&sa=U&ved=abc",
			want: "https://example.com/page",
		},
		{
			name: "wrapped without trailing params",
			href: "/url?q=https://example.com/page",
			want: "https://example.com/page",
		},
		{
			name: "plain link untouched",
			href: "https://example.com/page?x=1",
			want: "https://example.com/page?x=1",
		},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := e.Extract(resultBlock("t", tt.href, "s"), 10)
			require.Len(t, results, 1)
			assert.Equal(t, tt.want, results[0].URL)
		})
	}
}

func TestExtract_SelectorCascade(t *testing.T) {
	e := New(nil)

	// Most specific pattern absent; the next one in the cascade matches.
	markup := `<div class="tF2Cxc"><a href="https://example.com"><h3>Alt container</h3></a></div>`
	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Alt container", results[0].Title)

	markup = `<div data-hveid="42"><a href="https://example.com"><h3>Last resort</h3></a></div>`
	results = e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Last resort", results[0].Title)
}

func TestExtract_SecondSnippetPattern(t *testing.T) {
	e := New(nil)
	markup := `<div class="g"><a href="https://example.com"><h3>T</h3></a><div class="IsZvec">old snippet class</div></div>`

	results := e.Extract(markup, 10)
	require.Len(t, results, 1)
	assert.Equal(t, "old snippet class", results[0].Description)
}

func TestExtract_SkipsContainerWithoutLink(t *testing.T) {
	e := New(nil)
	var sb strings.Builder
	sb.WriteString(`<div class="g"><h3>No link here</h3></div>`)
	sb.WriteString(resultBlock("Valid", "https://example.com", "desc"))

	results := e.Extract(sb.String(), 10)
	require.Len(t, results, 1)
	assert.Equal(t, "Valid", results[0].Title)
}

func TestExtract_CapsAtMaxResults(t *testing.T) {
	e := New(nil)
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString(resultBlock(fmt.Sprintf("Result %d", i), fmt.Sprintf("https://example.com/%d", i), "desc"))
	}

	results := e.Extract(sb.String(), 3)
	require.Len(t, results, 3)
	// Page order is preserved.
	assert.Equal(t, "Result 0", results[0].Title)
	assert.Equal(t, "Result 2", results[2].Title)
}

func TestExtract_ZeroMax(t *testing.T) {
	e := New(nil)
	results := e.Extract(resultBlock("t", "https://example.com", "s"), 0)
	assert.Empty(t, results)
}
