package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awalczyk/linkrot"
	lrgoquery "github.com/awalczyk/linkrot/goquery"
)

// extract runs the extractor and returns the resolved URL strings, in
// document order, of every token that resolved cleanly.
func extract(t *testing.T, html, baseURL string) []string {
	t.Helper()
	links, err := lrgoquery.NewExtractor().ExtractLinks(html, baseURL)
	require.NoError(t, err)

	var urls []string
	for _, l := range links {
		if l.Err == nil && l.URL != nil {
			urls = append(urls, l.URL.String())
		}
	}
	return urls
}

func TestExtractor_resolves_relative_links(t *testing.T) {
	t.Parallel()

	urls := extract(t,
		`<a href="page.html">p</a><a href="/about">a</a>`,
		"https://example.com/docs/index.html")

	assert.Equal(t, []string{
		"https://example.com/docs/page.html",
		"https://example.com/about",
	}, urls)
}

func TestExtractor_keeps_absolute_links(t *testing.T) {
	t.Parallel()

	urls := extract(t,
		`<a href="https://other.com/page">o</a><a href="mailto:someone@example.com">m</a>`,
		"https://example.com/")

	assert.Equal(t, []string{
		"https://other.com/page",
		"mailto:someone@example.com",
	}, urls)
}

func TestExtractor_strips_fragments(t *testing.T) {
	t.Parallel()

	urls := extract(t,
		`<a href="page.html#section">p</a><a href="#top">t</a>`,
		"https://example.com/docs/index.html")

	assert.Equal(t, []string{
		"https://example.com/docs/page.html",
		"https://example.com/docs/index.html",
	}, urls)
}

func TestExtractor_base_href(t *testing.T) {
	t.Parallel()

	t.Run("rewrites resolution for the whole page", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<head><base href="/docs/"></head><body><a href="page.html">p</a></body>`,
			"http://example.com/a/b.html")

		assert.Equal(t, []string{"http://example.com/docs/page.html"}, urls)
	})

	t.Run("absolute base replaces the page origin", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<base href="https://cdn.example.net/assets/"><img src="logo.png">`,
			"http://example.com/index.html")

		assert.Equal(t, []string{"https://cdn.example.net/assets/logo.png"}, urls)
	})

	t.Run("only the first base counts", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<base href="/first/"><base href="/second/"><a href="page.html">p</a>`,
			"http://example.com/index.html")

		assert.Equal(t, []string{"http://example.com/first/page.html"}, urls)
	})
}

func TestExtractor_srcset(t *testing.T) {
	t.Parallel()

	urls := extract(t,
		`<img srcset="small.png 1x, large.png 2x">`,
		"https://example.com/gallery/")

	assert.Equal(t, []string{
		"https://example.com/gallery/small.png",
		"https://example.com/gallery/large.png",
	}, urls)
}

func TestExtractor_style_attributes(t *testing.T) {
	t.Parallel()

	t.Run("background-image url", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<div style="background-image: url('bg.png'); color: red">x</div>`,
			"https://example.com/")

		assert.Equal(t, []string{"https://example.com/bg.png"}, urls)
	})

	t.Run("background shorthand with unquoted url", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<section style="background: #fff url(images/hero.jpg) no-repeat">x</section>`,
			"https://example.com/")

		assert.Equal(t, []string{"https://example.com/images/hero.jpg"}, urls)
	})

	t.Run("other declarations yield nothing", func(t *testing.T) {
		t.Parallel()

		urls := extract(t,
			`<div style="color: red; content: url(ignored.png)">x</div>`,
			"https://example.com/")

		assert.Empty(t, urls)
	})
}

func TestExtractor_attribute_coverage(t *testing.T) {
	t.Parallel()

	urls := extract(t, `
		<body background="bg.gif">
		<blockquote cite="quote.html">q</blockquote>
		<object data="movie.swf"></object>
		<link href="style.css">
		<video poster="frame.jpg" src="clip.mp4"></video>
		<script src="app.js"></script>
		<img src="photo.png">
		</body>`,
		"https://example.com/")

	assert.ElementsMatch(t, []string{
		"https://example.com/bg.gif",
		"https://example.com/quote.html",
		"https://example.com/movie.swf",
		"https://example.com/style.css",
		"https://example.com/frame.jpg",
		"https://example.com/clip.mp4",
		"https://example.com/app.js",
		"https://example.com/photo.png",
	}, urls)
}

func TestExtractor_windows_drive_path_is_not_a_scheme(t *testing.T) {
	t.Parallel()

	links, err := lrgoquery.NewExtractor().ExtractLinks(
		`<a href="C:\docs\file.html">f</a>`,
		"https://example.com/base/")
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.NoError(t, links[0].Err)

	// Resolved against the page, never treated as a "c:" URL.
	assert.Equal(t, "https", links[0].URL.Scheme)
	assert.Equal(t, "example.com", links[0].URL.Host)
}

func TestExtractor_empty_and_whitespace_attributes(t *testing.T) {
	t.Parallel()

	urls := extract(t,
		`<a href="">e</a><a href="   ">w</a><a href=" page.html ">p</a>`,
		"https://example.com/")

	assert.Equal(t, []string{"https://example.com/page.html"}, urls)
}

func TestExtractor_captures_token_parse_errors(t *testing.T) {
	t.Parallel()

	links, err := lrgoquery.NewExtractor().ExtractLinks(
		`<a href="http://[::1]:namedport">bad</a>`,
		"https://example.com/")
	require.NoError(t, err)
	require.Len(t, links, 1)

	assert.Equal(t, "http://[::1]:namedport", links[0].Raw)
	require.Error(t, links[0].Err)
	assert.Equal(t, linkrot.EINVALID, linkrot.ErrorCode(links[0].Err))
	assert.Nil(t, links[0].URL)
}

func TestExtractor_unparseable_page_url_fails_relative_links_only(t *testing.T) {
	t.Parallel()

	links, err := lrgoquery.NewExtractor().ExtractLinks(
		`<a href="relative.html">r</a><a href="https://example.com/abs">a</a>`,
		"http://[::1]:namedport")
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Error(t, links[0].Err)
	require.NoError(t, links[1].Err)
	assert.Equal(t, "https://example.com/abs", links[1].URL.String())
}
