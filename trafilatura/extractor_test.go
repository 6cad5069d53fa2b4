package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/shoplens"
	"github.com/fwojciec/shoplens/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements shoplens.ProseExtractor at compile time.
var _ shoplens.ProseExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Privacy Policy - Acme Goods</title>
<meta property="og:title" content="Privacy Policy">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Privacy Policy</h1>
<p>We respect your privacy and only collect what is needed to fulfill orders.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Returns</title></head>
<body>
<nav><a href="/">Home</a><a href="/collections/all">Shop</a></nav>
<article>
<h1>Return Policy</h1>
<p>Items can be returned within thirty days of delivery for a full refund.</p>
<p>Returned items must be unworn and in their original packaging.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2026</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "thirty days of delivery")
		assert.Contains(t, result.ContentHTML, "original packaging")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>About</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/collections/all">Shop</a></li>
<li><a href="/pages/contact">Contact</a></li>
</ul>
</nav>
<main>
<h1>Our Story</h1>
<p>This paragraph contains the actual story content we want to keep.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual story content")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Shipping</title></head>
<body>
<article>
<h1>Shipping Policy</h1>
<p>Orders placed before noon ship the same business day from our warehouse.</p>
</article>
<footer>
<p>Copyright 2026 Acme Goods</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "same business day")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Acme Goods")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
