// Package render turns slices of the content document into HTML fragments.
//
// Every renderer is a pure function of its arguments. Absent or empty input
// produces a placeholder card, and every content-sourced value passes through
// Escape before it reaches markup.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
)

const (
	emptyTitle        = "No content yet"
	emptyHint         = "Add entries to the content document to fill this section."
	galleryEmptyTitle = "No images yet"
	galleryEmptyHint  = "Put images under assets/ and reference them from the gallery entries."
)

// Renderer resolves asset paths and link hrefs against a deployment base.
type Renderer struct {
	Base links.Base
}

// New returns a Renderer for the given base.
func New(base links.Base) *Renderer {
	return &Renderer{Base: base}
}

// url resolves p against the base and escapes it for an attribute.
func (r *Renderer) url(p content.Text) string {
	return Escape(r.Base.WithBase(p.Trim()))
}

// EmptyCard renders the placeholder card with a custom title and hint.
func EmptyCard(title, hint string) string {
	return fmt.Sprintf(`<article class="card card--empty"><h3 class="card__title">%s</h3><p class="card__meta">%s</p></article>`,
		Escape(title), Escape(hint))
}

// Empty renders the default placeholder card.
func Empty() string {
	return EmptyCard(emptyTitle, emptyHint)
}

// EmptyGallery renders the gallery placeholder card.
func EmptyGallery() string {
	return EmptyCard(galleryEmptyTitle, galleryEmptyHint)
}

// TagList renders items as a tag list. Blank items are skipped; no items
// renders nothing.
func TagList(items []string) string {
	var b strings.Builder
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		fmt.Fprintf(&b, `<li class="tag">%s</li>`, Escape(it))
	}
	if b.Len() == 0 {
		return ""
	}
	return `<ul class="tags">` + b.String() + `</ul>`
}

// imageTrigger renders a thumbnail button the image modal opens from.
func (r *Renderer) imageTrigger(class string, src, alt, caption content.Text) string {
	href := r.url(src)
	return fmt.Sprintf(`<button class="%s" type="button" data-img="%s" data-alt="%s" data-caption="%s"><img src="%s" alt="%s" loading="lazy"/></button>`,
		class, href, Escape(alt), Escape(caption), href, Escape(alt))
}

// fixed2 formats f with two decimals.
func fixed2(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
