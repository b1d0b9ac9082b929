package render

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
)

// LinkRow renders external link buttons. Hrefs are resolved against the base.
func (r *Renderer) LinkRow(ls content.List[content.Link]) string {
	var b strings.Builder
	for _, l := range ls {
		if l.Href.Trim() == "" && l.Label.Trim() == "" {
			continue
		}
		fmt.Fprintf(&b, `<a class="btn" href="%s" target="_blank" rel="noreferrer">%s</a>`,
			r.url(l.Href), Escape(l.Label.Or(l.Href.Trim())))
	}
	if b.Len() == 0 {
		return ""
	}
	return `<div class="actions">` + b.String() + `</div>`
}

// ContactRow renders contacts. Static labels become plain label/value pairs,
// the rest become buttons with an inferred protocol. A contact whose href
// cannot be inferred is shown as text.
func (r *Renderer) ContactRow(contacts content.List[content.Contact]) string {
	var b strings.Builder
	for _, c := range contacts {
		label := c.Label.Trim()
		if label == "" && c.Display() == "" {
			continue
		}
		if r.Base.IsStaticContact(label) {
			fmt.Fprintf(&b, `<span class="contact"><span class="contact__label">%s</span><span class="contact__value">%s</span></span>`,
				Escape(label), Escape(c.Display()))
			continue
		}
		text := label
		if text == "" {
			text = c.Display()
		}
		href := links.NormalizeContactHref(c.Target())
		if href == "" {
			fmt.Fprintf(&b, `<span class="btn btn--plain">%s</span>`, Escape(text))
			continue
		}
		fmt.Fprintf(&b, `<a class="btn" href="%s" target="_blank" rel="noreferrer">%s</a>`, Escape(href), Escape(text))
	}
	return b.String()
}

// CardList renders one card per entry: title, meta, description, highlights,
// outputs, links.
func (r *Renderer) CardList(cards content.List[content.Card]) string {
	if len(cards) == 0 {
		return Empty()
	}
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(`<article class="card">`)
		r.cardBody(&b, c)
		b.WriteString(`</article>`)
	}
	return b.String()
}

func (r *Renderer) cardBody(b *strings.Builder, c content.Card) {
	fmt.Fprintf(b, `<h3 class="card__title">%s</h3>`, Escape(c.Title))
	fmt.Fprintf(b, `<p class="card__meta">%s</p>`, Escape(c.Meta))
	if c.Desc.Trim() != "" {
		fmt.Fprintf(b, `<p class="card__desc">%s</p>`, Escape(c.Desc))
	}
	b.WriteString(TagList(content.Texts(c.Highlights)))
	b.WriteString(TagList(content.Texts(c.Outputs)))
	b.WriteString(r.LinkRow(c.Links))
}

// Timeline renders entries in input order inside a vertical timeline.
func (r *Renderer) Timeline(entries content.List[content.TimelineEntry]) string {
	if len(entries) == 0 {
		return Empty()
	}
	var b strings.Builder
	b.WriteString(`<div class="timeline">`)
	for _, e := range entries {
		b.WriteString(`<div class="timelineItem">`)
		b.WriteString(`<span class="timelineDot" aria-hidden="true"></span>`)
		if e.Year.Trim() != "" {
			fmt.Fprintf(&b, `<span class="timelineYear">%s</span>`, Escape(e.Year))
		}
		b.WriteString(`<article class="timelineCard">`)
		fmt.Fprintf(&b, `<h3 class="card__title">%s</h3>`, Escape(e.Title))
		fmt.Fprintf(&b, `<p class="card__meta">%s</p>`, Escape(e.Meta))
		if e.Desc.Trim() != "" {
			fmt.Fprintf(&b, `<p class="card__desc">%s</p>`, Escape(e.Desc))
		}
		if e.Metric.Trim() != "" {
			fmt.Fprintf(&b, `<p class="timelineMetric">%s</p>`, Escape(e.Metric))
		}
		b.WriteString(TagList(content.Texts(e.Outputs)))
		b.WriteString(r.LinkRow(e.Links))
		b.WriteString(`</article></div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Gallery renders visual works. Items with an image get a thumbnail that
// opens the image modal.
func (r *Renderer) Gallery(items content.List[content.GalleryItem]) string {
	if len(items) == 0 {
		return EmptyGallery()
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(`<article class="card">`)
		fmt.Fprintf(&b, `<h3 class="card__title">%s</h3>`, Escape(it.Title))
		fmt.Fprintf(&b, `<p class="card__meta">%s</p>`, Escape(it.Meta))
		if it.Image.Trim() != "" {
			alt := content.Text(it.Title.Or("Artwork"))
			b.WriteString(`<div class="card__media">`)
			b.WriteString(r.imageTrigger("imgBtn", it.Image, alt, it.Meta))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</article>`)
	}
	return b.String()
}

// AboutCards renders the introduction cards.
func AboutCards(cards content.List[content.AboutCard]) string {
	if len(cards) == 0 {
		return Empty()
	}
	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, `<article class="card"><h3 class="card__title">%s</h3><p class="card__meta">%s</p></article>`,
			Escape(c.Title), Escape(c.Text))
	}
	return b.String()
}
