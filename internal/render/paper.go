package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"github.com/ziadkadry99/folio/internal/content"
)

// Paper renders the featured research entry as a long-form paper: header,
// abstract, keywords, figures, then either structured sections or a "Key
// Points" tag list, then links. Sections always take precedence over
// highlights.
func (r *Renderer) Paper(f *content.Featured) string {
	if f == nil {
		return Empty()
	}
	var b strings.Builder
	b.WriteString(`<div class="paper" data-anim="featured">`)
	b.WriteString(`<div class="paperProgress" aria-hidden="true"><span class="paperProgress__bar"></span></div>`)
	b.WriteString(`<div class="paperHeader">`)
	fmt.Fprintf(&b, `<h3 class="featuredCard__title">%s</h3>`, Escape(f.Title))
	fmt.Fprintf(&b, `<p class="featuredCard__meta">%s</p>`, Escape(f.Meta))
	b.WriteString(`<div class="paperHint" aria-hidden="true">Scroll to read</div>`)
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<section class="paperBlock paperBlock--abstract paperSection" data-paper-step="abstract"><h4 class="paperH">Abstract</h4><p class="paperP">%s</p></section>`,
		Escape(f.Summary()))

	if kw := TagList(content.Texts(f.Keywords)); kw != "" {
		b.WriteString(`<section class="paperBlock paperBlock--keywords paperSection" data-paper-step="keywords"><h4 class="paperH">Keywords</h4>`)
		b.WriteString(kw)
		b.WriteString(`</section>`)
	}

	if len(f.Figures) > 0 {
		b.WriteString(`<section class="paperBlock paperBlock--figures paperSection" data-paper-step="figures"><h4 class="paperH">Figures</h4>`)
		b.WriteString(r.figures(f.Figures))
		b.WriteString(`</section>`)
	}

	switch {
	case len(f.Sections) > 0:
		b.WriteString(sections(f.Sections, "paper-"))
	case len(content.Texts(f.Highlights)) > 0:
		b.WriteString(`<section class="paperBlock paperSection" data-paper-step="highlights"><h4 class="paperH">Key Points</h4>`)
		b.WriteString(TagList(content.Texts(f.Highlights)))
		b.WriteString(`</section>`)
	}

	b.WriteString(r.LinkRow(f.Links))
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) figures(figs content.List[content.Figure]) string {
	var b strings.Builder
	b.WriteString(`<div class="paperFigures">`)
	for _, fig := range figs {
		alt := content.Text(fig.Title.Or("Figure"))
		b.WriteString(`<figure class="paperFigure" data-anim="figure">`)
		if fig.Image.Trim() != "" {
			b.WriteString(r.imageTrigger("imgBtn", fig.Image, alt, fig.Caption))
		}
		fmt.Fprintf(&b, `<figcaption class="paperFigcap"><div class="paperFigTitle">%s</div>`, Escape(fig.Title))
		if fig.Caption.Trim() != "" {
			fmt.Fprintf(&b, `<div class="paperFigDesc">%s</div>`, Escape(fig.Caption))
		}
		b.WriteString(`</figcaption></figure>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func sections(secs content.List[content.Section], idPrefix string) string {
	var b strings.Builder
	ids := make(map[string]int)
	b.WriteString(`<div class="paperBlocks">`)
	for i, s := range secs {
		fmt.Fprintf(&b, `<section class="paperBlock paperSection" id="%s" data-paper-step="%d">`,
			Escape(sectionID(idPrefix, s.Heading.Trim(), i, ids)), i)
		fmt.Fprintf(&b, `<h4 class="paperH">%s</h4>`, Escape(s.Heading))
		if s.Text.Trim() != "" {
			fmt.Fprintf(&b, `<p class="paperP">%s</p>`, Escape(s.Text))
		}
		if bullets := content.Texts(s.Bullets); len(bullets) > 0 {
			b.WriteString(`<ul class="paperList">`)
			for _, item := range bullets {
				fmt.Fprintf(&b, `<li>%s</li>`, Escape(item))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// sectionID returns a unique anchor id for a paper section. Headings that
// slugify to nothing fall back to their position.
func sectionID(prefix, heading string, idx int, seen map[string]int) string {
	id := slug.Make(heading)
	if id == "" {
		id = "section-" + strconv.Itoa(idx+1)
	}
	id = prefix + id
	seen[id]++
	if n := seen[id]; n > 1 {
		id += "-" + strconv.Itoa(n)
	}
	return id
}
