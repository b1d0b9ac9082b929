package render

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

// CaseKind distinguishes the drawer body layouts.
type CaseKind string

const (
	CasePaper    CaseKind = "paper"
	CaseTimeline CaseKind = "timeline"
)

// DefaultDrawerTitle is used when a case has no title.
const DefaultDrawerTitle = "Details"

// Case is one research case as parked in the data-cases payload. Values are
// raw text; escaping happens when a case is rendered.
type Case struct {
	Kind       CaseKind      `json:"kind"`
	Index      int           `json:"index"`
	Title      string        `json:"title"`
	Meta       string        `json:"meta,omitempty"`
	Year       string        `json:"year,omitempty"`
	Metric     string        `json:"metric,omitempty"`
	Summary    string        `json:"summary,omitempty"`
	Keywords   []string      `json:"keywords,omitempty"`
	Figures    []CaseFigure  `json:"figures,omitempty"`
	Sections   []CaseSection `json:"sections,omitempty"`
	Highlights []string      `json:"highlights,omitempty"`
	Outputs    []string      `json:"outputs,omitempty"`
	Links      []CaseLink    `json:"links,omitempty"`
}

// CaseFigure is a figure reference inside a case.
type CaseFigure struct {
	Image   string `json:"image"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CaseSection is a structured section inside a paper case.
type CaseSection struct {
	Heading string   `json:"heading"`
	Text    string   `json:"text,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// CaseLink is a link inside a case.
type CaseLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// PaperCase builds the case for the featured entry.
func PaperCase(f *content.Featured, idx int) Case {
	c := Case{
		Kind:       CasePaper,
		Index:      idx,
		Title:      f.Title.Trim(),
		Meta:       f.Meta.Trim(),
		Summary:    strings.TrimSpace(f.Summary()),
		Keywords:   content.Texts(f.Keywords),
		Highlights: content.Texts(f.Highlights),
		Links:      caseLinks(f.Links),
	}
	for _, fig := range f.Figures {
		c.Figures = append(c.Figures, CaseFigure{Image: fig.Image.Trim(), Title: fig.Title.Trim(), Caption: fig.Caption.Trim()})
	}
	for _, s := range f.Sections {
		c.Sections = append(c.Sections, CaseSection{Heading: s.Heading.Trim(), Text: s.Text.Trim(), Bullets: content.Texts(s.Bullets)})
	}
	return c
}

// TimelineCase builds the case for a timeline entry.
func TimelineCase(e content.TimelineEntry, idx int) Case {
	return Case{
		Kind:       CaseTimeline,
		Index:      idx,
		Title:      e.Title.Trim(),
		Meta:       e.Meta.Trim(),
		Year:       e.Year.Trim(),
		Metric:     e.Metric.Trim(),
		Summary:    e.Desc.Trim(),
		Highlights: content.Texts(e.Highlights),
		Outputs:    content.Texts(e.Outputs),
		Links:      caseLinks(e.Links),
	}
}

func caseLinks(ls content.List[content.Link]) []CaseLink {
	var out []CaseLink
	for _, l := range ls {
		if l.Href.Trim() == "" {
			continue
		}
		out = append(out, CaseLink{Href: l.Href.Trim(), Label: l.Label.Or(l.Href.Trim())})
	}
	return out
}

func (c Case) kindLabel() string {
	if c.Kind == CasePaper {
		return "Paper"
	}
	return "Project"
}

// DrawerTitle is the drawer heading for the case.
func (c Case) DrawerTitle() string {
	if strings.TrimSpace(c.Title) == "" {
		return DefaultDrawerTitle
	}
	return c.Title
}

// CasePairs renders a summary card and a detail trigger card per case. The
// detail card carries data-drawer-kind and data-case-index.
func CasePairs(cases []Case) string {
	if len(cases) == 0 {
		return Empty()
	}
	var b strings.Builder
	b.WriteString(`<div class="cases">`)
	for _, c := range cases {
		b.WriteString(`<div class="casePair">`)
		b.WriteString(`<article class="card caseSummary">`)
		fmt.Fprintf(&b, `<span class="caseKind caseKind--%s">%s</span>`, Escape(string(c.Kind)), Escape(c.kindLabel()))
		if c.Year != "" {
			fmt.Fprintf(&b, `<span class="caseYear">%s</span>`, Escape(c.Year))
		}
		fmt.Fprintf(&b, `<h3 class="card__title">%s</h3><p class="card__meta">%s</p>`, Escape(c.Title), Escape(c.Meta))
		if c.Metric != "" {
			fmt.Fprintf(&b, `<p class="timelineMetric">%s</p>`, Escape(c.Metric))
		}
		b.WriteString(`</article>`)

		fmt.Fprintf(&b, `<article class="card caseDetail" role="button" tabindex="0" data-drawer-kind="%s" data-case-index="%d">`,
			Escape(string(c.Kind)), c.Index)
		fmt.Fprintf(&b, `<h3 class="card__title">%s</h3>`, Escape(c.Title))
		if c.Summary != "" {
			fmt.Fprintf(&b, `<p class="card__desc">%s</p>`, Escape(c.Summary))
		}
		b.WriteString(`<span class="caseDetail__more">Read more</span></article>`)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// CaseDetail renders the drawer body for a case. Paper cases show abstract,
// keywords, figures and sections; timeline cases show the description,
// outputs and links.
func (r *Renderer) CaseDetail(c Case) string {
	var b strings.Builder
	if c.Meta != "" {
		fmt.Fprintf(&b, `<p class="drawerMeta">%s</p>`, Escape(c.Meta))
	}
	switch c.Kind {
	case CasePaper:
		fmt.Fprintf(&b, `<section class="paperBlock"><h4 class="paperH">Abstract</h4><p class="paperP">%s</p></section>`, Escape(c.Summary))
		if kw := TagList(c.Keywords); kw != "" {
			b.WriteString(`<section class="paperBlock"><h4 class="paperH">Keywords</h4>` + kw + `</section>`)
		}
		if len(c.Figures) > 0 {
			figs := make(content.List[content.Figure], 0, len(c.Figures))
			for _, f := range c.Figures {
				figs = append(figs, content.Figure{Image: content.Text(f.Image), Title: content.Text(f.Title), Caption: content.Text(f.Caption)})
			}
			b.WriteString(`<section class="paperBlock"><h4 class="paperH">Figures</h4>` + r.figures(figs) + `</section>`)
		}
		if len(c.Sections) > 0 {
			secs := make(content.List[content.Section], 0, len(c.Sections))
			for _, s := range c.Sections {
				bullets := make(content.List[content.Text], 0, len(s.Bullets))
				for _, item := range s.Bullets {
					bullets = append(bullets, content.Text(item))
				}
				secs = append(secs, content.Section{Heading: content.Text(s.Heading), Text: content.Text(s.Text), Bullets: bullets})
			}
			b.WriteString(sections(secs, "case-"))
		}
	default:
		if c.Metric != "" {
			fmt.Fprintf(&b, `<p class="timelineMetric">%s</p>`, Escape(c.Metric))
		}
		if c.Summary != "" {
			fmt.Fprintf(&b, `<p class="paperP">%s</p>`, Escape(c.Summary))
		}
		if outs := TagList(c.Outputs); outs != "" {
			b.WriteString(`<section class="paperBlock"><h4 class="paperH">Outputs</h4>` + outs + `</section>`)
		}
	}
	links := make(content.List[content.Link], 0, len(c.Links))
	for _, l := range c.Links {
		links = append(links, content.Link{Href: content.Text(l.Href), Label: content.Text(l.Label)})
	}
	b.WriteString(r.LinkRow(links))
	return b.String()
}

// DetailTemplates renders each case body into an inert <template> keyed by
// data-case-detail, for the client script to clone into the drawer.
func (r *Renderer) DetailTemplates(cases []Case) string {
	var b strings.Builder
	for _, c := range cases {
		fmt.Fprintf(&b, `<template data-case-detail="%d">%s</template>`, c.Index, r.CaseDetail(c))
	}
	return b.String()
}
