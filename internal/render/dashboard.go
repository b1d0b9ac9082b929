package render

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

const (
	kpiDefaultLabel = "Case result"
	maxCovers       = 3
)

// KPI renders the label, value and note of a headline number.
func KPI(k content.KPI) string {
	return fmt.Sprintf(`<div class="kpi__label" id="researchKpiLabel">%s</div><div class="kpi__value" id="researchKpiValue">%s</div><div class="kpi__note" id="researchKpiNote">%s</div>`,
		Escape(k.Label.Or(kpiDefaultLabel)), Escape(k.Value), Escape(k.Note))
}

// ProjectBoard renders project rows with a status pill.
func ProjectBoard(projects content.List[content.Project]) string {
	if len(projects) == 0 {
		return Empty()
	}
	var b strings.Builder
	b.WriteString(`<div class="pmBoard">`)
	for _, p := range projects {
		status := Escape(p.Status.Trim())
		b.WriteString(`<div class="pmItem"><div class="pmItem__top">`)
		fmt.Fprintf(&b, `<div class="pmItem__title">%s</div>`, Escape(p.Title))
		fmt.Fprintf(&b, `<span class="pmPill pmPill--%s">%s</span>`, status, status)
		fmt.Fprintf(&b, `</div><div class="pmItem__meta">%s</div></div>`, Escape(p.Meta))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Headlines renders a magazine-style list of title/meta rows.
func Headlines(items content.List[content.Headline]) string {
	if len(items) == 0 {
		return Empty()
	}
	var b strings.Builder
	b.WriteString(`<div class="mag">`)
	for _, h := range items {
		fmt.Fprintf(&b, `<div class="magRow"><div class="magTitle">%s</div><div class="magMeta">%s</div></div>`,
			Escape(h.Title), Escape(h.Meta))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// Covers renders up to three cover thumbnails that open the image modal.
func (r *Renderer) Covers(covers content.List[content.Text]) string {
	srcs := content.Texts(covers)
	if len(srcs) > maxCovers {
		srcs = srcs[:maxCovers]
	}
	var b strings.Builder
	for _, src := range srcs {
		b.WriteString(r.imageTrigger("imgBtn cover", content.Text(src), "cover", "Cover artwork"))
	}
	return b.String()
}

// ImageStrip renders decorative demo images.
func (r *Renderer) ImageStrip(images content.List[content.Text]) string {
	var b strings.Builder
	for _, src := range content.Texts(images) {
		fmt.Fprintf(&b, `<img src="%s" alt="" loading="lazy"/>`, r.url(content.Text(src)))
	}
	return b.String()
}
