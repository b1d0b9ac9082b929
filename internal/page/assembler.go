// Package page assembles a full document for one view: a complete shell first,
// then a second pass that binds the content document into it.
package page

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/motion"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/view"
)

// ErrNoMount is returned when the host layout has no #app element.
var ErrNoMount = errors.New("mount element #app not found")

// MountSelector locates the element the shell is injected into.
const MountSelector = "#app"

// DefaultPhoto is the hero portrait used when the content document has none.
const DefaultPhoto = "assets/avatars/portrait-placeholder.svg"

// Assembler renders documents. The zero value is not usable; Renderer is
// required.
type Assembler struct {
	Renderer *render.Renderer
	Source   content.Source
	Animator motion.Animator
	Log      *zap.Logger

	// Layout is the host document template. Empty uses the built-in layout.
	Layout string
	// Static makes navigation links point at exported files.
	Static bool
	// StyleHref and ScriptHref are handed to the layout template.
	StyleHref  string
	ScriptHref string
	// BuildID is appended to asset links for cache busting.
	BuildID string
	// ReloadURL, when set, is exposed on <body data-reload> for the client.
	ReloadURL string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Page is an assembled document.
type Page struct {
	View   view.Page
	Layout view.Layout
	Doc  *goquery.Document
	// LoadErr is the content load error, if any. The document still holds a
	// valid shell when it is set.
	LoadErr error
}

// Render serializes the document.
func (p *Page) Render(w io.Writer) error {
	if p.Doc == nil || len(p.Doc.Nodes) == 0 {
		return errors.New("empty document")
	}
	return html.Render(w, p.Doc.Nodes[0])
}

// String returns the serialized document.
func (p *Page) String() string {
	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (a *Assembler) log() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

func (a *Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// Assemble runs one render pass for the URL. A content load failure is logged
// and the shell is returned with its empty states; only layout errors fail.
func (a *Assembler) Assemble(ctx context.Context, u *url.URL) (*Page, error) {
	doc, p, err := a.Shell(u)
	if err != nil {
		return nil, err
	}

	pg := &Page{View: p, Layout: view.ResolveLayout(u), Doc: doc}
	if a.Source == nil {
		pg.LoadErr = errors.New("no content source configured")
	} else {
		c, err := a.Source.Load(ctx)
		if err != nil {
			pg.LoadErr = err
		} else {
			a.bind(doc, p, c, a.linker(u))
		}
	}
	if pg.LoadErr != nil {
		a.log().Warn("content not loaded, serving shell",
			zap.String("view", p.String()),
			zap.Error(pg.LoadErr))
	}

	if a.Animator != nil {
		a.Animator.Init(doc)
	}
	return pg, nil
}

// Shell builds the document for the view named by u without any content.
// The classic layout ignores the page parameter and reports the dashboard.
func (a *Assembler) Shell(u *url.URL) (*goquery.Document, view.Page, error) {
	p := view.Resolve(u)
	layout := view.ResolveLayout(u)
	if layout == view.Classic {
		p = view.Dashboard
	}

	host, err := a.layout()
	if err != nil {
		return nil, p, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(host))
	if err != nil {
		return nil, p, fmt.Errorf("parsing layout: %w", err)
	}
	mount := doc.Find(MountSelector).First()
	if mount.Length() == 0 {
		return nil, p, fmt.Errorf("building shell: %w", ErrNoMount)
	}

	var buf bytes.Buffer
	if err := shellTmpl.ExecuteTemplate(&buf, "shell", a.shellData(u, p, layout)); err != nil {
		return nil, p, fmt.Errorf("executing shell template: %w", err)
	}
	mount.SetHtml(buf.String())

	if a.ReloadURL != "" {
		doc.Find("body").SetAttr("data-reload", a.ReloadURL)
	}
	doc.Find("body").SetAttr("data-view", p.String())
	doc.Find("body").SetAttr("data-layout", string(layout))
	return doc, p, nil
}

func (a *Assembler) layout() (string, error) {
	src := a.Layout
	if strings.TrimSpace(src) == "" {
		src = defaultLayout
	}
	tmpl, err := template.New("layout").Parse(src)
	if err != nil {
		return "", fmt.Errorf("parsing layout template: %w", err)
	}
	var buf bytes.Buffer
	data := layoutData{
		StyleHref:  a.assetHref(a.StyleHref, "style.css"),
		ScriptHref: a.assetHref(a.ScriptHref, "client.js"),
		BuildID:    a.BuildID,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing layout template: %w", err)
	}
	return buf.String(), nil
}

func (a *Assembler) assetHref(href, def string) string {
	if href == "" {
		href = a.Renderer.Base.WithBase(def)
	}
	if a.BuildID == "" {
		return href
	}
	sep := "?"
	if strings.Contains(href, "?") {
		sep = "&"
	}
	return href + sep + "v=" + url.QueryEscape(a.BuildID)
}

// linker builds navigation links from u. Without a URL links start from the
// deployment base path.
func (a *Assembler) linker(u *url.URL) view.Linker {
	if u == nil {
		u = &url.URL{Path: a.Renderer.Base.Path}
	}
	return view.NewLinker(u, a.Static)
}

func (a *Assembler) shellData(u *url.URL, p view.Page, layout view.Layout) shellData {
	linker := a.linker(u)
	data := shellData{
		View:         string(p),
		IsDashboard:  p.IsDashboard(),
		Classic:      layout == view.Classic,
		Home:         linker.ToDashboard(),
		Links:        make(map[string]string, len(view.Secondary)),
		ClassicGrids: classicGrids,
		SectionMeta:  sectionMeta,
		Meta:         secondaryMeta[p],
		GridID:       gridIDs[p],
		Year:         strconv.Itoa(a.now().Year()),
		Photo:        a.Renderer.Base.WithBase(DefaultPhoto),
		KPI:          template.HTML(render.KPI(content.KPI{})),
		Empty:        template.HTML(render.Empty()),
		EmptyGallery: template.HTML(render.EmptyGallery()),
	}
	data.ModeLinks = []navLink{
		{Href: linker.ToLayout(view.DashboardLayout), Label: "Dashboard", Active: layout != view.Classic},
		{Href: linker.ToLayout(view.Classic), Label: "Classic", Active: layout == view.Classic},
	}
	for _, s := range view.Secondary {
		href := linker.ToPage(s)
		data.Links[string(s)] = href
		data.Nav = append(data.Nav, navLink{Href: href, Label: secondaryMeta[s].Label, Active: s == p})
		data.Sections = append(data.Sections, navLink{Href: "#" + string(s), Label: secondaryMeta[s].Label})
	}
	return data
}

// Bind fills the shell with content. Running it twice yields the same
// document. Hrefs in the content that only select a view are linked from the
// deployment base path.
func (a *Assembler) Bind(doc *goquery.Document, p view.Page, c *content.Document) {
	a.bind(doc, p, c, a.linker(nil))
}

func (a *Assembler) bind(doc *goquery.Document, p view.Page, c *content.Document, linker view.Linker) {
	if c == nil {
		return
	}
	r := a.Renderer
	site := c.Site

	setText(doc, "title", site.Title)
	setText(doc, "#brandName", site.Title)
	setText(doc, "#footerName", site.Name)

	caps := c.Capabilities
	doc.Find("#researchFeatured").SetHtml(r.Paper(caps.Research.Featured))
	doc.Find("#researchMethods").SetHtml(render.TagList(content.Texts(caps.Research.Methods)))
	doc.Find("#researchTimeline").SetHtml(r.Timeline(caps.Research.Timeline))
	doc.Find("#aiGrid").SetHtml(r.CardList(caps.AI.Cards))
	doc.Find("#pmGrid").SetHtml(r.CardList(caps.PM.Cards))
	doc.Find("#contentGrid").SetHtml(r.CardList(caps.Content.Cards))
	doc.Find("#visualGrid").SetHtml(r.Gallery(caps.Visual.Gallery))

	if p == view.Research {
		a.bindCases(doc, caps.Research)
	}
	if p.IsDashboard() {
		a.bindDashboard(doc, c, linker)
	}
	a.log().Debug("content bound", zap.String("view", p.String()))
}

func (a *Assembler) bindCases(doc *goquery.Document, research content.Research) {
	cases := Cases(research)
	payload, err := json.Marshal(cases)
	if err != nil {
		a.log().Warn("encoding research cases", zap.Error(err))
		return
	}
	container := doc.Find("#researchCases")
	container.SetAttr("data-cases", string(payload))
	container.SetHtml(render.CasePairs(cases) + a.Renderer.DetailTemplates(cases))
}

// Cases derives the research case list: the featured paper first when
// present, then the timeline entries in order.
func Cases(research content.Research) []render.Case {
	cases := make([]render.Case, 0, len(research.Timeline)+1)
	if research.Featured != nil {
		cases = append(cases, render.PaperCase(research.Featured, len(cases)))
	}
	for _, e := range research.Timeline {
		cases = append(cases, render.TimelineCase(e, len(cases)))
	}
	return cases
}

func (a *Assembler) bindDashboard(doc *goquery.Document, c *content.Document, linker view.Linker) {
	r := a.Renderer
	hero := c.Hero

	setText(doc, "#heroKicker", c.Site.Tagline)
	setText(doc, "#heroSlogan", hero.Slogan)
	setText(doc, "#heroSloganEn", hero.SloganEn)
	setText(doc, "#heroBio", hero.Bio)
	doc.Find("#heroPhoto").SetAttr("src", r.Base.WithBase(hero.Photo.Or(DefaultPhoto)))
	if len(hero.CTA) > 0 {
		doc.Find("#heroCta").SetHtml(heroCTA(r, linker, hero.CTA))
	}

	setText(doc, "#tileName", c.Site.Name)
	setText(doc, "#aboutHeadline", c.About.Headline)
	if c.Site.PersonalityTags != nil {
		doc.Find("#tileTags").SetHtml(render.TagList(content.Texts(c.Site.PersonalityTags)))
	}
	if c.Site.Contacts != nil {
		row := r.ContactRow(c.Site.Contacts)
		doc.Find("#tileLinks").SetHtml(row)
		doc.Find("#contactLinks").SetHtml(row)
	}
	doc.Find("#aboutCards").SetHtml(render.AboutCards(c.About.Cards))

	dash := c.Dashboard
	if dash.Research != nil {
		doc.Find("#researchKpi").SetHtml(render.KPI(dash.Research.KPI))
		doc.Find("#researchSpark").SetHtml(render.Sparkline(dash.Research.Sparkline))
	}
	if dash.AI != nil {
		setText(doc, "#aiHeadline", dash.AI.Headline)
		setText(doc, "#aiSub", dash.AI.Sub)
		doc.Find("#aiBadges").SetHtml(render.TagList(content.Texts(dash.AI.Highlights)))
		doc.Find("#aiStrip").SetHtml(r.ImageStrip(dash.AI.DemoImages))
	}
	if dash.PM != nil {
		doc.Find("#pmBoard").SetHtml(render.ProjectBoard(dash.PM.Projects))
		if dash.PM.Pie != nil {
			doc.Find("#pmPie").SetHtml(render.Pie(dash.PM.Pie))
		}
	}
	if dash.Content != nil {
		doc.Find("#contentHeadlines").SetHtml(render.Headlines(dash.Content.Headlines))
	}
	if dash.Visual != nil {
		doc.Find("#visualCovers").SetHtml(r.Covers(dash.Visual.Covers))
	}
}

func heroCTA(r *render.Renderer, linker view.Linker, ctas content.List[content.Link]) string {
	var b strings.Builder
	for i, l := range ctas {
		class := "btn"
		if i == 0 {
			class = "btn btn--primary"
		}
		href, ok := linker.ViewHref(l.Href.Trim())
		if !ok {
			href = r.Base.WithBase(l.Href.Trim())
		}
		fmt.Fprintf(&b, `<a class="%s" href="%s">%s</a>`, class, render.Escape(href), render.Escape(l.Label))
	}
	return b.String()
}

// setText replaces the text of the selection when v is not blank.
func setText(doc *goquery.Document, selector string, v content.Text) {
	if v.Trim() == "" {
		return
	}
	doc.Find(selector).SetText(string(v))
}
