package page

import (
	"html/template"

	"github.com/ziadkadry99/folio/internal/view"
)

// defaultLayout is the host document used when no layout file is configured.
// Custom layouts receive the same layoutData and must contain a #app element.
const defaultLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Portfolio</title>
  <link rel="stylesheet" href="{{.StyleHref}}">
</head>
<body>
  <div id="app"></div>
  <script src="{{.ScriptHref}}" defer></script>
</body>
</html>`

// layoutData is passed to the host layout template.
type layoutData struct {
	StyleHref  string
	ScriptHref string
	BuildID    string
}

// shellTemplates holds the page chrome and one body per view. Every data-bound
// container starts with its empty state so the shell is complete on its own.
const shellTemplates = `
{{define "shell"}}<div class="page" id="top">
{{template "nav" .}}
{{if .Classic}}{{template "classic" .}}{{else if .IsDashboard}}{{template "dashboard" .}}{{else}}{{template "secondary" .}}{{end}}
{{template "footer" .}}
</div>{{end}}

{{define "nav"}}<header class="nav" id="siteNav">
  <div class="nav__inner container">
    <a class="brand" href="#top" aria-label="Back to top">
      <span class="brand__mark" aria-hidden="true"></span>
      <span class="brand__name" id="brandName">Portfolio</span>
    </a>
    <nav class="nav__links" aria-label="Pages">
      {{if .Classic}}<a href="#about">About</a>{{range .Sections}}<a href="{{.Href}}">{{.Label}}</a>{{end}}
      {{else}}{{if .IsDashboard}}<a href="#home">Home</a><a href="#dashboard">Dashboard</a>{{else}}<a href="{{.Home}}">Dashboard</a>{{end}}
      {{range .Nav}}<a href="{{.Href}}"{{if .Active}} class="is-active" aria-current="page"{{end}}>{{.Label}}</a>{{end}}{{end}}
    </nav>
    <div class="nav__mode" id="navMode">
      {{range .ModeLinks}}<a class="modeLink{{if .Active}} is-active{{end}}" href="{{.Href}}">{{.Label}}</a>{{end}}
    </div>
    <button class="nav__toggle" id="navToggle" type="button" aria-expanded="false">Menu</button>
  </div>
</header>{{end}}

{{define "footer"}}<footer class="footer">
  <div class="container footer__inner">
    <span>&copy; <span id="year">{{.Year}}</span> <span id="footerName">Your name</span></span>
    <button class="toTop" type="button" id="toTop">Back to top</button>
  </div>
</footer>{{end}}

{{define "dashboard"}}<main>
  <section class="heroDash container" id="home">
    <div class="heroDash__wrap">
      <div class="heroDash__orbs" aria-hidden="true"><span class="orb orb--a"></span><span class="orb orb--b"></span><span class="orb orb--c"></span></div>
      <div class="heroDash__grid">
        <div>
          <div class="heroDash__kicker" id="heroKicker">Researcher and builder</div>
          <h1 class="heroDash__title" id="heroSlogan">Bridging data and creativity</h1>
          <p class="heroDash__subtitle" id="heroSloganEn"></p>
          <p class="heroDash__bio" id="heroBio"></p>
          <div class="actions" id="heroCta"></div>
        </div>
        <div class="heroDash__portrait">
          <img id="heroPhoto" src="{{.Photo}}" alt="Portrait" loading="lazy">
        </div>
      </div>
    </div>
  </section>

  <section class="dashboard container" id="dashboard">
    <div class="section__head">
      <h2 class="section__title">Capability dashboard</h2>
      <p class="section__desc">Each tile summarizes one area. Open a tile for the full page.</p>
    </div>
    <div class="bento" id="bento">
      <article class="tile tile--profile" id="tileProfile">
        <div class="tile__title">Profile</div>
        <div class="tile__body">
          <div class="tileProfile__name" id="tileName">Your name</div>
          <p class="tileProfile__about" id="aboutHeadline"></p>
          <div class="tileProfile__tags" id="tileTags"></div>
          <div class="tileProfile__links actions" id="tileLinks"></div>
        </div>
      </article>

      <article class="tile tile--research" id="tileResearch">
        <div class="tile__title">A. Research and analysis</div>
        <div class="tile__body">
          <div class="kpi" id="researchKpi">{{.KPI}}</div>
          <div class="sparkWrap" id="researchSpark"></div>
          <div class="actions">
            <a class="btn btn--primary" href="{{index .Links "research"}}">View details</a>
            <a class="btn" href="{{index .Links "research"}}#paper">Quick tour</a>
          </div>
        </div>
      </article>

      <article class="tile tile--ai" id="tileAi">
        <div class="tile__title">B. AI tooling</div>
        <div class="tile__body">
          <div class="aiHeadline" id="aiHeadline"></div>
          <div class="aiSub" id="aiSub"></div>
          <div class="aiBadges" id="aiBadges"></div>
          <div class="aiStrip" id="aiStrip" aria-hidden="true"></div>
          <div class="actions"><a class="btn btn--primary" href="{{index .Links "ai"}}">View details</a></div>
        </div>
      </article>

      <article class="tile tile--pm" id="tilePm">
        <div class="tile__title">C. Project delivery</div>
        <div class="tile__body">
          <div id="pmBoard">{{.Empty}}</div>
          <div class="pmPie" id="pmPie"></div>
          <div class="actions"><a class="btn btn--primary" href="{{index .Links "pm"}}">View details</a></div>
        </div>
      </article>

      <article class="tile tile--visual" id="tileVisual">
        <div class="tile__title">D. Visual design</div>
        <div class="tile__body">
          <div class="coverStack" id="visualCovers"></div>
          <div class="actions"><a class="btn btn--primary" href="{{index .Links "visual"}}">View details</a></div>
        </div>
      </article>

      <article class="tile tile--content" id="tileContent">
        <div class="tile__title">E. Content and storytelling</div>
        <div class="tile__body">
          <div id="contentHeadlines">{{.Empty}}</div>
          <div class="actions"><a class="btn btn--primary" href="{{index .Links "content"}}">View details</a></div>
        </div>
      </article>
    </div>
  </section>

  <div class="divider divider--check" aria-hidden="true"></div>

  <section class="section container" id="about">
    <div class="section__head">
      <h2 class="section__title">About</h2>
      <p class="section__desc">Strengths, working style and direction.</p>
    </div>
    <div class="grid" id="aboutCards">{{.Empty}}</div>
  </section>
</main>{{end}}

{{define "classic"}}<main>
  <section class="hero container" id="home">
    <div class="hero__wrap">
      <div class="hero__grid">
        <div>
          <div class="heroDash__kicker" id="heroKicker">Researcher and builder</div>
          <h1 class="hero__title" id="heroSlogan">Bridging data and creativity</h1>
          <p class="hero__subtitle" id="heroBio"></p>
          <div id="tileTags"></div>
          <div class="actions" id="heroCta"><a class="btn btn--primary" href="#research">Start with research</a><a class="btn" href="#about">About me</a></div>
        </div>
        <div class="hero__art">
          <img id="heroPhoto" src="{{.Photo}}" alt="Portrait" loading="lazy">
        </div>
      </div>
    </div>
  </section>

  <div class="divider divider--check" aria-hidden="true"></div>

  <section class="section container" id="about">
    <div class="section__head">
      <h2 class="section__title">About</h2>
      <p class="section__desc" id="aboutHeadline">Strengths, working style and direction.</p>
    </div>
    <div class="grid" id="aboutCards">{{.Empty}}</div>
    <div class="actions" id="contactLinks"></div>
  </section>

  <div class="divider divider--check" aria-hidden="true"></div>
  <section class="section section--featured container" id="research">
    <div class="section__head">
      <h2 class="section__title">{{(index .SectionMeta "research").Title}}</h2>
      <p class="section__desc">{{(index .SectionMeta "research").SectionDesc}}</p>
    </div>
    <div class="featured">
      <article class="featured__main" id="researchFeatured">{{.Empty}}</article>
      <aside class="featured__side">
        <div class="card">
          <h3 class="card__title">Methods</h3>
          <div id="researchMethods"></div>
        </div>
      </aside>
    </div>
    <div class="grid" id="researchTimeline">{{.Empty}}</div>
  </section>
{{range .ClassicGrids}}
  <div class="divider divider--check" aria-hidden="true"></div>
  <section class="section container" id="{{.View}}">
    <div class="section__head">
      <h2 class="section__title">{{.Meta.Title}}</h2>
      <p class="section__desc">{{.Meta.SectionDesc}}</p>
    </div>
    <div class="grid" id="{{.GridID}}">{{$.Empty}}</div>
  </section>
{{end}}
  <div class="divider divider--check" aria-hidden="true"></div>
  <section class="section container" id="visual">
    <div class="section__head">
      <h2 class="section__title">{{(index .SectionMeta "visual").Title}}</h2>
      <p class="section__desc">{{(index .SectionMeta "visual").SectionDesc}}</p>
    </div>
    <div class="grid" id="visualGrid">{{.EmptyGallery}}</div>
  </section>
</main>{{end}}

{{define "secondary"}}<main>
  <section class="page2 container" id="page2Top">
    <div class="page2__head">
      <a class="backBtn" href="{{.Home}}">Back to dashboard</a>
      <div>
        <h1 class="page2__title">{{.Meta.Title}}</h1>
        <p class="page2__desc">{{.Meta.Desc}}</p>
      </div>
    </div>
  </section>
  {{if eq .View "research"}}{{template "research" .}}
  {{else if eq .View "visual"}}{{template "visual" .}}
  {{else}}{{template "cards" .}}{{end}}
</main>{{end}}

{{define "research"}}<div id="paper"></div>
  <div class="divider divider--check" aria-hidden="true"></div>
  <section class="section section--featured container" id="research">
    <div class="section__head">
      <h2 class="section__title">{{.Meta.SectionTitle}}</h2>
      <p class="section__desc">{{.Meta.SectionDesc}}</p>
    </div>
    <div class="featured">
      <article class="featured__main" id="researchFeatured">{{.Empty}}</article>
      <aside class="featured__side">
        <div class="card">
          <h3 class="card__title">Methods</h3>
          <div id="researchMethods"></div>
        </div>
      </aside>
    </div>
    <div class="section__head section__head--sub">
      <h3 class="section__title">Projects and outputs</h3>
      <p class="section__desc">The full process and deliverables.</p>
    </div>
    <div class="grid" id="researchTimeline">{{.Empty}}</div>
  </section>
  <div class="divider divider--check" aria-hidden="true"></div>
  <section class="section container" id="cases">
    <div class="section__head">
      <h2 class="section__title">Case files</h2>
      <p class="section__desc">Open a case to read the full write-up.</p>
    </div>
    <div class="grid" id="researchCases" data-cases="[]">{{.Empty}}</div>
  </section>{{end}}

{{define "visual"}}<div class="divider divider--check" aria-hidden="true"></div>
  <section class="section container" id="visual">
    <div class="section__head">
      <h2 class="section__title">{{.Meta.SectionTitle}}</h2>
      <p class="section__desc">{{.Meta.SectionDesc}}</p>
    </div>
    <div class="grid" id="visualGrid">{{.EmptyGallery}}</div>
  </section>{{end}}

{{define "cards"}}<div class="divider divider--check" aria-hidden="true"></div>
  <section class="section container" id="{{.View}}">
    <div class="section__head">
      <h2 class="section__title">{{.Meta.SectionTitle}}</h2>
      <p class="section__desc">{{.Meta.SectionDesc}}</p>
    </div>
    <div class="grid" id="{{.GridID}}">{{.Empty}}</div>
  </section>{{end}}
`

var shellTmpl = template.Must(template.New("page").Parse(shellTemplates))

// viewMeta is the fixed copy of a secondary view.
type viewMeta struct {
	Label        string
	Title        string
	Desc         string
	SectionTitle string
	SectionDesc  string
}

var secondaryMeta = map[view.Page]viewMeta{
	view.Research: {
		Label:        "Research",
		Title:        "Research and analysis",
		Desc:         "Presented as a paper: abstract, keywords, figures, sections and reading progress.",
		SectionTitle: "Featured study",
		SectionDesc:  "Methods, cases, outputs and the conclusions drawn from them.",
	},
	view.AI: {
		Label:        "AI",
		Title:        "AI tooling and innovation",
		Desc:         "Results and workflows: efficiency, outputs and reusable templates.",
		SectionTitle: "Cases and workflows",
		SectionDesc:  "Capability shown through results, not a list of tools.",
	},
	view.PM: {
		Label:        "Delivery",
		Title:        "Project delivery",
		Desc:         "Milestones and shipped work.",
		SectionTitle: "Projects",
		SectionDesc:  "Goals, pacing, risk and retrospectives.",
	},
	view.Content: {
		Label:        "Content",
		Title:        "Content and storytelling",
		Desc:         "Telling the story clearly and getting it to spread.",
		SectionTitle: "Selected pieces",
		SectionDesc:  "Positioning, structure, distribution and outcomes.",
	},
	view.Visual: {
		Label:        "Visual",
		Title:        "Visual design",
		Desc:         "Covers, layout and detail work.",
		SectionTitle: "Gallery",
		SectionDesc:  "Layout, color, graphic language and detail.",
	},
}

// gridIDs maps card-grid views to their container id.
var gridIDs = map[view.Page]string{
	view.AI:      "aiGrid",
	view.PM:      "pmGrid",
	view.Content: "contentGrid",
}

// classicGrid is one card-grid section of the classic page.
type classicGrid struct {
	View   string
	Meta   viewMeta
	GridID string
}

// classicGrids lists the card-grid sections in page order.
var classicGrids = []classicGrid{
	{View: string(view.AI), Meta: secondaryMeta[view.AI], GridID: gridIDs[view.AI]},
	{View: string(view.PM), Meta: secondaryMeta[view.PM], GridID: gridIDs[view.PM]},
	{View: string(view.Content), Meta: secondaryMeta[view.Content], GridID: gridIDs[view.Content]},
}

// sectionMeta exposes the view copy by name to the classic template.
var sectionMeta = func() map[string]viewMeta {
	m := make(map[string]viewMeta, len(secondaryMeta))
	for p, meta := range secondaryMeta {
		m[string(p)] = meta
	}
	return m
}()

type navLink struct {
	Href   string
	Label  string
	Active bool
}

// shellData feeds shellTemplates.
type shellData struct {
	View         string
	IsDashboard  bool
	Classic      bool
	Home         string
	Links        map[string]string
	Nav          []navLink
	ModeLinks    []navLink
	Sections     []navLink
	ClassicGrids []classicGrid
	SectionMeta  map[string]viewMeta
	Meta         viewMeta
	GridID       string
	Year         string
	Photo        string
	KPI          template.HTML
	Empty        template.HTML
	EmptyGallery template.HTML
}
