package delegate

import (
	"encoding/json"
	"html"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap/zaptest"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
	"github.com/ziadkadry99/folio/internal/render"
)

func newRouter(t *testing.T, body string) *Router {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body>" + body + "</body></html>"))
	if err != nil {
		t.Fatal(err)
	}
	return New(doc, render.New(links.NewBase("", "/")), zaptest.NewLogger(t))
}

func casesBody(t *testing.T) string {
	t.Helper()
	research := content.Research{
		Featured: &content.Featured{
			Title:    "Paper",
			Abstract: "Abstract text",
			Keywords: content.List[content.Text]{"causal"},
			Sections: content.List[content.Section]{{Heading: "Method"}},
		},
		Timeline: content.List[content.TimelineEntry]{
			{Card: content.Card{Title: "Project", Desc: "Built a thing", Outputs: content.List[content.Text]{"dashboard"}}},
		},
	}
	cases := []render.Case{render.PaperCase(research.Featured, 0), render.TimelineCase(research.Timeline[0], 1)}
	payload, err := json.Marshal(cases)
	if err != nil {
		t.Fatal(err)
	}
	return `<div id="researchCases" data-cases="` + html.EscapeString(string(payload)) + `">` + render.CasePairs(cases) + `</div>`
}

func TestClickImageTrigger(t *testing.T) {
	rt := newRouter(t, `<button class="imgBtn" data-img="/a.png" data-alt="A" data-caption="Cap"><img src="/a.png"></button>`)
	if !rt.Click(rt.Doc.Find(".imgBtn img")) {
		t.Fatal("click on the thumbnail should bubble to the trigger")
	}
	if !rt.Modal.IsOpen() {
		t.Fatal("modal not open")
	}
	if got := rt.Doc.Find(".modal__img").AttrOr("src", ""); got != "/a.png" {
		t.Errorf("src = %q", got)
	}
	if got := rt.Doc.Find(".modal__caption").Text(); got != "Cap" {
		t.Errorf("caption = %q", got)
	}

	rt.Click(rt.Doc.Find(".imgBtn"))
	if n := rt.Doc.Find("#imgModal").Length(); n != 1 {
		t.Errorf("modal nodes = %d after two opens", n)
	}
}

func TestClickWithoutMarkerIsIgnored(t *testing.T) {
	rt := newRouter(t, `<p class="plain">text</p><button class="imgBtn" data-img="">x</button>`)
	if rt.Click(rt.Doc.Find(".plain")) {
		t.Error("plain click should not be handled")
	}
	if rt.Click(rt.Doc.Find(".imgBtn")) {
		t.Error("trigger without src should be ignored")
	}
	if rt.Modal.Exists() || rt.Drawer.Exists() {
		t.Error("ignored clicks must not create overlays")
	}
	if rt.Click(rt.Doc.Find(".missing")) {
		t.Error("empty selection should be ignored")
	}
}

func TestCloseMarkers(t *testing.T) {
	rt := newRouter(t, `<button class="imgBtn" data-img="/a.png">x</button><span data-close="true" class="stray">x</span>`)
	rt.Click(rt.Doc.Find(".imgBtn"))

	if rt.Click(rt.Doc.Find(".stray")) {
		t.Error("close marker outside an overlay should be ignored")
	}
	if !rt.Modal.IsOpen() {
		t.Fatal("modal closed by a stray marker")
	}
	if !rt.Click(rt.Doc.Find(".modal__backdrop")) || rt.Modal.IsOpen() {
		t.Error("backdrop click should close the modal")
	}
}

func TestDrawerPaperCase(t *testing.T) {
	rt := newRouter(t, casesBody(t))
	trigger := rt.Doc.Find(`[data-drawer-kind][data-case-index="0"] .card__title`)
	if !rt.Click(trigger) {
		t.Fatal("drawer trigger not handled")
	}
	if !rt.Drawer.IsOpen() {
		t.Fatal("drawer not open")
	}
	if got := rt.Doc.Find("#drawerTitle").Text(); got != "Paper" {
		t.Errorf("title = %q", got)
	}
	body := rt.Doc.Find("#drawerContent").Text()
	for _, want := range []string{"Abstract text", "causal", "Method"} {
		if !strings.Contains(body, want) {
			t.Errorf("paper drawer missing %q: %s", want, body)
		}
	}
}

func TestDrawerTimelineCase(t *testing.T) {
	rt := newRouter(t, casesBody(t))
	rt.Click(rt.Doc.Find(`[data-case-index="1"]`))
	body := rt.Doc.Find("#drawerContent").Text()
	if !strings.Contains(body, "Built a thing") || !strings.Contains(body, "dashboard") {
		t.Errorf("timeline drawer body = %q", body)
	}
	if strings.Contains(body, "Abstract") {
		t.Error("timeline drawer should not show an abstract")
	}

	if !rt.Click(rt.Doc.Find(".drawer__close")) || rt.Drawer.IsOpen() {
		t.Error("close button should close the drawer")
	}
}

func TestDrawerBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad index", `<div data-cases="[]"><a data-drawer-kind="paper" data-case-index="x">x</a></div>`},
		{"missing case", `<div data-cases="[]"><a data-drawer-kind="paper" data-case-index="3">x</a></div>`},
		{"malformed json", `<div data-cases="{nope"><a data-drawer-kind="paper" data-case-index="0">x</a></div>`},
		{"no holder", `<a data-drawer-kind="paper" data-case-index="0">x</a>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newRouter(t, tt.body)
			if rt.Click(rt.Doc.Find("[data-drawer-kind]")) {
				t.Error("click should be ignored")
			}
			if rt.Drawer.Exists() {
				t.Error("drawer should not be created")
			}
		})
	}
}

func TestEscapeClosesAllOverlays(t *testing.T) {
	rt := newRouter(t, `<button class="imgBtn" data-img="/a.png">x</button>`+casesBody(t))
	if rt.KeyDown("Escape") {
		t.Error("Escape without overlays should not be handled")
	}
	rt.Click(rt.Doc.Find(".imgBtn"))
	rt.Click(rt.Doc.Find(`[data-case-index="0"]`))
	if !rt.Modal.IsOpen() || !rt.Drawer.IsOpen() {
		t.Fatal("both overlays should be open")
	}
	if rt.KeyDown("Enter") {
		t.Error("other keys are ignored")
	}
	rt.KeyDown("Escape")
	if rt.Modal.IsOpen() || rt.Drawer.IsOpen() {
		t.Error("Escape should close both overlays")
	}
}

func TestPieSliceFocus(t *testing.T) {
	chart := render.Pie(&content.PieChart{Slices: content.List[content.Slice]{
		{Label: "A", Value: 1}, {Label: "B", Value: 2}, {Label: "C", Value: 3},
	}})
	rt := newRouter(t, chart)
	legend := rt.Doc.Find(`li[data-pie-slice="1"]`)

	if !rt.Click(legend.Find(".pie__label")) {
		t.Fatal("legend click not handled")
	}
	if !legend.HasClass("is-active") {
		t.Error("chosen legend entry should be active")
	}
	if !rt.Doc.Find(`g[data-pie-slice="1"]`).HasClass("is-active") {
		t.Error("matching wedge should be active")
	}
	if n := rt.Doc.Find(".is-dim").Length(); n != 4 {
		t.Errorf("dimmed entries = %d, want 4", n)
	}

	rt.Click(legend)
	if rt.Doc.Find(".is-dim, .is-active").Length() != 0 {
		t.Error("clicking the active slice should reset the chart")
	}
}

func TestParseScriptAndReplay(t *testing.T) {
	steps, err := ParseScript([]string{
		"# open the first image",
		"click .imgBtn",
		"",
		"key Escape",
	})
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(steps) != 2 || steps[0].Action != "click" || steps[1].Arg != "Escape" {
		t.Fatalf("steps = %+v", steps)
	}

	rt := newRouter(t, `<button class="imgBtn" data-img="/a.png">x</button>`)
	if err := rt.Replay(steps[:1]); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !rt.Modal.IsOpen() {
		t.Error("replayed click should open the modal")
	}
	if err := rt.Replay(steps[1:]); err != nil || rt.Modal.IsOpen() {
		t.Error("replayed Escape should close the modal")
	}

	if err := rt.Replay([]Step{{Action: "click", Arg: "#nothing"}}); err == nil {
		t.Error("expected error for unmatched selector")
	}
	if _, err := ParseScript([]string{"hover .x"}); err == nil {
		t.Error("expected error for unknown action")
	}
	if _, err := ParseScript([]string{"click"}); err == nil {
		t.Error("expected error for missing argument")
	}
}
