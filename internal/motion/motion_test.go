package motion

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const researchDoc = `<html><body>
<section class="section section--featured" id="research">
  <h2 class="section__title">Research</h2>
  <p class="section__desc">Desc</p>
  <div class="featured">
    <article class="featured__main">
      <div class="paper" data-anim="featured">
        <div class="paperProgress"><span class="paperProgress__bar"></span></div>
        <div class="paperHeader"><div class="paperHint">Scroll</div></div>
        <section class="paperSection" data-paper-step="abstract"></section>
        <section class="paperSection" data-paper-step="figures">
          <figure data-anim="figure"></figure>
        </section>
      </div>
    </article>
  </div>
  <div class="timeline"><article class="timelineCard"></article></div>
</section>
<div class="divider"></div>
<article class="tile"></article>
</body></html>`

func newDoc(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func readPlan(t *testing.T, doc *goquery.Document) Plan {
	t.Helper()
	script := doc.Find("#" + PlanID)
	if script.Length() != 1 {
		t.Fatalf("plan scripts = %d, want 1", script.Length())
	}
	if script.AttrOr("type", "") != "application/json" {
		t.Errorf("plan type = %q", script.AttrOr("type", ""))
	}
	var plan Plan
	if err := json.Unmarshal([]byte(script.Text()), &plan); err != nil {
		t.Fatalf("plan is not JSON: %v", err)
	}
	return plan
}

func count(plan Plan, kind Kind) int {
	n := 0
	for _, e := range plan.Effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestPlannerResearchPaper(t *testing.T) {
	doc := newDoc(t, researchDoc)
	Planner{}.Init(doc)
	plan := readPlan(t, doc)

	if count(plan, Scrub) != 1 || count(plan, FadeOut) != 1 {
		t.Errorf("expected progress scrub and hint fade, got %+v", plan.Effects)
	}
	if count(plan, Toggle) != 2 {
		t.Errorf("toggle effects = %d, want one per paper section", count(plan, Toggle))
	}
	if count(plan, Highlight) != 1 {
		t.Errorf("timeline highlights = %d", count(plan, Highlight))
	}

	var pin *Effect
	for i, e := range plan.Effects {
		if e.Kind == Pin {
			pin = &plan.Effects[i]
		}
	}
	if pin == nil {
		t.Fatal("missing pin effect")
	}
	if pin.Media != PinMedia || pin.Extra != 700 {
		t.Errorf("pin = %+v", *pin)
	}
	target := doc.Find("[" + TargetAttr + "=" + pin.Targets[0] + "]")
	if !target.HasClass("featured__main") {
		t.Error("pin should target .featured__main")
	}
}

func TestPlannerIsIdempotent(t *testing.T) {
	doc := newDoc(t, researchDoc)
	Planner{}.Init(doc)
	first, _ := doc.Html()
	Planner{}.Init(doc)
	second, _ := doc.Html()
	if first != second {
		t.Error("second Init changed the document")
	}
	if doc.Find("#"+PlanID).Length() != 1 {
		t.Error("plan script duplicated")
	}
}

func TestPlannerWithoutPaper(t *testing.T) {
	doc := newDoc(t, `<html><body><article class="tile"></article></body></html>`)
	Planner{}.Init(doc)
	plan := readPlan(t, doc)
	if len(plan.Effects) != 1 || plan.Effects[0].Kind != Reveal {
		t.Errorf("effects = %+v", plan.Effects)
	}
	if *plan.Effects[0].Opacity != 0 {
		t.Error("reveal should start from zero opacity")
	}
}

func TestPinScroll(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{0, 700},
		{3, 700},
		{4, 880},
		{10, 2200},
	}
	for _, tt := range tests {
		if got := PinScroll(tt.steps); got != tt.want {
			t.Errorf("PinScroll(%d) = %d, want %d", tt.steps, got, tt.want)
		}
	}
}
