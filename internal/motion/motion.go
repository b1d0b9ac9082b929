// Package motion describes scroll-triggered reveal effects for a populated
// document. The browser animation library consumes the plan; this package
// only decides which elements get which effect.
package motion

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Animator is the animation collaborator. Init runs once per render pass,
// after content has been bound.
type Animator interface {
	Init(doc *goquery.Document)
}

const (
	// PlanID is the id of the script element carrying the plan.
	PlanID = "motionPlan"
	// TargetAttr tags every element referenced by the plan.
	TargetAttr = "data-motion"

	// PinMedia is the viewport query under which the featured paper is pinned.
	PinMedia = "(min-width: 861px)"
	// PinMinScroll and PinStepScroll size the pinned scroll distance.
	PinMinScroll  = 700
	PinStepScroll = 220
)

// Kind names an effect.
type Kind string

const (
	Reveal    Kind = "reveal"
	Scrub     Kind = "scrub"
	FadeOut   Kind = "fadeOut"
	Toggle    Kind = "toggleClass"
	Pin       Kind = "pin"
	Highlight Kind = "highlight"
)

// Effect is one entry in the plan. Targets and Trigger are data-motion ids.
type Effect struct {
	Kind     Kind     `json:"kind"`
	Targets  []string `json:"targets"`
	Trigger  string   `json:"trigger,omitempty"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
	Once     bool     `json:"once,omitempty"`
	Y        float64  `json:"y,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	ScaleX   float64  `json:"scaleX,omitempty"`
	ScaleY   float64  `json:"scaleY,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Duration float64  `json:"duration,omitempty"`
	Stagger  float64  `json:"stagger,omitempty"`
	Ease     string   `json:"ease,omitempty"`
	Class    string   `json:"className,omitempty"`
	Media    string   `json:"media,omitempty"`
	Extra    int      `json:"extraScroll,omitempty"`
}

// Plan is the serialized effect list.
type Plan struct {
	Effects []Effect `json:"effects"`
}

// Planner is the Animator that writes the plan into the document.
type Planner struct{}

// Init implements Animator. A second call replaces the previous plan.
func (Planner) Init(doc *goquery.Document) {
	plan := Build(doc)
	data, err := json.Marshal(plan)
	if err != nil {
		return
	}
	doc.Find("#" + PlanID).Remove()

	// json.Marshal escapes <, > and &, so the payload cannot close the script.
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr: []html.Attribute{
			{Key: "type", Val: "application/json"},
			{Key: "id", Val: PlanID},
		},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: string(data)})
	doc.Find("body").AppendNodes(script)
}

func zero() *float64 {
	v := 0.0
	return &v
}

// tagger assigns stable data-motion ids in document order.
type tagger struct {
	next int
}

func (t *tagger) id(s *goquery.Selection) string {
	if v, ok := s.Attr(TargetAttr); ok {
		return v
	}
	t.next++
	v := "m" + strconv.Itoa(t.next)
	s.SetAttr(TargetAttr, v)
	return v
}

func (t *tagger) ids(s *goquery.Selection) []string {
	var out []string
	s.Each(func(_ int, el *goquery.Selection) {
		out = append(out, t.id(el))
	})
	return out
}

// Build derives the plan from the document. Existing data-motion ids are
// cleared first so the numbering is stable across calls.
func Build(doc *goquery.Document) Plan {
	doc.Find("[" + TargetAttr + "]").RemoveAttr(TargetAttr)
	t := &tagger{}
	var effects []Effect

	doc.Find(".tile").Each(func(_ int, tile *goquery.Selection) {
		id := t.id(tile)
		effects = append(effects, Effect{Kind: Reveal, Targets: []string{id}, Trigger: id,
			Start: "top 80%", Once: true, Y: 14, Opacity: zero(), Duration: 0.6, Ease: "power2.out"})
	})

	doc.Find(".section").Each(func(_ int, section *goquery.Selection) {
		trigger := t.id(section)
		heads := section.Find(".section__title, .section__desc")
		if heads.Length() > 0 {
			effects = append(effects, Effect{Kind: Reveal, Targets: t.ids(heads), Trigger: trigger,
				Start: "top 78%", Once: true, Y: 14, Opacity: zero(), Duration: 0.7, Ease: "power2.out", Stagger: 0.08})
		}
		cards := section.Find(".card, .timelineCard")
		if cards.Length() > 0 {
			effects = append(effects, Effect{Kind: Reveal, Targets: t.ids(cards), Trigger: trigger,
				Start: "top 72%", Once: true, Y: 16, Opacity: zero(), Duration: 0.7, Ease: "power2.out", Stagger: 0.08})
		}
		if section.HasClass("section--featured") {
			if featured := section.Find(`[data-anim="featured"]`).First(); featured.Length() > 0 {
				effects = append(effects, Effect{Kind: Reveal, Targets: []string{t.id(featured)}, Trigger: trigger,
					Start: "top 72%", Once: true, Y: 18, Opacity: zero(), Duration: 0.9, Ease: "power2.out"})
			}
		}
	})

	doc.Find(".divider").Each(func(_ int, d *goquery.Selection) {
		id := t.id(d)
		effects = append(effects, Effect{Kind: Reveal, Targets: []string{id}, Trigger: id,
			Start: "top 90%", Once: true, ScaleX: 0.92, Opacity: zero(), Duration: 0.6, Ease: "power2.out"})
	})

	effects = append(effects, paperEffects(doc, t)...)

	doc.Find(".timelineCard").Each(func(_ int, card *goquery.Selection) {
		id := t.id(card)
		effects = append(effects, Effect{Kind: Highlight, Targets: []string{id}, Trigger: id,
			Start: "top 70%", End: "bottom 40%", Class: "is-current"})
	})

	return Plan{Effects: effects}
}

func paperEffects(doc *goquery.Document, t *tagger) []Effect {
	research := doc.Find("#research").First()
	paper := research.Find(".paper").First()
	if research.Length() == 0 || paper.Length() == 0 {
		return nil
	}
	var effects []Effect
	paperID := t.id(paper)

	if bar := paper.Find(".paperProgress__bar").First(); bar.Length() > 0 {
		effects = append(effects, Effect{Kind: Scrub, Targets: []string{t.id(bar)}, Trigger: paperID,
			Start: "top 25%", End: "bottom 25%", ScaleY: 1, Ease: "none"})
	}
	if hint := paper.Find(".paperHint").First(); hint.Length() > 0 {
		effects = append(effects, Effect{Kind: FadeOut, Targets: []string{t.id(hint)}, Trigger: paperID,
			Start: "top 25%", End: "top 10%", Opacity: zero(), Duration: 0.4, Ease: "power1.out"})
	}

	steps := paper.Find(".paperSection")
	steps.Each(func(_ int, step *goquery.Selection) {
		id := t.id(step)
		effects = append(effects,
			Effect{Kind: Reveal, Targets: []string{id}, Trigger: id,
				Start: "top 78%", Once: true, Y: 10, Opacity: zero(), Duration: 0.55, Ease: "power2.out"},
			Effect{Kind: Toggle, Targets: []string{id}, Trigger: id,
				Start: "top 55%", End: "bottom 55%", Class: "is-active"})
	})

	paper.Find(`[data-anim="figure"]`).Each(func(_ int, fig *goquery.Selection) {
		id := t.id(fig)
		effects = append(effects, Effect{Kind: Reveal, Targets: []string{id}, Trigger: id,
			Start: "top 78%", Once: true, Y: 12, Scale: 0.985, Opacity: zero(), Duration: 0.6, Ease: "power2.out"})
	})

	if main := research.Find(".featured__main").First(); main.Length() > 0 {
		effects = append(effects, Effect{Kind: Pin, Targets: []string{t.id(main)}, Trigger: t.id(research),
			Start: "top 14%", Media: PinMedia, Extra: PinScroll(steps.Length())})
	}
	return effects
}

// PinScroll is the extra scroll distance while the featured paper is pinned.
func PinScroll(steps int) int {
	return int(math.Max(PinMinScroll, float64(steps*PinStepScroll)))
}
