// Package delegate dispatches document-level clicks and key presses to the
// overlays based on marker attributes found on the clicked element or its
// ancestors.
package delegate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/overlay"
	"github.com/ziadkadry99/folio/internal/render"
)

// Marker attributes read by the router.
const (
	AttrImage     = "data-img"
	AttrAlt       = "data-alt"
	AttrCaption   = "data-caption"
	AttrDrawer    = "data-drawer-kind"
	AttrCaseIndex = "data-case-index"
	AttrCases     = "data-cases"
	AttrPieSlice  = "data-pie-slice"
	AttrPie       = "data-pie"
)

const (
	classActive = "is-active"
	classDim    = "is-dim"
)

// Router routes interactions for one document.
type Router struct {
	Doc      *goquery.Document
	Modal    *overlay.Modal
	Drawer   *overlay.Drawer
	Renderer *render.Renderer
	Log      *zap.Logger
}

// New returns a Router with fresh overlays bound to doc.
func New(doc *goquery.Document, r *render.Renderer, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		Doc:      doc,
		Modal:    overlay.NewModal(doc),
		Drawer:   overlay.NewDrawer(doc),
		Renderer: r,
		Log:      log,
	}
}

// Click handles a click on target. It reports whether any marker handled
// the click; clicks without a marker are ignored.
func (rt *Router) Click(target *goquery.Selection) bool {
	if target == nil || target.Length() == 0 {
		return false
	}
	target = target.First()

	if el := target.Closest(`[` + overlay.CloseAttr + `="true"]`); el.Length() > 0 {
		switch {
		case el.Closest("#"+overlay.ModalID).Length() > 0:
			rt.Modal.Close()
			return true
		case el.Closest("#"+overlay.DrawerID).Length() > 0:
			rt.Drawer.Close()
			return true
		}
	}
	if el := target.Closest("[" + AttrImage + "]"); el.Length() > 0 {
		return rt.openImage(el)
	}
	if el := target.Closest("[" + AttrDrawer + "]"); el.Length() > 0 {
		return rt.openCase(el)
	}
	if el := target.Closest("[" + AttrPieSlice + "]"); el.Length() > 0 {
		return rt.focusSlice(el)
	}
	return false
}

// KeyDown handles a key press. Escape closes every overlay that exists.
func (rt *Router) KeyDown(key string) bool {
	if key != "Escape" {
		return false
	}
	handled := false
	for _, w := range []overlay.Widget{rt.Modal, rt.Drawer} {
		if w.Exists() {
			w.Close()
			handled = true
		}
	}
	return handled
}

func (rt *Router) openImage(el *goquery.Selection) bool {
	src := strings.TrimSpace(el.AttrOr(AttrImage, ""))
	if src == "" {
		return false
	}
	rt.Modal.Open(overlay.ImagePayload{
		Src:     src,
		Alt:     el.AttrOr(AttrAlt, ""),
		Caption: el.AttrOr(AttrCaption, ""),
	})
	return true
}

func (rt *Router) openCase(el *goquery.Selection) bool {
	idx, err := strconv.Atoi(el.AttrOr(AttrCaseIndex, ""))
	if err != nil {
		rt.Log.Debug("ignoring drawer trigger without index", zap.Error(err))
		return false
	}
	holder := el.Closest("[" + AttrCases + "]")
	if holder.Length() == 0 {
		return false
	}
	var cases []render.Case
	if err := json.Unmarshal([]byte(holder.AttrOr(AttrCases, "")), &cases); err != nil {
		rt.Log.Debug("ignoring malformed case payload", zap.Error(err))
		return false
	}
	for _, c := range cases {
		if c.Index != idx {
			continue
		}
		rt.Drawer.Open(overlay.DrawerPayload{
			Title: c.DrawerTitle(),
			HTML:  rt.Renderer.CaseDetail(c),
		})
		return true
	}
	return false
}

// focusSlice emphasizes one slice of its chart and dims the rest. Choosing the
// active slice again resets the chart.
func (rt *Router) focusSlice(el *goquery.Selection) bool {
	chart := el.Closest("[" + AttrPie + "]")
	if chart.Length() == 0 {
		return false
	}
	idx := el.AttrOr(AttrPieSlice, "")
	entries := chart.Find("[" + AttrPieSlice + "]")
	active := chart.Find("["+AttrPieSlice+"]."+classActive).First().AttrOr(AttrPieSlice, "")

	entries.RemoveClass(classActive + " " + classDim)
	if active == idx {
		return true
	}
	entries.Each(func(_ int, e *goquery.Selection) {
		if e.AttrOr(AttrPieSlice, "") == idx {
			e.AddClass(classActive)
		} else {
			e.AddClass(classDim)
		}
	})
	return true
}

// Step is one replayed interaction.
type Step struct {
	Action string
	Arg    string
}

func (s Step) String() string { return s.Action + " " + s.Arg }

// ParseScript parses lines of the form "click <selector>" or "key <name>".
// Blank lines and lines starting with # are skipped.
func ParseScript(lines []string) ([]Step, error) {
	var steps []Step
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		action, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch action {
		case "click", "key":
		default:
			return nil, fmt.Errorf("line %d: unknown action %q", i+1, action)
		}
		if arg == "" {
			return nil, fmt.Errorf("line %d: %s needs an argument", i+1, action)
		}
		steps = append(steps, Step{Action: action, Arg: arg})
	}
	return steps, nil
}

// Replay runs steps in order. A click whose selector matches nothing is an
// error; a click that no marker handles is not.
func (rt *Router) Replay(steps []Step) error {
	for i, s := range steps {
		switch s.Action {
		case "click":
			target := rt.Doc.Find(s.Arg).First()
			if target.Length() == 0 {
				return fmt.Errorf("step %d (%s): no element matches", i+1, s)
			}
			handled := rt.Click(target)
			rt.Log.Debug("replayed click", zap.String("selector", s.Arg), zap.Bool("handled", handled))
		case "key":
			handled := rt.KeyDown(s.Arg)
			rt.Log.Debug("replayed key", zap.String("key", s.Arg), zap.Bool("handled", handled))
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, s.Action)
		}
	}
	return nil
}
