package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/content"
)

// Sparkline geometry.
const (
	sparkWidth   = 220
	sparkHeight  = 56
	sparkPadding = 4
)

// Pie geometry, in viewBox units.
const (
	pieSize     = 120
	pieRadius   = 56
	pieIconDist = 0.62
	pieStart    = -90.0
)

// PaletteEntry is the color and icon glyph of one pie wedge.
type PaletteEntry struct {
	Color string
	Icon  string
}

// Palette is cycled by slice index.
var Palette = [5]PaletteEntry{
	{Color: "#c8553d", Icon: "◆"},
	{Color: "#2f6690", Icon: "●"},
	{Color: "#f2a541", Icon: "▲"},
	{Color: "#3a7d44", Icon: "■"},
	{Color: "#7d5ba6", Icon: "★"},
}

// Wedge is the computed geometry of one pie slice, in degrees.
type Wedge struct {
	Index int
	Start float64
	Sweep float64
}

// Wedges lays slices out clockwise from 12 o'clock in input order. Negative
// values count as zero. ok is false when the values do not sum to a positive
// total.
func Wedges(slices content.List[content.Slice]) (wedges []Wedge, ok bool) {
	var total float64
	for _, s := range slices {
		total += math.Max(0, float64(s.Value))
	}
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, false
	}
	start := pieStart
	for i, s := range slices {
		sweep := 360 * math.Max(0, float64(s.Value)) / total
		wedges = append(wedges, Wedge{Index: i, Start: start, Sweep: sweep})
		start += sweep
	}
	return wedges, true
}

// Pie renders a pie chart with icon glyphs and a legend. Legend entries and
// wedges share a data-pie-slice index so the router can focus a slice. A
// chart whose values sum to zero renders the placeholder card.
func Pie(spec *content.PieChart) string {
	if spec == nil {
		return Empty()
	}
	wedges, ok := Wedges(spec.Slices)
	if !ok {
		return Empty()
	}

	var b strings.Builder
	b.WriteString(`<figure class="pie" data-pie="true">`)
	if spec.Title.Trim() != "" {
		fmt.Fprintf(&b, `<figcaption class="pie__title">%s</figcaption>`, Escape(spec.Title))
	}
	fmt.Fprintf(&b, `<svg class="pie__chart" viewBox="0 0 %d %d" role="img">`, pieSize, pieSize)
	for _, w := range wedges {
		p := Palette[w.Index%len(Palette)]
		fmt.Fprintf(&b, `<g class="pie__slice" data-pie-slice="%d" data-start="%s" data-sweep="%s">`,
			w.Index, fixed2(w.Start), fixed2(w.Sweep))
		switch {
		case w.Sweep >= 360:
			fmt.Fprintf(&b, `<circle class="pie__wedge" cx="%d" cy="%d" r="%d" fill="%s"></circle>`,
				pieSize/2, pieSize/2, pieRadius, p.Color)
		case w.Sweep > 0:
			fmt.Fprintf(&b, `<path class="pie__wedge" d="%s" fill="%s"></path>`, wedgePath(w), p.Color)
		}
		if w.Sweep > 0 {
			x, y := polar(w.Start+w.Sweep/2, pieRadius*pieIconDist)
			if w.Sweep >= 360 {
				x, y = pieSize/2, pieSize/2
			}
			fmt.Fprintf(&b, `<text class="pie__icon" x="%s" y="%s" text-anchor="middle" dominant-baseline="central">%s</text>`,
				fixed2(x), fixed2(y), p.Icon)
		}
		b.WriteString(`</g>`)
	}
	b.WriteString(`</svg>`)

	b.WriteString(`<ul class="pie__legend">`)
	for i, s := range spec.Slices {
		p := Palette[i%len(Palette)]
		fmt.Fprintf(&b, `<li class="pie__legendItem" data-pie-slice="%d">`, i)
		fmt.Fprintf(&b, `<span class="pie__swatch" style="background:%s">%s</span>`, p.Color, p.Icon)
		fmt.Fprintf(&b, `<span class="pie__label">%s</span>`, Escape(s.Label))
		value := strconv.FormatFloat(float64(s.Value), 'f', -1, 64)
		if s.Unit.Trim() != "" {
			value += " " + s.Unit.Trim()
		}
		fmt.Fprintf(&b, `<span class="pie__value">%s</span>`, Escape(value))
		if s.Note.Trim() != "" {
			fmt.Fprintf(&b, `<span class="pie__note">%s</span>`, Escape(s.Note))
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></figure>`)
	return b.String()
}

func wedgePath(w Wedge) string {
	c := float64(pieSize) / 2
	x0, y0 := polar(w.Start, pieRadius)
	x1, y1 := polar(w.Start+w.Sweep, pieRadius)
	large := 0
	if w.Sweep > 180 {
		large = 1
	}
	return fmt.Sprintf("M%s,%s L%s,%s A%d,%d 0 %d 1 %s,%s Z",
		fixed2(c), fixed2(c), fixed2(x0), fixed2(y0), pieRadius, pieRadius, large, fixed2(x1), fixed2(y1))
}

// polar returns the point at angle deg (0 is 3 o'clock, clockwise) and
// distance r from the chart center.
func polar(deg, r float64) (float64, float64) {
	rad := deg * math.Pi / 180
	c := float64(pieSize) / 2
	return c + r*math.Cos(rad), c + r*math.Sin(rad)
}

// Sparkline renders a min/max scaled polyline. Fewer than two points render
// nothing.
func Sparkline(points []float64) string {
	if len(points) < 2 {
		return ""
	}
	lo, hi := points[0], points[0]
	for _, v := range points[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := math.Max(1e-6, hi-lo)
	step := float64(sparkWidth) / float64(len(points)-1)

	coords := make([]string, len(points))
	for i, v := range points {
		x := float64(i) * step
		y := sparkHeight - ((v-lo)/span)*(sparkHeight-2*sparkPadding) - sparkPadding
		coords[i] = fixed2(x) + "," + fixed2(y)
	}
	return fmt.Sprintf(`<svg class="spark" width="%d" height="%d" viewBox="0 0 %d %d" aria-hidden="true"><polyline class="spark__line" fill="none" points="%s"></polyline></svg>`,
		sparkWidth, sparkHeight, sparkWidth, sparkHeight, strings.Join(coords, " "))
}
