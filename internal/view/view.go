// Package view picks the page to render from the request URL and builds the
// navigation links between pages.
package view

import (
	"net/url"
	"path"
	"strings"
)

// Page identifies one of the body layouts.
type Page string

const (
	Dashboard Page = ""
	Research  Page = "research"
	AI        Page = "ai"
	PM        Page = "pm"
	Content   Page = "content"
	Visual    Page = "visual"
)

// Param is the query parameter carrying the page.
const Param = "page"

// DashboardAnchor is the fragment used by links back to the dashboard.
const DashboardAnchor = "dashboard"

// Layout selects between the dashboard with its secondary pages and the
// classic long page.
type Layout string

const (
	DashboardLayout Layout = "dashboard"
	Classic         Layout = "classic"
)

// LayoutParam is the query parameter carrying the layout.
const LayoutParam = "layout"

// ClassicFile is the static export file name of the classic layout.
const ClassicFile = "classic.html"

// Secondary lists the non-default pages in navigation order.
var Secondary = []Page{Research, AI, PM, Content, Visual}

// Valid reports whether p is a member of the secondary page set.
func (p Page) Valid() bool {
	switch p {
	case Research, AI, PM, Content, Visual:
		return true
	}
	return false
}

// IsDashboard reports whether p is the default view.
func (p Page) IsDashboard() bool { return !p.Valid() }

// String returns "dashboard" for the default page.
func (p Page) String() string {
	if p.IsDashboard() {
		return "dashboard"
	}
	return string(p)
}

// File is the static export file name for the page.
func (p Page) File() string {
	if p.IsDashboard() {
		return "index.html"
	}
	return string(p) + ".html"
}

// Resolve returns the page named by the query parameter, or Dashboard for any
// other value, including an absent or empty one. A static export file name in
// the path ("research.html") is honoured when no query parameter is present.
func Resolve(u *url.URL) Page {
	if u == nil {
		return Dashboard
	}
	q := u.Query()
	if q.Has(Param) {
		if p := Page(q.Get(Param)); p.Valid() {
			return p
		}
		return Dashboard
	}
	base := path.Base(u.Path)
	if p := Page(strings.TrimSuffix(base, ".html")); strings.HasSuffix(base, ".html") && p.Valid() {
		return p
	}
	return Dashboard
}

// ResolveLayout returns Classic for layout=classic, and for the classic.html
// export when neither the layout nor the page parameter is present. Anything
// else is the dashboard layout.
func ResolveLayout(u *url.URL) Layout {
	if u == nil {
		return DashboardLayout
	}
	q := u.Query()
	if q.Has(LayoutParam) {
		if Layout(q.Get(LayoutParam)) == Classic {
			return Classic
		}
		return DashboardLayout
	}
	if !q.Has(Param) && path.Base(u.Path) == ClassicFile {
		return Classic
	}
	return DashboardLayout
}

// Linker derives navigation links from the current URL. All page-to-page links
// go through ToPage and ToDashboard so query handling stays in one place.
type Linker struct {
	Current *url.URL
	// Static produces file links for a static export instead of query links.
	Static bool
}

// NewLinker returns a Linker for the given URL.
func NewLinker(current *url.URL, static bool) Linker {
	return Linker{Current: current, Static: static}
}

func (l Linker) current() url.URL {
	if l.Current == nil {
		return url.URL{Path: "/"}
	}
	return *l.Current
}

// ToPage returns the current URL with the page parameter set to p and the
// fragment cleared.
func (l Linker) ToPage(p Page) string {
	if l.Static {
		return p.File()
	}
	u := l.current()
	q := u.Query()
	q.Del(LayoutParam)
	if p.IsDashboard() {
		dropExportFile(&u)
		q.Del(Param)
	} else {
		q.Set(Param, string(p))
	}
	u.RawQuery = q.Encode()
	u.Fragment = ""
	u.RawFragment = ""
	return relative(u)
}

// ToDashboard returns the current URL with the page parameter removed and the
// dashboard anchor as fragment.
func (l Linker) ToDashboard() string {
	if l.Static {
		return Dashboard.File() + "#" + DashboardAnchor
	}
	u := l.current()
	dropExportFile(&u)
	q := u.Query()
	q.Del(Param)
	q.Del(LayoutParam)
	u.RawQuery = q.Encode()
	u.Fragment = DashboardAnchor
	u.RawFragment = ""
	return relative(u)
}

// ToLayout returns the current URL switched to layout. Other parameters and
// the fragment are kept.
func (l Linker) ToLayout(layout Layout) string {
	if l.Static {
		if layout == Classic {
			return ClassicFile
		}
		return Dashboard.File()
	}
	u := l.current()
	q := u.Query()
	if layout == Classic {
		q.Set(LayoutParam, string(Classic))
	} else {
		dropExportFile(&u)
		q.Del(LayoutParam)
	}
	u.RawQuery = q.Encode()
	return relative(u)
}

// ViewHref maps an href that only selects a view ("?page=research",
// "?layout=classic", "#dashboard") to the link the Linker builds for it. ok
// is false for any other href.
func (l Linker) ViewHref(href string) (link string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path != "" || u.Opaque != "" {
		return "", false
	}
	q := u.Query()
	for k := range q {
		if k != Param && k != LayoutParam {
			return "", false
		}
	}
	switch {
	case q.Has(LayoutParam):
		return withFragment(l.ToLayout(Layout(q.Get(LayoutParam))), u.Fragment), true
	case q.Has(Param):
		return withFragment(l.ToPage(Page(q.Get(Param))), u.Fragment), true
	case u.RawQuery == "" && u.Fragment == DashboardAnchor:
		return l.ToDashboard(), true
	}
	return "", false
}

func withFragment(href, fragment string) string {
	if fragment == "" {
		return href
	}
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	return href + "#" + url.PathEscape(fragment)
}

// dropExportFile turns "/dir/research.html" into "/dir/" so the path no
// longer selects a view.
func dropExportFile(u *url.URL) {
	if !strings.HasSuffix(u.Path, ".html") {
		return
	}
	dir := path.Dir(u.Path)
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	u.Path = dir
	u.RawPath = ""
}

// relative drops scheme and host so links stay on the serving origin.
func relative(u url.URL) string {
	u.Scheme = ""
	u.Host = ""
	u.User = nil
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}
