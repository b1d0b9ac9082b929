package overlay

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func newDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><div id="app"></div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestModalEnsureIsIdempotent(t *testing.T) {
	doc := newDoc(t)
	m := NewModal(doc)
	if m.Exists() {
		t.Fatal("modal should be created lazily")
	}
	m.Open(ImagePayload{Src: "/a.png", Alt: "A", Caption: "first"})
	m.Open(ImagePayload{Src: "/b.png", Caption: "second"})

	if n := doc.Find("#" + ModalID).Length(); n != 1 {
		t.Fatalf("modal nodes = %d, want 1", n)
	}
	if got := doc.Find(".modal__img").AttrOr("src", ""); got != "/b.png" {
		t.Errorf("src = %q, want replaced image", got)
	}
	if got := doc.Find(".modal__img").AttrOr("alt", "x"); got != "" {
		t.Errorf("alt = %q, want empty", got)
	}
	if got := doc.Find(".modal__caption").Text(); got != "second" {
		t.Errorf("caption = %q", got)
	}
	if !m.IsOpen() {
		t.Error("modal should be open")
	}
}

func TestModalClose(t *testing.T) {
	doc := newDoc(t)
	m := NewModal(doc)
	m.Close()
	if m.Exists() {
		t.Error("Close must not create the modal")
	}
	m.Open(ImagePayload{Src: "/a.png"})
	m.Close()
	if m.IsOpen() {
		t.Error("modal still open after Close")
	}
	if doc.Find("#imgModal [data-close=true]").Length() != 2 {
		t.Error("backdrop and button should both carry the close marker")
	}
}

func TestDrawerOpen(t *testing.T) {
	doc := newDoc(t)
	d := NewDrawer(doc)
	d.Open(DrawerPayload{HTML: `<p class="x">body</p>`})

	if got := doc.Find("#drawerTitle").Text(); got != DefaultDrawerTitle {
		t.Errorf("title = %q", got)
	}
	if doc.Find("#drawerContent p.x").Length() != 1 {
		t.Error("drawer body not inserted")
	}

	d.Open(DrawerPayload{Title: "<Case>", HTML: "<p>next</p>"})
	if got := doc.Find("#drawerTitle").Text(); got != "<Case>" {
		t.Errorf("title = %q", got)
	}
	if doc.Find("#drawerContent p.x").Length() != 0 {
		t.Error("drawer content should be replaced")
	}
	if doc.Find("#"+DrawerID).Length() != 1 || !d.IsOpen() {
		t.Error("expected a single open drawer")
	}
	html, _ := doc.Html()
	if strings.Contains(html, "<Case>") {
		t.Error("drawer title must be escaped in markup")
	}
}

func TestWidgetsAreIndependent(t *testing.T) {
	doc := newDoc(t)
	m, d := NewModal(doc), NewDrawer(doc)
	m.Open(ImagePayload{Src: "/a.png"})
	d.Open(DrawerPayload{Title: "T"})
	m.Close()
	if m.IsOpen() || !d.IsOpen() {
		t.Error("closing the modal must not affect the drawer")
	}
	var _ Widget = m
	var _ Widget = d
}
