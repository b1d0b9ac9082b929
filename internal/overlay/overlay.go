// Package overlay implements the image preview modal and the side drawer over
// a parsed document. Each widget owns one node, created on first use and
// reused afterwards.
package overlay

import (
	"github.com/PuerkitoBio/goquery"
)

const (
	ModalID  = "imgModal"
	DrawerID = "sideDrawer"

	ModalOpenClass  = "modal--open"
	DrawerOpenClass = "drawer--open"

	// CloseAttr marks elements that close the overlay they sit in.
	CloseAttr = "data-close"
)

// DefaultDrawerTitle is shown when a drawer payload has no title.
const DefaultDrawerTitle = "Details"

const modalMarkup = `<div id="imgModal" class="modal">
  <div class="modal__backdrop" data-close="true" aria-hidden="true"></div>
  <div class="modal__panel" role="dialog" aria-modal="true" aria-label="Image preview">
    <button class="modal__close" type="button" aria-label="Close" data-close="true">Close</button>
    <img class="modal__img" alt="">
    <div class="modal__caption"></div>
  </div>
</div>`

const drawerMarkup = `<div id="sideDrawer" class="drawer">
  <div class="drawer__backdrop" data-close="true" aria-hidden="true"></div>
  <aside class="drawer__panel" role="dialog" aria-modal="true" aria-label="Details">
    <div class="drawer__top">
      <div class="drawer__title" id="drawerTitle">Details</div>
      <button class="drawer__close" type="button" aria-label="Close" data-close="true">Close</button>
    </div>
    <div class="drawer__content" id="drawerContent"></div>
  </aside>
</div>`

// Widget is the shared shape of both overlays.
type Widget interface {
	Ensure() *goquery.Selection
	Close()
	IsOpen() bool
	// Exists reports whether the node has been created.
	Exists() bool
}

type widget struct {
	doc       *goquery.Document
	id        string
	markup    string
	openClass string
}

// Ensure returns the widget node, appending it to <body> the first time.
func (w *widget) Ensure() *goquery.Selection {
	if sel := w.node(); sel.Length() > 0 {
		return sel
	}
	w.doc.Find("body").AppendHtml(w.markup)
	return w.node()
}

func (w *widget) node() *goquery.Selection {
	return w.doc.Find("#" + w.id).First()
}

func (w *widget) Exists() bool { return w.node().Length() > 0 }

// Close removes the open class. Closing a widget that does not exist is a
// no-op.
func (w *widget) Close() {
	w.node().RemoveClass(w.openClass)
}

// IsOpen reports whether the widget carries its open class.
func (w *widget) IsOpen() bool {
	return w.node().HasClass(w.openClass)
}

// Modal is the image preview overlay.
type Modal struct {
	widget
}

// NewModal returns the modal for doc. No node is created until Ensure or
// Open.
func NewModal(doc *goquery.Document) *Modal {
	return &Modal{widget{doc: doc, id: ModalID, markup: modalMarkup, openClass: ModalOpenClass}}
}

// ImagePayload is what an image trigger hands to the modal.
type ImagePayload struct {
	Src     string
	Alt     string
	Caption string
}

// Open shows the image, replacing any image already shown.
func (m *Modal) Open(p ImagePayload) {
	node := m.Ensure()
	node.Find(".modal__img").SetAttr("src", p.Src).SetAttr("alt", p.Alt)
	node.Find(".modal__caption").SetText(p.Caption)
	node.AddClass(m.openClass)
}

// Drawer is the side panel overlay.
type Drawer struct {
	widget
}

// NewDrawer returns the drawer for doc.
func NewDrawer(doc *goquery.Document) *Drawer {
	return &Drawer{widget{doc: doc, id: DrawerID, markup: drawerMarkup, openClass: DrawerOpenClass}}
}

// DrawerPayload is the drawer title and body. HTML is trusted markup built by
// the renderers.
type DrawerPayload struct {
	Title string
	HTML  string
}

// Open shows the payload, replacing any content already shown.
func (d *Drawer) Open(p DrawerPayload) {
	node := d.Ensure()
	title := p.Title
	if title == "" {
		title = DefaultDrawerTitle
	}
	node.Find("#drawerTitle").SetText(title)
	node.Find("#drawerContent").SetHtml(p.HTML)
	node.AddClass(d.openClass)
}
