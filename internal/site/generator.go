// Package site writes the static export of the portfolio and holds the
// stylesheet and client script shipped with every page.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/view"
)

// Output file names next to the pages.
const (
	StyleFile   = "style.css"
	ScriptFile  = "client.js"
	ContentFile = "content.json"
	AssetsDir   = "assets"
)

// Generator builds the static site.
type Generator struct {
	// Assembler renders the pages. Generate switches it to static links and
	// sets its BuildID and Source.
	Assembler *page.Assembler
	Source    content.Source
	Assets    assets.Config
	OutputDir string
	Reporter  progress.Reporter
	Log       *zap.Logger
}

// Result summarizes a build.
type Result struct {
	Pages   []string
	Assets  int
	BuildID string
	// LoadErr is the content load error. Pages were still written with their
	// empty states.
	LoadErr error
}

// Pages lists the views written by Generate, dashboard first.
func Pages() []view.Page {
	return append([]view.Page{view.Dashboard}, view.Secondary...)
}

// export is one written page: its file name and the URL it is rendered for.
type export struct {
	file string
	url  *url.URL
}

// exports lists every page file: one per view, then the classic layout.
func exports() []export {
	var out []export
	for _, p := range Pages() {
		out = append(out, export{file: p.File(), url: &url.URL{Path: "/" + p.File()}})
	}
	return append(out, export{file: view.ClassicFile, url: &url.URL{Path: "/" + view.ClassicFile}})
}

// Generate writes every view and the classic page plus style.css, client.js, content.json and the
// selected assets into OutputDir. Errors writing one page do not stop the
// others; they are combined in the returned error.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.Assembler == nil || g.Assembler.Renderer == nil {
		return nil, errors.New("generator has no assembler")
	}
	log := g.Log
	if log == nil {
		log = zap.NewNop()
	}
	rpt := g.Reporter
	if rpt == nil {
		rpt = progress.Nop{}
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	files, err := assets.Walk(g.Assets)
	if err != nil {
		return nil, err
	}

	res := &Result{Assets: len(files)}
	var snap *content.MemorySource
	if g.Source == nil {
		snap = &content.MemorySource{Err: errors.New("no content source configured")}
	} else {
		snap = content.Snapshot(ctx, g.Source)
	}
	if snap.Err != nil {
		res.LoadErr = snap.Err
		log.Warn("content not loaded, writing empty pages", zap.String("source", snap.Name), zap.Error(snap.Err))
	}

	res.BuildID = assets.Fingerprint(files, snap.Data, []byte(StyleSheet), []byte(ClientScript))
	a := *g.Assembler
	a.Static = true
	a.Source = snap
	a.BuildID = res.BuildID
	a.ReloadURL = ""

	pages := exports()
	rpt.Start(len(pages))
	var errs error
	for i, e := range pages {
		name := e.file
		if err := g.writePage(ctx, &a, e); err != nil {
			errs = multierr.Append(errs, err)
		} else {
			res.Pages = append(res.Pages, name)
			log.Debug("page written", zap.String("file", name))
		}
		rpt.Update(i+1, name)
	}
	rpt.Finish()
	// Layout errors are the same for every page; stop before writing the rest.
	if len(res.Pages) == 0 && errs != nil {
		return res, errs
	}

	errs = multierr.Append(errs, g.writeFile(StyleFile, []byte(StyleSheet)))
	errs = multierr.Append(errs, g.writeFile(ScriptFile, []byte(ClientScript)))
	if snap.Data != nil {
		errs = multierr.Append(errs, g.writeFile(ContentFile, snap.Data))
	}
	// Static hosts such as GitHub Pages skip underscore paths unless told not to.
	errs = multierr.Append(errs, g.writeFile(".nojekyll", nil))
	if err := assets.Copy(files, filepath.Join(g.OutputDir, AssetsDir)); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("copying assets: %w", err))
	}

	log.Info("site built",
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(res.Pages)),
		zap.Int("assets", res.Assets),
		zap.String("build", res.BuildID))
	return res, errs
}

func (g *Generator) writePage(ctx context.Context, a *page.Assembler, e export) error {
	pg, err := a.Assemble(ctx, e.url)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", e.file, err)
	}
	f, err := os.Create(filepath.Join(g.OutputDir, e.file))
	if err != nil {
		return fmt.Errorf("creating %s: %w", e.file, err)
	}
	if err := pg.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", e.file, err)
	}
	return f.Close()
}

func (g *Generator) writeFile(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
