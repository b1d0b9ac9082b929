package site

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
	"github.com/ziadkadry99/folio/internal/motion"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/render"
)

const testContent = `{
  "site": {"name": "Ada Lane", "title": "Ada Lane Portfolio"},
  "capabilities": {
    "research": {"featured": {"title": "Causal paper", "abstract": "Abstract here"}},
    "visual": {"gallery": [{"title": "Poster", "image": "assets/gallery/poster.png"}]}
  }
}`

func newGenerator(t *testing.T, src content.Source, basePath string) (*Generator, string) {
	t.Helper()
	root := t.TempDir()
	assetsDir := filepath.Join(root, "assets")
	writeTestFile(t, filepath.Join(assetsDir, "gallery", "poster.png"), "png")
	writeTestFile(t, filepath.Join(assetsDir, "gallery", "poster.psd"), "psd")
	out := filepath.Join(root, "dist")

	return &Generator{
		Assembler: &page.Assembler{
			Renderer: render.New(links.NewBase("", basePath)),
			Animator: motion.Planner{},
			Log:      zaptest.NewLogger(t),
		},
		Source:    src,
		Assets:    assets.Config{RootDir: assetsDir, Exclude: []string{"*.psd"}},
		OutputDir: out,
		Log:       zaptest.NewLogger(t),
	}, out
}

func contentFile(t *testing.T) content.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	writeTestFile(t, path, testContent)
	return &content.FileSource{Path: path}
}

func TestFullSiteGeneration(t *testing.T) {
	gen, out := newGenerator(t, contentFile(t), "/portfolio/")
	var buf bytes.Buffer
	gen.Reporter = &progress.CIReporter{Out: &buf}

	res, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if res.LoadErr != nil {
		t.Errorf("unexpected load error: %v", res.LoadErr)
	}
	if len(res.Pages) != 7 {
		t.Errorf("pages = %v, want 7", res.Pages)
	}
	if res.Assets != 1 {
		t.Errorf("assets = %d, want 1", res.Assets)
	}
	if !strings.Contains(buf.String(), "[7/7]") {
		t.Errorf("progress output = %q", buf.String())
	}

	expectedFiles := []string{
		"index.html",
		"research.html",
		"ai.html",
		"pm.html",
		"content.html",
		"visual.html",
		"classic.html",
		StyleFile,
		ScriptFile,
		ContentFile,
		".nojekyll",
		"assets/gallery/poster.png",
	}
	for _, f := range expectedFiles {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); os.IsNotExist(err) {
			t.Errorf("expected file %s does not exist", f)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "gallery", "poster.psd")); err == nil {
		t.Error("excluded asset was copied")
	}

	index := readOutput(t, out, "index.html")
	if !strings.Contains(index, "<title>Ada Lane Portfolio</title>") {
		t.Error("index.html should carry the site title")
	}
	if !strings.Contains(index, `href="research.html"`) {
		t.Error("static pages should link to exported files")
	}
	if !strings.Contains(index, `/portfolio/style.css?v=`+res.BuildID) {
		t.Error("style link should be base-resolved and fingerprinted")
	}
	if strings.Contains(index, "data-reload") {
		t.Error("static pages must not ask for live reload")
	}

	research := readOutput(t, out, "research.html")
	if !strings.Contains(research, "Abstract here") || !strings.Contains(research, `id="researchCases"`) {
		t.Error("research.html should contain the paper and the case list")
	}
	if !strings.Contains(research, `id="motionPlan"`) {
		t.Error("research.html should contain the motion plan")
	}

	visual := readOutput(t, out, "visual.html")
	if !strings.Contains(visual, `data-img="/portfolio/assets/gallery/poster.png"`) {
		t.Error("gallery image should resolve against the base path")
	}
}

func TestStaticClassicPage(t *testing.T) {
	gen, out := newGenerator(t, contentFile(t), "/portfolio/")
	if _, err := gen.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	classic := readOutput(t, out, "classic.html")
	for _, want := range []string{
		`data-layout="classic"`,
		`id="researchFeatured"`,
		"Abstract here",
		`id="aiGrid"`,
		`id="visualGrid"`,
		`class="modeLink" href="index.html"`,
		`class="modeLink is-active" href="classic.html"`,
	} {
		if !strings.Contains(classic, want) {
			t.Errorf("classic.html missing %s", want)
		}
	}
	if strings.Contains(classic, `id="bento"`) {
		t.Error("classic page should not contain the dashboard tiles")
	}
	index := readOutput(t, out, "index.html")
	if !strings.Contains(index, `class="modeLink" href="classic.html"`) {
		t.Error("dashboard should link to the classic page")
	}
}

func TestStaticHeroLinksToViews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeTestFile(t, path, `{
  "site": {"name": "Ada Lane"},
  "hero": {"cta": [
    {"href": "?page=research", "label": "Read the paper"},
    {"href": "#dashboard", "label": "Tiles"},
    {"href": "assets/cv.pdf", "label": "CV"}
  ]}
}`)
	gen, out := newGenerator(t, &content.FileSource{Path: path}, "/portfolio/")
	if _, err := gen.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	index := readOutput(t, out, "index.html")
	for _, want := range []string{
		`href="research.html">Read the paper</a>`,
		`href="index.html#dashboard">Tiles</a>`,
		`href="/portfolio/assets/cv.pdf">CV</a>`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %s", want)
		}
	}
	if strings.Contains(index, "?page=research") {
		t.Error("static pages should not link to query views")
	}
}

func TestGenerateWithFailedContent(t *testing.T) {
	src := &content.FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}
	gen, out := newGenerator(t, src, "/")

	res, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate should not fail on a content error: %v", err)
	}
	if res.LoadErr == nil {
		t.Error("LoadErr should be reported")
	}
	if len(res.Pages) != 7 {
		t.Errorf("pages = %d, want 7", len(res.Pages))
	}
	if !strings.Contains(readOutput(t, out, "ai.html"), "No content yet") {
		t.Error("pages should keep their empty states")
	}
	if _, err := os.Stat(filepath.Join(out, ContentFile)); err == nil {
		t.Error("content.json should not be written without content")
	}
}

func TestGenerateLayoutError(t *testing.T) {
	gen, _ := newGenerator(t, contentFile(t), "/")
	gen.Assembler.Layout = `<html><body><main></main></body></html>`

	res, err := gen.Generate(context.Background())
	if err == nil {
		t.Fatal("expected an error for a layout without #app")
	}
	if !strings.Contains(err.Error(), "index.html") || len(res.Pages) != 0 {
		t.Errorf("err = %v, pages = %v", err, res.Pages)
	}
}

func TestBuildIDStable(t *testing.T) {
	src := contentFile(t)
	gen, _ := newGenerator(t, src, "/")
	first, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := gen.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first.BuildID != second.BuildID {
		t.Errorf("build id changed between identical builds: %s vs %s", first.BuildID, second.BuildID)
	}
}

func TestClientScriptMatchesMarkers(t *testing.T) {
	for _, marker := range []string{"data-img", "data-drawer-kind", "data-case-index", "data-cases", "data-case-detail", "data-pie-slice", "motionPlan", "data-reload"} {
		if !strings.Contains(ClientScript, marker) {
			t.Errorf("client script does not handle %s", marker)
		}
	}
	for _, class := range []string{".modal--open", ".drawer--open", ".is-dim", ".is-current"} {
		if !strings.Contains(StyleSheet, class) {
			t.Errorf("stylesheet does not style %s", class)
		}
	}
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

// writeTestFile is a helper that creates a file with intermediate directories.
func writeTestFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
