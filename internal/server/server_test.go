package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap/zaptest"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/links"
	"github.com/ziadkadry99/folio/internal/motion"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/render"
)

func setupTestServer(t *testing.T, cfg Config, src content.Source) *Server {
	t.Helper()
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = t.TempDir()
	}
	a := &page.Assembler{
		Renderer: render.New(links.NewBase("", cfg.BasePath)),
		Source:   src,
		Animator: motion.Planner{},
		Log:      zaptest.NewLogger(t),
	}
	return New(cfg, a, zaptest.NewLogger(t))
}

func sampleSource(t *testing.T) content.Source {
	t.Helper()
	data, err := content.Encode(content.Sample("Ada Lane", ""))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return &content.FileSource{Path: path}
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	w := get(t, s, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q", body["status"])
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name     string
		allowAll bool
		origin   string
		want     string
	}{
		{"localhost allowed", false, "http://localhost:3000", "http://localhost:3000"},
		{"foreign origin rejected", false, "https://example.com", ""},
		{"allow all", true, "https://example.com", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupTestServer(t, Config{AllowAll: tt.allowAll}, sampleSource(t))
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			s.Router().ServeHTTP(w, req)
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPages(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	tests := []struct {
		target string
		view   string
		want   string
	}{
		{"/", "dashboard", `id="dashboard"`},
		{"/?page=research", "research", `id="researchCases"`},
		{"/?page=unknown", "dashboard", `id="dashboard"`},
		{"/research.html", "research", "A featured study"},
		{"/visual.html?lang=en", "visual", "A poster"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, s, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			body := w.Body.String()
			if !strings.Contains(body, `data-view="`+tt.view+`"`) {
				t.Errorf("page should render the %s view", tt.view)
			}
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if strings.Contains(body, "data-reload") {
				t.Error("pages should not ask for live reload unless enabled")
			}
		})
	}
}

func TestPageQueryLinks(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	body := get(t, s, "/?lang=en").Body.String()
	if !strings.Contains(body, `href="/?lang=en&amp;page=research"`) {
		t.Error("navigation should keep the query and set the page parameter")
	}
}

func TestClassicLayout(t *testing.T) {
	s := setupTestServer(t, Config{BasePath: "/portfolio/"}, sampleSource(t))
	for _, target := range []string{"/portfolio/?layout=classic", "/portfolio/classic.html", "/portfolio/?layout=classic&page=ai"} {
		body := get(t, s, target).Body.String()
		if !strings.Contains(body, `data-layout="classic"`) || !strings.Contains(body, `id="researchFeatured"`) {
			t.Errorf("%s: expected the classic page", target)
		}
		if !strings.Contains(body, `class="modeLink" href="/portfolio/`) {
			t.Errorf("%s: expected a link back to the dashboard layout", target)
		}
	}
	body := get(t, s, "/portfolio/").Body.String()
	if !strings.Contains(body, `href="/portfolio/?layout=classic"`) {
		t.Error("dashboard should offer the classic layout")
	}
	if !strings.Contains(body, `href="/portfolio/?page=research">Read the paper</a>`) {
		t.Error("hero links to views should keep the base path")
	}
}

func TestPageWithFailedContent(t *testing.T) {
	src := &content.FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}
	s := setupTestServer(t, Config{}, src)
	w := get(t, s, "/?page=ai")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No content yet") {
		t.Error("failed content should leave the empty states")
	}
}

func TestPageWithoutMount(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	s.assembler.Layout = `<html><body><main></main></body></html>`
	if w := get(t, s, "/"); w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestStyleAndScript(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	tests := []struct {
		target      string
		contentType string
		want        string
	}{
		{"/style.css", "text/css", ".drawer--open"},
		{"/client.js", "text/javascript", "data-drawer-kind"},
	}
	for _, tt := range tests {
		w := get(t, s, tt.target)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", tt.target, w.Code)
			continue
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), tt.contentType) {
			t.Errorf("%s: Content-Type = %q", tt.target, w.Header().Get("Content-Type"))
		}
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("%s: body missing %q", tt.target, tt.want)
		}
	}
}

func TestContentJSON(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	w := get(t, s, "/content.json")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	doc, err := content.Decode(w.Body.Bytes(), content.FormatJSON)
	if err != nil {
		t.Fatalf("served content does not decode: %v", err)
	}
	if doc.Site.Name != "Ada Lane" {
		t.Errorf("site name = %q", doc.Site.Name)
	}
}

func TestContentJSONErrors(t *testing.T) {
	missing := setupTestServer(t, Config{}, &content.FileSource{Path: filepath.Join(t.TempDir(), "nope.json")})
	if w := get(t, missing, "/content.json"); w.Code != http.StatusBadGateway {
		t.Errorf("missing file: status = %d, want 502", w.Code)
	}
	none := setupTestServer(t, Config{}, nil)
	if w := get(t, none, "/content.json"); w.Code != http.StatusNotFound {
		t.Errorf("no source: status = %d, want 404", w.Code)
	}
}

func TestBasePath(t *testing.T) {
	assetsDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assetsDir, "gallery"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assetsDir, "gallery", "poster.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := setupTestServer(t, Config{BasePath: "/portfolio/", AssetsDir: assetsDir}, sampleSource(t))

	w := get(t, s, "/portfolio/assets/gallery/poster.png")
	if w.Code != http.StatusOK || w.Body.String() != "png" {
		t.Errorf("asset: status = %d, body = %q", w.Code, w.Body.String())
	}
	w = get(t, s, "/portfolio/?page=visual")
	if w.Code != http.StatusOK {
		t.Fatalf("page: status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-img="/portfolio/assets/gallery/poster.png"`) {
		t.Error("gallery image should resolve under the base path")
	}
	if !strings.Contains(body, `/portfolio/style.css`) {
		t.Error("style link should resolve under the base path")
	}
	if w := get(t, s, "/style.css"); w.Code != http.StatusNotFound {
		t.Errorf("routes outside the base path: status = %d, want 404", w.Code)
	}
}

func TestPagesIgnoreConfiguredOrigin(t *testing.T) {
	a := &page.Assembler{
		Renderer: render.New(links.NewBase("https://me.github.io", "/portfolio/")),
		Source:   sampleSource(t),
		Log:      zaptest.NewLogger(t),
	}
	s := New(Config{BasePath: "/portfolio/", AssetsDir: t.TempDir()}, a, zaptest.NewLogger(t))

	body := get(t, s, "/portfolio/?page=visual").Body.String()
	for _, want := range []string{
		`href="/portfolio/style.css"`,
		`src="/portfolio/client.js"`,
		`data-img="/portfolio/assets/gallery/poster.png"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s", want)
		}
	}
	if strings.Contains(body, "me.github.io") {
		t.Error("served pages should not reference the production origin")
	}
	if a.Renderer.Base.Origin != "https://me.github.io" {
		t.Error("New should not modify the caller's renderer")
	}
}

func TestLivePagesCarryReloadURL(t *testing.T) {
	s := setupTestServer(t, Config{BasePath: "/portfolio/", Live: true}, sampleSource(t))
	body := get(t, s, "/portfolio/").Body.String()
	if !strings.Contains(body, `data-reload="/portfolio/ws/reload"`) {
		t.Error("live pages should point the client at the reload route")
	}
}

func TestHubBroadcast(t *testing.T) {
	s := setupTestServer(t, Config{Live: true}, sampleSource(t))
	ts := httptest.NewServer(s.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/" + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for s.Hub().Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.Hub().Broadcast()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(msg) != ReloadMessage {
		t.Errorf("message = %q, want %q", msg, ReloadMessage)
	}

	s.Hub().Close()
	if n := s.Hub().Len(); n != 0 {
		t.Errorf("clients after Close = %d", n)
	}
}

func TestReloadRouteOffByDefault(t *testing.T) {
	s := setupTestServer(t, Config{}, sampleSource(t))
	if s.Hub() != nil {
		t.Error("hub should be nil without live reload")
	}
	if w := get(t, s, "/"+ReloadPath); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestWatcherDebounce(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "content.json")
	sibling := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan struct{}, 10)
	w := &Watcher{
		Debounce: 50 * time.Millisecond,
		OnChange: func() { changes <- struct{}{} },
		Log:      zaptest.NewLogger(t),
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, target) }()

	// The watch is registered asynchronously; keep touching the file until
	// the first change arrives.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-changes:
			break wait
		case <-tick.C:
			os.WriteFile(target, []byte(`{"site":{}}`), 0o644)
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	// Drain anything queued by the touch loop.
	time.Sleep(150 * time.Millisecond)
	for len(changes) > 0 {
		<-changes
	}

	if err := os.WriteFile(sibling, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changes:
		t.Error("writes to other files in the directory should be ignored")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not stop after cancel")
	}
}

func TestShutdownWithoutStart(t *testing.T) {
	s := setupTestServer(t, Config{Live: true}, sampleSource(t))
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
