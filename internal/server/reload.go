package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ReloadMessage is sent to every client when watched files change.
const ReloadMessage = "reload"

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 300 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks live reload connections.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     *zap.Logger
}

// NewHub returns an empty hub.
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{clients: make(map[*websocket.Conn]struct{}), log: log}
}

// ServeWS upgrades the request and keeps the connection until the client
// goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug("reload: websocket upgrade", zap.Error(err))
		return
	}
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("reload: websocket read", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Len reports the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast tells every client to reload. Clients that cannot be written to
// are dropped.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(ReloadMessage)); err != nil {
			h.log.Debug("reload: websocket write", zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
	h.log.Debug("reload broadcast", zap.Int("clients", len(h.clients)))
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(h.clients, conn)
	}
}

// Watcher calls OnChange once per burst of file system events under the
// watched paths.
type Watcher struct {
	Debounce time.Duration
	OnChange func()
	Log      *zap.Logger
}

// Run watches paths until ctx is done. Directories are watched recursively,
// including ones created later. A file is watched through its parent
// directory so editors that replace the file on save are still seen. Missing
// paths are skipped.
func (w *Watcher) Run(ctx context.Context, paths ...string) error {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			log.Debug("not watching missing path", zap.String("path", p))
			continue
		}
		if info.IsDir() {
			dirs[abs] = true
			addTree(fw, abs, log)
			continue
		}
		files[abs] = true
		if err := fw.Add(filepath.Dir(abs)); err != nil {
			log.Warn("watch failed", zap.String("path", abs), zap.Error(err))
		}
	}

	relevant := func(name string) bool {
		if files[name] {
			return true
		}
		for d := range dirs {
			if rel, err := filepath.Rel(d, name); err == nil && rel != ".." && !startsWithParent(rel) {
				return true
			}
		}
		return false
	}

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !relevant(name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(name); err == nil && info.IsDir() {
					addTree(fw, name, log)
				}
			}
			log.Debug("change detected", zap.String("path", name), zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if w.OnChange != nil {
				w.OnChange()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

func addTree(fw *fsnotify.Watcher, root string, log *zap.Logger) {
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fw.Add(path); err != nil {
				log.Warn("watch failed", zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
