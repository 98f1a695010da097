package web

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
)

// assetFolders are mounted at the root so dashboard pages can reference
// shared css/js/assets with absolute paths.
var assetFolders = []string{"css", "js", "assets", "auth"}

func isAssetFolder(name string) bool {
	for _, a := range assetFolders {
		if name == a {
			return true
		}
	}
	return false
}

// mountStatic exposes the front-end folders under staticRoot: the shared
// asset folders, plus every child directory (and immediate subdirectory)
// that carries an index.html. The dashboard index itself is session-gated.
func (h *Handler) mountStatic(mux *http.ServeMux) {
	if h.staticRoot == "" {
		return
	}

	for _, name := range assetFolders {
		dir := filepath.Join(h.staticRoot, name)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		prefix := "/" + name + "/"
		mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	}

	children, err := os.ReadDir(h.staticRoot)
	if err != nil {
		log.Printf("⚠️ Static root %s is not readable: %v", h.staticRoot, err)
	}
	for _, child := range children {
		if !child.IsDir() || isAssetFolder(child.Name()) {
			continue
		}
		h.mountFrontend(mux, child.Name(), filepath.Join(h.staticRoot, child.Name()))

		subs, err := os.ReadDir(filepath.Join(h.staticRoot, child.Name()))
		if err != nil {
			continue
		}
		for _, sub := range subs {
			if sub.IsDir() {
				h.mountFrontend(mux, child.Name()+"/"+sub.Name(),
					filepath.Join(h.staticRoot, child.Name(), sub.Name()))
			}
		}
	}

	mux.HandleFunc("/", h.handleRoot)
}

func (h *Handler) mountFrontend(mux *http.ServeMux, name, dir string) {
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		return
	}
	prefix := "/" + name + "/"
	mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(dir))))
	log.Printf("🌐 Mounted %s at %s", name, prefix)
}

// handleRoot serves the dashboard index to authenticated sessions and sends
// everyone else to the login page.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "/index.html":
		if !hasSession(r) {
			http.Redirect(w, r, "/auth/login.html", http.StatusFound)
			return
		}
		index := filepath.Join(h.staticRoot, "index.html")
		if _, err := os.Stat(index); err != nil {
			notFound(w, "Dashboard not found")
			return
		}
		http.ServeFile(w, r, index)
	case "/favicon.ico":
		w.WriteHeader(http.StatusNoContent)
	default:
		notFound(w, "Not found")
	}
}
