// Package actuator exposes a read-only HTTP view of an [acorn.Context].
//
//	GET /beans         every bean, sorted by name
//	GET /beans/{name}  one bean, or 404
package actuator

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ARTM2000/acorn"
)

// Bean is the JSON description of one registered bean.
type Bean struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Namespace string `json:"namespace"`
}

// Beans is the response body of GET /beans.
type Beans struct {
	State string `json:"state"`
	Count int    `json:"count"`
	Beans []Bean `json:"beans"`
}

type handler struct {
	ctx acorn.Context
	log *slog.Logger
}

// Handler returns an http.Handler serving the beans of c. A nil logger
// discards request errors.
func Handler(c acorn.Context, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &handler{ctx: c, log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/beans", h.list)
	r.Get("/beans/{name}", h.get)
	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	names := h.ctx.Names()
	out := Beans{
		State: h.ctx.State().String(),
		Count: len(names),
		Beans: make([]Bean, 0, len(names)),
	}
	for _, name := range names {
		b, _ := h.describe(name)
		out.Beans = append(out.Beans, b)
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	b, ok := h.describe(name)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no bean named " + name})
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *handler) describe(name string) (Bean, bool) {
	typ, ok := h.ctx.TypeOf(name)
	if !ok {
		return Bean{}, false
	}
	ns, _ := h.ctx.Namespace(name)
	return Bean{Name: name, Type: typ.String(), Namespace: ns}, true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("writing response", slog.Any("error", err))
	}
}
