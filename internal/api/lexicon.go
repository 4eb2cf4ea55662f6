package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/humanids/pkg/lexicon"
)

func (h *handler) listCategories(w http.ResponseWriter, _ *http.Request) {
	all := lexicon.All()
	out := make([]lexicon.Summary, 0, len(all))
	for _, c := range all {
		out = append(out, lexicon.Summarize(c))
	}
	writeData(w, out)
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := lexicon.Lookup(chi.URLParam(r, "category"))
	if err != nil {
		writeError(w, fmt.Errorf("%w: %w", ErrNotFound, err))
		return
	}
	writeData(w, lexicon.Summarize(c))
}
