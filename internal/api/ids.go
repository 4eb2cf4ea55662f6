package api

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/humanids/pkg/humanid"
	"github.com/dmitrymomot/humanids/pkg/logger"
)

type idsResponse struct {
	IDs []string `json:"ids"`
}

func (h *handler) generateIDs(w http.ResponseWriter, r *http.Request) {
	count, opts, err := h.parseIDsQuery(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	ids := make([]string, count)
	for i := range ids {
		ids[i] = h.gen.Generate(opts)
	}

	h.log.DebugContext(r.Context(), "generated identifiers", logger.Count(count), logger.Options(opts))
	writeData(w, idsResponse{IDs: ids})
}

// parseIDsQuery applies query parameters over the handler defaults. A present
// but empty separator parameter means "no separator".
func (h *handler) parseIDsQuery(q url.Values) (int, humanid.Options, error) {
	verr := make(ValidationError)
	b := humanid.NewBuilder().
		Separator(h.defaults.Separator()).
		Capitalize(h.defaults.Capitalize()).
		AddAdverb(h.defaults.AddAdverb()).
		AdjectiveCount(h.defaults.AdjectiveCount())

	count := 1
	if q.Has("count") {
		n, err := strconv.Atoi(q.Get("count"))
		switch {
		case err != nil:
			verr.Add("count", "must be an integer")
		case n < 1 || n > MaxCount:
			verr.Add("count", "must be between 1 and "+strconv.Itoa(MaxCount))
		default:
			count = n
		}
	}

	if q.Has("separator") {
		b = b.Separator(q.Get("separator"))
	}

	if q.Has("capitalize") {
		v, err := strconv.ParseBool(q.Get("capitalize"))
		if err != nil {
			verr.Add("capitalize", "must be a boolean")
		}
		b = b.Capitalize(v)
	}

	if q.Has("adverb") {
		v, err := strconv.ParseBool(q.Get("adverb"))
		if err != nil {
			verr.Add("adverb", "must be a boolean")
		}
		b = b.AddAdverb(v)
	}

	if q.Has("adjectives") {
		n, err := strconv.ParseUint(q.Get("adjectives"), 10, strconv.IntSize)
		switch {
		case errors.Is(err, strconv.ErrRange):
			n = uint64(humanid.MaxAdjectiveCount) + 1
		case err != nil:
			verr.Add("adjectives", "must be a non-negative integer")
		}
		b = b.AdjectiveCount(uint(n))
	}

	opts, err := b.Build()
	if errors.Is(err, humanid.ErrTooManyAdjectives) {
		verr.Add("adjectives", "must not exceed "+strconv.FormatUint(uint64(humanid.MaxAdjectiveCount), 10))
	}

	if len(verr) > 0 {
		return 0, humanid.Options{}, verr
	}
	return count, opts, nil
}
