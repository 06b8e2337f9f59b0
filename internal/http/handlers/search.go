package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"discounts/internal/search"
)

// Search handles GET /api/search: flat free-text search with optional shop
// filter and offset paging. A page of exactly `limit` rows tells the client
// more pages may exist; there is no total count.
func Search(svc *search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := parseSearchRequest(r)

		page, err := svc.Search(r.Context(), req)
		if err != nil {
			log.Error().Err(err).Str("query", req.Query).Msg("search failed")
			writeError(w, http.StatusInternalServerError, "search unavailable")
			return
		}
		writeJSON(w, http.StatusOK, assemble(page))
	}
}

// parseSearchRequest reads query parameters, treating anything unparseable as
// absent. Search is a best-effort read path; bad paging input degrades to the
// defaults instead of erroring. Repeated filters params are accepted alongside
// the comma-separated form.
func parseSearchRequest(r *http.Request) search.Request {
	q := r.URL.Query()
	req := search.Request{
		Query: q.Get("q"),
		Shops: search.ParseShops(strings.Join(q["filters"], ",")),
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		req.Limit = n
	}
	if n, err := strconv.Atoi(q.Get("offset")); err == nil {
		req.Offset = n
	}
	return req
}
