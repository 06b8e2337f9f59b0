package handlers

import (
	"encoding/json"
	"net/http"

	"discounts/internal/search"
)

type groupView struct {
	Item    string      `json:"item"`
	Results []offerView `json:"results"`
	Failed  bool        `json:"failed,omitempty"`
}

// SearchList handles POST /api/search/list: one search per grocery-list item,
// one group per item in the same order. Items that matched nothing come back
// as empty groups; items whose search kept failing are marked failed instead
// of sinking the whole response.
func SearchList(svc *search.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Items []string `json:"items"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		groups := svc.SearchList(r.Context(), body.Items)

		views := make([]groupView, 0, len(groups))
		for _, g := range groups {
			views = append(views, groupView{
				Item:    g.Item,
				Results: assemble(g.Page),
				Failed:  g.Failed,
			})
		}
		writeJSON(w, http.StatusOK, views)
	}
}
