package handlers

import (
	"encoding/json"
	"net/http"

	"discounts/internal/domain/offer"
	"discounts/internal/search"
)

// offerView is the wire representation of an offer.
type offerView struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Shop           string      `json:"shop"`
	Price          int         `json:"price"`
	OldPrice       *int        `json:"old_price"`
	DateStart      *offer.Date `json:"date_start"`
	DateEnd        *offer.Date `json:"date_end"`
	Img            string      `json:"img"`
	AdditionalInfo *string     `json:"additional_info"`
	Discount       *string     `json:"discount"`
}

// assemble projects a result page onto the wire shape. The returned slice is
// never nil so an empty page encodes as [] rather than null, and its length is
// capped at the page limit whatever the store handed back.
func assemble(p search.Page) []offerView {
	offers := p.Offers
	if p.Limit > 0 && len(offers) > p.Limit {
		offers = offers[:p.Limit]
	}
	views := make([]offerView, 0, len(offers))
	for _, o := range offers {
		views = append(views, offerView{
			ID:             o.ID,
			Title:          o.Title,
			Shop:           o.Shop,
			Price:          o.Price,
			OldPrice:       o.OldPrice,
			DateStart:      o.DateStart,
			DateEnd:        o.DateEnd,
			Img:            o.Img,
			AdditionalInfo: o.AdditionalInfo,
			Discount:       o.Discount,
		})
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
