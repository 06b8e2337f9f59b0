package search

import "strings"

// ParseShops turns the raw filters parameter (comma-separated shop names) into
// a lower-cased shop list. Empty input means "no restriction" and returns nil,
// never an empty slice, which downstream would read as a filter excluding
// every shop. Tokens are not validated against the known shops; an unknown
// shop simply matches zero rows.
func ParseShops(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var shops []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			shops = append(shops, tok)
		}
	}
	return shops
}
