package search

// Limits bounds page sizes for search requests.
type Limits struct {
	Default int
	Max     int
}

// Request is one search call: free-text query, optional shop restriction and
// an offset page window.
type Request struct {
	Query  string
	Shops  []string
	Limit  int
	Offset int
}

// clamp normalizes pagination so a single request can never ask for unbounded
// work: non-positive limits fall back to the default, oversized limits are cut
// to the ceiling, negative offsets become zero. Bad input degrades, it does
// not error.
func (r *Request) clamp(l Limits) {
	if r.Limit <= 0 {
		r.Limit = l.Default
	}
	if r.Limit > l.Max {
		r.Limit = l.Max
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
}
