package offer

import (
	"fmt"
	"time"
)

// Offer is a single promotional offer as produced by the scraper pipeline.
// This service only reads offers. IDs are assigned monotonically upstream and
// never reused, which is what keeps offset pagination stable across requests.
type Offer struct {
	ID             int64
	Title          string
	Shop           string
	Price          int
	OldPrice       *int
	DateStart      *Date
	DateEnd        *Date
	Img            string
	AdditionalInfo *string
	Discount       *string
}

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. Postgres date columns scan
// into it and it marshals as a bare YYYY-MM-DD string, matching the validity
// windows stored with each offer.
type Date struct {
	time.Time
}

// Scan implements sql.Scanner so pgx can decode date columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("parse date %q: %w", v, err)
		}
		d.Time = t
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d Date) String() string { return d.Format(dateLayout) }
