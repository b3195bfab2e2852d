package dto

import "time"

// UpdateFilter carries the pagination and filter parameters for the
// regulatory update fetch.
type UpdateFilter struct {
	Authority string     `query:"authority"`
	Sector    string     `query:"sector"`
	Impact    string     `query:"impact"`
	Urgency   string     `query:"urgency"`
	Search    string     `query:"search"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
	Limit     int        `query:"limit"`
	Offset    int        `query:"offset"`
}

// Normalize applies the default and maximum page sizes.
func (f *UpdateFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
