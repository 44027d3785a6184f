package entity

// Sort keys accepted by the listing pipeline.
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// DoctorFilter is a domain-level filter for the listing pipeline.
// Used by the usecase layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Search          string   // case-insensitive substring over name, specialization, description
	Specializations []string // exact membership; empty means no filter
	PriceMin        int      // lower bound of the price bucket, inclusive
	PriceMax        *int     // upper bound, exclusive; nil for the "min+" form
	HasPrice        bool     // whether a price bucket was supplied at all
	Region          string   // case-insensitive equality on Address.Region
	SortBy          string   // one of the Sort* constants
	Page            int
	Limit           int
}
