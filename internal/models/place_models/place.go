package place_models

// Place is the normalized point-of-interest record produced by the places
// repositories and enriched by the places service. Records live for a single
// request; nothing mutates them after enrichment.
type Place struct {
	PlaceID       string            `json:"place_id"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	Description   string            `json:"description,omitempty"`
	Rating        float64           `json:"rating"`
	RatingCount   int               `json:"rating_count"`
	PriceLevel    int               `json:"price_level"`
	Types         []string          `json:"types"`
	CategoryBadge string            `json:"category_badge"`
	SmartTags     []string          `json:"smart_tags"`
	ImageURL      string            `json:"image_url"`
	GoogleMapsURL string            `json:"google_maps_url"`
	SearchURLs    map[string]string `json:"search_urls,omitempty"`
	Website       string            `json:"website,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	OpenNow       *bool             `json:"open_now,omitempty"`
	Reviews       []string          `json:"reviews,omitempty"`
}

// HasType reports whether the record carries the given Places type string.
func (p Place) HasType(t string) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// HasAnyType reports whether the record carries at least one of the given types.
func (p Place) HasAnyType(types ...string) bool {
	for _, t := range types {
		if p.HasType(t) {
			return true
		}
	}
	return false
}
