package domain

type AdType string

const (
	AdTypeResponsiveSearch  AdType = "RESPONSIVE_SEARCH"
	AdTypeResponsiveDisplay AdType = "RESPONSIVE_DISPLAY"
	AdTypeImage             AdType = "IMAGE"
	AdTypeVideo             AdType = "VIDEO"
)

func (t AdType) Valid() bool {
	switch t {
	case AdTypeResponsiveSearch, AdTypeResponsiveDisplay, AdTypeImage, AdTypeVideo:
		return true
	}
	return false
}

// Ad pertence a exatamente um ad group.
// Invariante: (google_ad_id, ad_group_id) é único.
type Ad struct {
	ID           string       `json:"id"`
	GoogleAdID   string       `json:"google_ad_id"`
	AdGroupID    string       `json:"ad_group_id"`
	AdType       AdType       `json:"ad_type"`
	Headlines    []string     `json:"headlines,omitempty"`
	Descriptions []string     `json:"descriptions,omitempty"`
	FinalURL     *string      `json:"final_url,omitempty"`
	Status       EntityStatus `json:"status"`
}
