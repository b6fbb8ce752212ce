package domain

type MatchType string

const (
	MatchTypeExact  MatchType = "EXACT"
	MatchTypePhrase MatchType = "PHRASE"
	MatchTypeBroad  MatchType = "BROAD"
)

func (t MatchType) Valid() bool {
	switch t {
	case MatchTypeExact, MatchTypePhrase, MatchTypeBroad:
		return true
	}
	return false
}

// Keyword pertence a exatamente um ad group. O identificador externo pode
// estar ausente para keywords ainda não sincronizadas com a plataforma.
// Invariante: (google_keyword_id, ad_group_id) é único quando presente.
type Keyword struct {
	ID              string       `json:"id"`
	GoogleKeywordID *string      `json:"google_keyword_id,omitempty"`
	AdGroupID       string       `json:"ad_group_id"`
	KeywordText     string       `json:"keyword_text"`
	MatchType       MatchType    `json:"match_type"`
	Status          EntityStatus `json:"status"`
}
