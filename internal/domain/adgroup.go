package domain

// AdGroup pertence a exatamente uma campanha.
// Invariante: (google_adgroup_id, campaign_id) é único.
type AdGroup struct {
	ID              string       `json:"id"`
	GoogleAdGroupID string       `json:"google_adgroup_id"`
	CampaignID      string       `json:"campaign_id"`
	Name            string       `json:"name"`
	Status          EntityStatus `json:"status"`
}
