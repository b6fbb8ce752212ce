package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignType string

const (
	CampaignTypeSearch         CampaignType = "SEARCH"
	CampaignTypeDisplay        CampaignType = "DISPLAY"
	CampaignTypeVideo          CampaignType = "VIDEO"
	CampaignTypeShopping       CampaignType = "SHOPPING"
	CampaignTypeApp            CampaignType = "APP"
	CampaignTypePerformanceMax CampaignType = "PERFORMANCE_MAX"
)

func (t CampaignType) Valid() bool {
	switch t {
	case CampaignTypeSearch, CampaignTypeDisplay, CampaignTypeVideo,
		CampaignTypeShopping, CampaignTypeApp, CampaignTypePerformanceMax:
		return true
	}
	return false
}

// Campaign pertence a exatamente uma conta e um serviço.
// Invariante: (google_campaign_id, account_id) é único.
type Campaign struct {
	ID               string           `json:"id"`
	GoogleCampaignID string           `json:"google_campaign_id"`
	AccountID        string           `json:"account_id"`
	ServiceID        string           `json:"service_id"`
	Name             string           `json:"name"`
	CampaignType     CampaignType     `json:"campaign_type"`
	Status           EntityStatus     `json:"status"`
	BudgetAmount     *decimal.Decimal `json:"budget_amount,omitempty"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
}
