package domain

type TargetingDimension string

const (
	TargetingAudience  TargetingDimension = "AUDIENCE"
	TargetingLocation  TargetingDimension = "LOCATION"
	TargetingDevice    TargetingDimension = "DEVICE"
	TargetingAge       TargetingDimension = "AGE"
	TargetingGender    TargetingDimension = "GENDER"
	TargetingPlacement TargetingDimension = "PLACEMENT"
)

func (d TargetingDimension) Valid() bool {
	switch d {
	case TargetingAudience, TargetingLocation, TargetingDevice,
		TargetingAge, TargetingGender, TargetingPlacement:
		return true
	}
	return false
}

// TargetingSetting é dado dimensional somente-leitura de um ad group.
// Não participa da agregação de métricas.
type TargetingSetting struct {
	ID            string             `json:"id"`
	AdGroupID     string             `json:"ad_group_id"`
	Dimension     TargetingDimension `json:"dimension"`
	Value         string             `json:"value"`
	BidMultiplier *float64           `json:"bid_multiplier,omitempty"`
}
