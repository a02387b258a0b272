package models

// FeatureFlags holds the process-wide operating switches of the dashboard.
//
// CateringOnlyMode marks that catering can be sold without a hall booking. It is
// stored and toggled but nothing downstream gates on it yet; treat it as reserved.
type FeatureFlags struct {
	IsCateringEnabled bool `json:"isCateringEnabled"`
	CateringOnlyMode  bool `json:"cateringOnlyMode"`
}
