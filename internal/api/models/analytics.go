package models

import "github.com/oliveraie/oliveraie/internal/analytics"

// CampaignsResponse lists the known QR campaign slugs.
type CampaignsResponse struct {
	Campaigns []string `json:"campaigns"`
}

// CampaignSummaryResponse carries scan counts for one campaign.
type CampaignSummaryResponse struct {
	Campaign string               `json:"campaign"`
	Total    int64                `json:"total"`
	Days     []analytics.DayCount `json:"days"`
}
