package models

import "time"

// SurveyResponse represents one cleaned customer-survey row. The verbose
// question-text columns of the raw export are mapped to the canonical short
// names used here.
type SurveyResponse struct {
	CSI                    string     `json:"csi,omitempty"`
	NumericCSI             *float64   `json:"numeric_csi,omitempty"`
	PrimaryReason          string     `json:"primary_reason,omitempty"`
	TagsPrimaryReason      string     `json:"tags_primary_reason,omitempty"`
	SentimentPrimaryReason string     `json:"sentiment_primary_reason,omitempty"`
	NumericWillReturn      *float64   `json:"numeric_will_return,omitempty"`
	SyncOn                 *time.Time `json:"sync_on,omitempty"`
	Name                   string     `json:"name,omitempty"`
	Email                  string     `json:"email,omitempty"`
	PhoneNumber            string     `json:"phone_number,omitempty"`
	CampaignID             string     `json:"campaign_id,omitempty"`
	CampSentOn             *time.Time `json:"camp_sent_on,omitempty"`
}
