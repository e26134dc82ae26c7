package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeDonationCompleted    = "donation.completed"
	EventTypeCampaignStatusChange = "campaign.status_changed"
)

type DonationCompletedEvent struct {
	BaseEvent
	DonationID  int64   `json:"donation_id"`
	CampaignID  int64   `json:"campaign_id"`
	DonorID     *int64  `json:"donor_id,omitempty"`
	Amount      float64 `json:"amount"`
	IsAnonymous bool    `json:"is_anonymous"`
}

func NewDonationCompletedEvent(donationID, campaignID int64, donorID *int64, amount float64, isAnonymous bool) *DonationCompletedEvent {
	return &DonationCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeDonationCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"donation_id":  donationID,
				"campaign_id":  campaignID,
				"donor_id":     donorID,
				"amount":       amount,
				"is_anonymous": isAnonymous,
			},
		},
		DonationID:  donationID,
		CampaignID:  campaignID,
		DonorID:     donorID,
		Amount:      amount,
		IsAnonymous: isAnonymous,
	}
}

type CampaignStatusChangedEvent struct {
	BaseEvent
	CampaignID int64  `json:"campaign_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

func NewCampaignStatusChangedEvent(campaignID int64, oldStatus, newStatus string) *CampaignStatusChangedEvent {
	return &CampaignStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCampaignStatusChange,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"campaign_id": campaignID,
				"old_status":  oldStatus,
				"new_status":  newStatus,
			},
		},
		CampaignID: campaignID,
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
	}
}
