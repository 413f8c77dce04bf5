package domain

import "time"

// Order is a timed market request
type Order struct {
	ID             string      `json:"id"`
	Items          []ItemCount `json:"items"`
	RewardMoney    int         `json:"rewardMoney"`
	RewardXP       int         `json:"rewardXp"`
	ExpiresAt      time.Time   `json:"expiresAt"`
	RequesterName  string      `json:"requesterName,omitempty"`
	RequesterQuote string      `json:"requesterQuote,omitempty"`
	Emergency      bool        `json:"isEmergency"`
}

// Expired reports whether the order can no longer be fulfilled at now
func (o Order) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
