package domain

import "time"

// EventDefinition describes a timed harvest challenge
type EventDefinition struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	TargetItem   string        `json:"targetItemId"`
	TargetAmount int           `json:"targetAmount"`
	Duration     time.Duration `json:"duration"`
	UnlockLevel  int           `json:"unlockLevel"`
	RewardMoney  int           `json:"rewardMoney"`
	RewardXP     int           `json:"rewardXp"`
}

// ActiveEvent is a running instance of an EventDefinition
type ActiveEvent struct {
	EventID   string    `json:"eventId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Progress  int       `json:"progress"`
}

// Expired reports whether the event deadline has passed at now
func (a ActiveEvent) Expired(now time.Time) bool {
	return now.After(a.EndTime)
}
