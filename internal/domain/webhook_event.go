package domain

import "time"

// WebhookEvent marks a gateway event as seen. The unique (provider, event_id)
// index is what makes replayed deliveries converge on a single processing run.
type WebhookEvent struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Provider  string    `gorm:"type:varchar(20);not null;uniqueIndex:ux_webhook_events_provider_event,priority:1" json:"provider"`
	EventID   string    `gorm:"type:varchar(191);not null;uniqueIndex:ux_webhook_events_provider_event,priority:2" json:"event_id"`
	EventType string    `gorm:"type:varchar(100);index" json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (WebhookEvent) TableName() string { return "webhook_events" }
