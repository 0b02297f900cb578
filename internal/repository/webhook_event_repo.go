package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"donorblog/internal/domain"
)

type WebhookEventRepository struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

// MarkSeen records the event id and reports whether this delivery is the
// first one. The unique (provider, event_id) index arbitrates between
// concurrent duplicate deliveries.
func (r *WebhookEventRepository) MarkSeen(ctx context.Context, provider, eventID, eventType string) (bool, error) {
	ev := domain.WebhookEvent{Provider: provider, EventID: eventID, EventType: eventType}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "provider"}, {Name: "event_id"}},
			DoNothing: true,
		}).
		Create(&ev)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Forget removes the marker so a gateway retry of the same event id is
// processed again. Used when reconciliation fails after the event was
// recorded but before any state converged.
func (r *WebhookEventRepository) Forget(ctx context.Context, provider, eventID string) error {
	return r.db.WithContext(ctx).
		Where("provider = ? AND event_id = ?", provider, eventID).
		Delete(&domain.WebhookEvent{}).Error
}
