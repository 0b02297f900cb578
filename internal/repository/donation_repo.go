package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"donorblog/internal/domain"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

// CreatePending inserts a pending row keyed by payment intent. If a row for
// that intent already exists it is left untouched; created reports whether a
// new row was written.
func (r *DonationRepository) CreatePending(ctx context.Context, d *domain.Donation) (bool, error) {
	d.Status = domain.DonationPending
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_intent"}},
			DoNothing: true,
		}).
		Create(d)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DonationRepository) GetByPaymentIntent(ctx context.Context, paymentIntent string) (*domain.Donation, error) {
	var d domain.Donation
	if err := r.db.WithContext(ctx).Where("payment_intent = ?", paymentIntent).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// UpsertSucceeded writes the authoritative post-payment detail, inserting the
// row if checkout initiation never persisted one. A row already marked
// refunded keeps its status: refunds are terminal and a replayed success
// event must not roll one back.
func (r *DonationRepository) UpsertSucceeded(ctx context.Context, d *domain.Donation) error {
	d.Status = domain.DonationSucceeded
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "payment_intent"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"name":       d.Name,
				"email":      d.Email,
				"amount":     d.Amount,
				"currency":   d.Currency,
				"method":     d.Method,
				"card_brand": d.CardBrand,
				"funding":    d.Funding,
				"country":    d.Country,
				"raw":        d.Raw,
				"status": gorm.Expr(
					"CASE WHEN donations.status = ? THEN donations.status ELSE ? END",
					domain.DonationRefunded, domain.DonationSucceeded,
				),
			}),
		}).
		Create(d).Error
}

// MarkRefunded flips the status for a known intent. An unknown intent is a
// no-op, not an error: the gateway may refund charges this system never saw.
func (r *DonationRepository) MarkRefunded(ctx context.Context, paymentIntent string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("payment_intent = ?", paymentIntent).
		Update("status", domain.DonationRefunded)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClaimNotification atomically marks the donation as notified. Only the
// caller that flips the flag should send the receipt; replayed webhook
// deliveries lose the claim and skip the email.
func (r *DonationRepository) ClaimNotification(ctx context.Context, paymentIntent string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Donation{}).
		Where("payment_intent = ? AND notified = ?", paymentIntent, false).
		Update("notified", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DonationRepository) ListAll(ctx context.Context) ([]domain.Donation, error) {
	var out []domain.Donation
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
