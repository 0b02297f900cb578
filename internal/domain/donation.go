package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationSucceeded DonationStatus = "succeeded"
	DonationFailed    DonationStatus = "failed"
	DonationRefunded  DonationStatus = "refunded"
)

// Donation is one payment attempt, keyed by the gateway's payment-intent id.
// Amounts are stored in currency major units (77.00, not 7700).
type Donation struct {
	ID            int64           `gorm:"primaryKey" json:"id"`
	PaymentIntent string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"payment_intent"`
	Name          string          `gorm:"type:varchar(200)" json:"name"`
	Email         string          `gorm:"type:varchar(254)" json:"email"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"type:varchar(10);default:'pln'" json:"currency"`
	Status        DonationStatus  `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Method        string          `gorm:"type:varchar(50)" json:"method"`
	CardBrand     string          `gorm:"type:varchar(20)" json:"card_brand"`
	Funding       string          `gorm:"type:varchar(20)" json:"funding"`
	Country       string          `gorm:"type:varchar(2)" json:"country"`
	Raw           string          `gorm:"type:text" json:"-"`
	Notified      bool            `gorm:"default:false" json:"notified"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Donation) TableName() string { return "donations" }
