package domain

import "time"

type UserRole string

const (
	RoleStaff UserRole = "staff"
)

// User is a staff account. The public donation flow is anonymous; accounts
// exist only to gate the export endpoint.
type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);default:'staff'" json:"role"`
	Name         string    `gorm:"type:varchar(200)" json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
