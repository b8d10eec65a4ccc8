package entity

import "time"

// AuthToken is the single active token issued to a user on login.
// The key itself is a signed JWT, but the row makes it revocable: logout
// deletes the row and the middleware rejects keys without one.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Key       string    `gorm:"size:512;uniqueIndex;not null" json:"key"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
