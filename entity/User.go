package entity

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`

	// Relations — preload only when needed
	Recipes       []Recipe    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Subscriptions []Subscribe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
