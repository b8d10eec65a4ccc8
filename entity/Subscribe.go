package entity

// Subscribe is a directed follow relation: user follows author.
// Self-subscription is rejected in the service layer.
type Subscribe struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_author" json:"user_id"`
	AuthorID uint `gorm:"not null;uniqueIndex:idx_user_author;index" json:"author_id"`

	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
