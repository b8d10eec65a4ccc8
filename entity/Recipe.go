package entity

import "time"

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"-"`
	Name        string    `gorm:"size:200;not null;index" json:"name"`
	Text        string    `gorm:"type:text" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`

	// Image is stored in-row and served from /recipes/:id/image
	Image     []byte `gorm:"column:image" json:"-"`
	ImageType string `gorm:"column:image_type" json:"-"`
	ImageSize int64  `gorm:"column:image_size" json:"-"`

	Author      User                     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Tags        []RecipeTag              `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []RecipeIngredientAmount `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}
