package entity

type Ingredient struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Name              string `gorm:"size:200;index;not null" json:"name"`
	MeasurementUnitID uint   `gorm:"index" json:"-"`

	MeasurementUnit MeasurementUnit `gorm:"foreignKey:MeasurementUnitID;constraint:OnDelete:CASCADE" json:"-"`
}
