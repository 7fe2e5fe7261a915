package models

// Area belongs to exactly one City and is removed with it.
type Area struct {
	BaseModel
	Name   string `gorm:"type:varchar(120);not null" json:"name"`
	CityID uint   `gorm:"index;not null" json:"city_id"`

	City *City `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"city,omitempty"`
}
