package models

// City is the top level of the location taxonomy.
type City struct {
	BaseModel
	Name string `gorm:"type:varchar(120);uniqueIndex;not null" json:"name"`
}
