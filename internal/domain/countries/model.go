package countries

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Country struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	Code   string `gorm:"size:2" json:"code"`
	Region string `gorm:"index" json:"region"`

	Description string `json:"description"`
	Currency    string `json:"currency"`
	Language    string `json:"language"`
	BestSeason  string `json:"best_season"`

	ImageUrl  string                      `json:"image_url"`
	ImageUrls datatypes.JSONSlice[string] `json:"image_urls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Country) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
