package cities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type City struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Country string `json:"country"`
	Region  string `gorm:"index" json:"region"`

	Description string `json:"description"`
	BestSeason  string `json:"best_season"`

	Highlights datatypes.JSONSlice[string] `json:"highlights"`
	Activities datatypes.JSONSlice[string] `json:"activities"`

	// Image fields rewritten by the blob migration job.
	ImageUrl            string                      `json:"image_url"`
	ImageUrls           datatypes.JSONSlice[string] `json:"image_urls"`
	HighlightImages     datatypes.JSONSlice[string] `json:"highlight_images"`
	ActivityImages      datatypes.JSONSlice[string] `json:"activity_images"`
	AccommodationImages datatypes.JSONSlice[string] `json:"accommodation_images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *City) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
