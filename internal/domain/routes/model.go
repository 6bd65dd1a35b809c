package routes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Route is a multi-city travel itinerary (e.g. "Hanoi to Ho Chi Minh City").
type Route struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Description string                      `json:"description"`
	Cities      datatypes.JSONSlice[string] `json:"cities"` // ordered city names
	Days        int                         `json:"days"`
	DistanceKM  int                         `json:"distance_km"`

	ImageUrl string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Route) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
