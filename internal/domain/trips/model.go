package trips

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TripTemplate is a pre-built trip plan users can start from.
type TripTemplate struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Description string                      `json:"description"`
	Days        int                         `json:"days"`
	Cities      datatypes.JSONSlice[string] `json:"cities"`
	PriceFrom   int                         `json:"price_from"`

	ImageUrl string `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *TripTemplate) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// RouteCard is a homepage teaser card linking to a route.
type RouteCard struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Subtitle string `json:"subtitle"`
	Link     string `json:"link"`

	ImageUrl  string `json:"image_url"`
	SortIndex int    `gorm:"default:0" json:"sort_index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (rc *RouteCard) BeforeCreate(*gorm.DB) error {
	if rc.ID == "" {
		rc.ID = uuid.NewString()
	}
	return nil
}

// DefaultTrip is the trip preselected for first-time visitors.
type DefaultTrip struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Cities datatypes.JSONSlice[string] `json:"cities"`
	Active bool                        `gorm:"default:false" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (dt *DefaultTrip) BeforeCreate(*gorm.DB) error {
	if dt.ID == "" {
		dt.ID = uuid.NewString()
	}
	return nil
}
