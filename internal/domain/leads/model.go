package leads

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead is a trip enquiry submitted through the public contact form.
type Lead struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Phone string `json:"phone"`

	Message   string `json:"message"`
	TripType  string `json:"trip_type"`
	StartDate string `json:"start_date"`
	Travelers int    `json:"travelers"`

	Status string `gorm:"default:'new'" json:"status"` // new / contacted / closed

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lead) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
