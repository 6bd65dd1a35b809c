package cities

import (
	"errors"

	"gorm.io/gorm"

	"southbound-app/internal/domain/cities"
)

// getCityByID translates gorm's not-found error to a nil city.
func getCityByID(db *gorm.DB, id string) (*cities.City, error) {
	var city cities.City
	err := db.First(&city, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

func listCitiesQuery(db *gorm.DB, region string) *gorm.DB {
	q := db.Model(&cities.City{})
	if region != "" {
		q = q.Where("region = ?", region)
	}
	return q.Order("name ASC")
}
