package cities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"southbound-app/database"
	"southbound-app/internal/domain/cities"
)

// ------------------------------
// GET /cities
// ------------------------------
func ListCities(c *gin.Context) {
	var out []cities.City
	err := listCitiesQuery(database.DB, c.Query("region")).Find(&out).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cities"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /cities/:id
// ------------------------------
func GetCity(c *gin.Context) {
	city, err := getCityByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city"})
		return
	}
	if city == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	c.JSON(http.StatusOK, city)
}

// ------------------------------
// POST /cities
// ------------------------------
func CreateCity(c *gin.Context) {
	var req CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city := cities.City{
		Name:                req.Name,
		Country:             req.Country,
		Region:              req.Region,
		Description:         req.Description,
		BestSeason:          req.BestSeason,
		Highlights:          req.Highlights,
		Activities:          req.Activities,
		ImageUrl:            req.ImageUrl,
		ImageUrls:           req.ImageUrls,
		HighlightImages:     req.HighlightImages,
		ActivityImages:      req.ActivityImages,
		AccommodationImages: req.AccommodationImages,
	}
	if err := database.DB.Create(&city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create city"})
		return
	}
	c.JSON(http.StatusCreated, city)
}

// ------------------------------
// PUT /cities/:id
// ------------------------------
func UpdateCity(c *gin.Context) {
	var req UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city, err := getCityByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city"})
		return
	}
	if city == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}

	// Merge the allow-listed fields into the full document, then replace it.
	if req.Name != nil {
		city.Name = *req.Name
	}
	if req.Country != nil {
		city.Country = *req.Country
	}
	if req.Region != nil {
		city.Region = *req.Region
	}
	if req.Description != nil {
		city.Description = *req.Description
	}
	if req.BestSeason != nil {
		city.BestSeason = *req.BestSeason
	}
	if req.Highlights != nil {
		city.Highlights = *req.Highlights
	}
	if req.Activities != nil {
		city.Activities = *req.Activities
	}
	if req.ImageUrl != nil {
		city.ImageUrl = *req.ImageUrl
	}
	if req.ImageUrls != nil {
		city.ImageUrls = *req.ImageUrls
	}
	if req.HighlightImages != nil {
		city.HighlightImages = *req.HighlightImages
	}
	if req.ActivityImages != nil {
		city.ActivityImages = *req.ActivityImages
	}
	if req.AccommodationImages != nil {
		city.AccommodationImages = *req.AccommodationImages
	}

	if err := database.DB.Save(city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update city"})
		return
	}
	c.JSON(http.StatusOK, city)
}

// ------------------------------
// DELETE /cities/:id
// ------------------------------
func DeleteCity(c *gin.Context) {
	city, err := getCityByID(database.DB, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load city"})
		return
	}
	if city == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
		return
	}
	if err := database.DB.Delete(city).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete city"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": city.ID})
}
