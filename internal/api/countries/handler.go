package countries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"southbound-app/database"
	"southbound-app/internal/domain/countries"
)

type CreateCountryRequest struct {
	Name   string `json:"name" binding:"required"`
	Code   string `json:"code"`
	Region string `json:"region"`

	Description string `json:"description"`
	Currency    string `json:"currency"`
	Language    string `json:"language"`
	BestSeason  string `json:"best_season"`

	ImageUrl  string   `json:"image_url"`
	ImageUrls []string `json:"image_urls"`
}

type UpdateCountryRequest struct {
	Name   *string `json:"name"`
	Code   *string `json:"code"`
	Region *string `json:"region"`

	Description *string `json:"description"`
	Currency    *string `json:"currency"`
	Language    *string `json:"language"`
	BestSeason  *string `json:"best_season"`

	ImageUrl  *string   `json:"image_url"`
	ImageUrls *[]string `json:"image_urls"`
}

func getCountryByID(id string) (*countries.Country, error) {
	var country countries.Country
	err := database.DB.First(&country, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

func ListCountries(c *gin.Context) {
	var out []countries.Country
	if err := database.DB.Order("name ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load countries"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetCountry(c *gin.Context) {
	country, err := getCountryByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load country"})
		return
	}
	if country == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	c.JSON(http.StatusOK, country)
}

func CreateCountry(c *gin.Context) {
	var req CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	country := countries.Country{
		Name:        req.Name,
		Code:        req.Code,
		Region:      req.Region,
		Description: req.Description,
		Currency:    req.Currency,
		Language:    req.Language,
		BestSeason:  req.BestSeason,
		ImageUrl:    req.ImageUrl,
		ImageUrls:   req.ImageUrls,
	}
	if err := database.DB.Create(&country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create country"})
		return
	}
	c.JSON(http.StatusCreated, country)
}

func UpdateCountry(c *gin.Context) {
	var req UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	country, err := getCountryByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load country"})
		return
	}
	if country == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}

	if req.Name != nil {
		country.Name = *req.Name
	}
	if req.Code != nil {
		country.Code = *req.Code
	}
	if req.Region != nil {
		country.Region = *req.Region
	}
	if req.Description != nil {
		country.Description = *req.Description
	}
	if req.Currency != nil {
		country.Currency = *req.Currency
	}
	if req.Language != nil {
		country.Language = *req.Language
	}
	if req.BestSeason != nil {
		country.BestSeason = *req.BestSeason
	}
	if req.ImageUrl != nil {
		country.ImageUrl = *req.ImageUrl
	}
	if req.ImageUrls != nil {
		country.ImageUrls = *req.ImageUrls
	}

	if err := database.DB.Save(country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update country"})
		return
	}
	c.JSON(http.StatusOK, country)
}

func DeleteCountry(c *gin.Context) {
	country, err := getCountryByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load country"})
		return
	}
	if country == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Country not found"})
		return
	}
	if err := database.DB.Delete(country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete country"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": country.ID})
}
