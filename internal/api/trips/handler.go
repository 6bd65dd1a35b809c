package trips

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"southbound-app/database"
	"southbound-app/internal/domain/trips"
)

// ------------------------------
// Trip templates
// ------------------------------

type TemplateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Days        int      `json:"days"`
	Cities      []string `json:"cities"`
	PriceFrom   int      `json:"price_from"`
	ImageUrl    string   `json:"image_url"`
}

func ListTemplates(c *gin.Context) {
	var out []trips.TripTemplate
	if err := database.DB.Order("name ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip templates"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetTemplate(c *gin.Context) {
	var tpl trips.TripTemplate
	err := database.DB.First(&tpl, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip template"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl := trips.TripTemplate{
		Name:        req.Name,
		Description: req.Description,
		Days:        req.Days,
		Cities:      req.Cities,
		PriceFrom:   req.PriceFrom,
		ImageUrl:    req.ImageUrl,
	}
	if err := database.DB.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip template"})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func UpdateTemplate(c *gin.Context) {
	var tpl trips.TripTemplate
	err := database.DB.First(&tpl, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip template not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load trip template"})
		return
	}

	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl.Name = req.Name
	tpl.Description = req.Description
	tpl.Days = req.Days
	tpl.Cities = req.Cities
	tpl.PriceFrom = req.PriceFrom
	tpl.ImageUrl = req.ImageUrl

	if err := database.DB.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trip template"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func DeleteTemplate(c *gin.Context) {
	res := database.DB.Delete(&trips.TripTemplate{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trip template"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip template not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ------------------------------
// Route cards
// ------------------------------

type CardRequest struct {
	Title     string `json:"title" binding:"required"`
	Subtitle  string `json:"subtitle"`
	Link      string `json:"link"`
	ImageUrl  string `json:"image_url"`
	SortIndex int    `json:"sort_index"`
}

func ListCards(c *gin.Context) {
	var out []trips.RouteCard
	if err := database.DB.Order("sort_index ASC, created_at ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route cards"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func CreateCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card := trips.RouteCard{
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Link:      req.Link,
		ImageUrl:  req.ImageUrl,
		SortIndex: req.SortIndex,
	}
	if err := database.DB.Create(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route card"})
		return
	}
	c.JSON(http.StatusCreated, card)
}

func UpdateCard(c *gin.Context) {
	var card trips.RouteCard
	err := database.DB.First(&card, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route card not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route card"})
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card.Title = req.Title
	card.Subtitle = req.Subtitle
	card.Link = req.Link
	card.ImageUrl = req.ImageUrl
	card.SortIndex = req.SortIndex

	if err := database.DB.Save(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func DeleteCard(c *gin.Context) {
	res := database.DB.Delete(&trips.RouteCard{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route card"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route card not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ------------------------------
// Default trip
// ------------------------------

type DefaultTripRequest struct {
	Name   string   `json:"name" binding:"required"`
	Cities []string `json:"cities"`
}

// GetDefaultTrip returns the currently active default trip, or 404 when none
// is configured.
func GetDefaultTrip(c *gin.Context) {
	var trip trips.DefaultTrip
	err := database.DB.First(&trip, "active = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No default trip configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load default trip"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

// SetDefaultTrip replaces the active default trip: the previous one is
// deactivated in the same transaction.
func SetDefaultTrip(c *gin.Context) {
	var req DefaultTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip := trips.DefaultTrip{
		Name:   req.Name,
		Cities: req.Cities,
		Active: true,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&trips.DefaultTrip{}).Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(&trip).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default trip"})
		return
	}
	c.JSON(http.StatusCreated, trip)
}
