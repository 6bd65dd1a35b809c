package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"southbound-app/database"
	"southbound-app/internal/domain/routes"
)

type CreateRouteRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Cities      []string `json:"cities"`
	Days        int      `json:"days"`
	DistanceKM  int      `json:"distance_km"`
	ImageUrl    string   `json:"image_url"`
}

type UpdateRouteRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Cities      *[]string `json:"cities"`
	Days        *int      `json:"days"`
	DistanceKM  *int      `json:"distance_km"`
	ImageUrl    *string   `json:"image_url"`
}

func getRouteByID(id string) (*routes.Route, error) {
	var route routes.Route
	err := database.DB.First(&route, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func ListRoutes(c *gin.Context) {
	var out []routes.Route
	if err := database.DB.Order("name ASC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load routes"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func GetRoute(c *gin.Context) {
	route, err := getRouteByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route"})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	c.JSON(http.StatusOK, route)
}

func CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route := routes.Route{
		Name:        req.Name,
		Description: req.Description,
		Cities:      req.Cities,
		Days:        req.Days,
		DistanceKM:  req.DistanceKM,
		ImageUrl:    req.ImageUrl,
	}
	if err := database.DB.Create(&route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route"})
		return
	}
	c.JSON(http.StatusCreated, route)
}

func UpdateRoute(c *gin.Context) {
	var req UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := getRouteByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route"})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if req.Name != nil {
		route.Name = *req.Name
	}
	if req.Description != nil {
		route.Description = *req.Description
	}
	if req.Cities != nil {
		route.Cities = *req.Cities
	}
	if req.Days != nil {
		route.Days = *req.Days
	}
	if req.DistanceKM != nil {
		route.DistanceKM = *req.DistanceKM
	}
	if req.ImageUrl != nil {
		route.ImageUrl = *req.ImageUrl
	}

	if err := database.DB.Save(route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route"})
		return
	}
	c.JSON(http.StatusOK, route)
}

func DeleteRoute(c *gin.Context) {
	route, err := getRouteByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load route"})
		return
	}
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}
	if err := database.DB.Delete(route).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete route"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": route.ID})
}
