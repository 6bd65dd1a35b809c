package leads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"southbound-app/database"
	"southbound-app/internal/domain/leads"
)

type CreateLeadRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`

	Message   string `json:"message"`
	TripType  string `json:"trip_type"`
	StartDate string `json:"start_date"`
	Travelers int    `json:"travelers"`
}

type UpdateLeadRequest struct {
	Status *string `json:"status"`
}

func getLeadByID(id string) (*leads.Lead, error) {
	var lead leads.Lead
	err := database.DB.First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func ListLeads(c *gin.Context) {
	var out []leads.Lead
	if err := database.DB.Order("created_at DESC").Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreateLead handles the public enquiry form; string input is sanitized by
// middleware before it reaches this handler.
func CreateLead(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := leads.Lead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		TripType:  req.TripType,
		StartDate: req.StartDate,
		Travelers: req.Travelers,
		Status:    "new",
	}
	if err := database.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// UpdateLead only exposes the status field; everything else is immutable
// after submission.
func UpdateLead(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := getLeadByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead"})
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	if req.Status != nil {
		lead.Status = *req.Status
	}
	if err := database.DB.Save(lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

func DeleteLead(c *gin.Context) {
	lead, err := getLeadByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lead"})
		return
	}
	if lead == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	if err := database.DB.Delete(lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": lead.ID})
}
