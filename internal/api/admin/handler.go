package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"southbound-app/config"
	"southbound-app/internal/ingest"
)

type MigrateImagesRequest struct {
	CityID string `json:"cityId"`
	DryRun bool   `json:"dryRun"`
}

// MigrateImages rewrites legacy external image URLs into blob-hosted ones.
// Without a cityId the whole city collection is processed; failures on
// individual cities show up in the results instead of failing the request.
//
// POST /admin/migrate-images
func MigrateImages(migrator *ingest.Migrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MigrateImagesRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		report, err := migrator.Run(c.Request.Context(), ingest.Params{
			CityID: req.CityID,
			DryRun: req.DryRun,
		})
		if errors.Is(err, ingest.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		}
		if err != nil {
			respondInternal(c, err)
			return
		}

		if req.CityID != "" {
			detail := report.Details[0]
			switch {
			case req.DryRun:
				c.JSON(http.StatusOK, gin.H{
					"success":    true,
					"dryRun":     true,
					"entityName": detail.Name,
					"updates":    detail.Updates,
					"message":    fmt.Sprintf("%d image(s) would be migrated", len(detail.Updates)),
				})
			case detail.Status == ingest.StatusFailed:
				c.JSON(http.StatusOK, gin.H{
					"success":    false,
					"entityName": detail.Name,
					"error":      detail.Error,
					"message":    "migration failed",
				})
			case len(detail.Updates) > 0:
				body := gin.H{
					"success":    true,
					"entityName": detail.Name,
					"updates":    detail.Updates,
					"message":    fmt.Sprintf("migrated %d image(s)", len(detail.Updates)),
				}
				if detail.Error != "" {
					body["error"] = detail.Error
				}
				c.JSON(http.StatusOK, body)
			default:
				c.JSON(http.StatusOK, gin.H{
					"success":    true,
					"entityName": detail.Name,
					"message":    "no images needed migration",
				})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"dryRun":  req.DryRun,
			"results": report,
			"message": fmt.Sprintf("processed %d cities: %d migrated, %d skipped, %d failed",
				report.Total, report.Migrated, report.Skipped, report.Failed),
		})
	}
}

// respondInternal hides error detail unless debug mode is on.
func respondInternal(c *gin.Context, err error) {
	body := gin.H{"error": "Internal server error"}
	if config.DEBUG {
		body["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
