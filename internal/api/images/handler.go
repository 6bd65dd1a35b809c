package images

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"southbound-app/internal/infra/blob"
	"southbound-app/internal/ingest"
)

type UploadRequest struct {
	URL    string `json:"url"`
	Base64 string `json:"base64"`

	Category string `json:"category"`
	Name     string `json:"name"`
	Compress bool   `json:"compress"`
	Quality  int    `json:"quality"`

	// ReplaceUrl is an existing stored image this upload supersedes; it is
	// deleted best-effort after the new blob is written.
	ReplaceUrl string `json:"replaceUrl"`
}

// Upload ingests a remote URL or base64 payload into blob storage.
//
// POST /images
func Upload(store *blob.Store, ingestor *ingest.Ingestor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.URL == "" && req.Base64 == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either url or base64 is required"})
			return
		}

		category := req.Category
		if category == "" {
			category = "cities"
		}

		res, err := ingestor.Ingest(c.Request.Context(),
			ingest.Source{RemoteURL: req.URL, Base64Data: req.Base64},
			ingest.Options{
				Category: category,
				NameHint: req.Name,
				Compress: req.Compress,
				Quality:  req.Quality,
			})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}

		out := gin.H{"success": true, "url": res.URL}
		if res.Compression != nil {
			out["compression"] = res.Compression
		}

		// A replacement must never be rolled back because cleanup of the old
		// blob failed; the outcome is reported instead.
		if req.ReplaceUrl != "" && ingest.Classify(req.ReplaceUrl, store.Host()) == ingest.Stored {
			if err := store.Delete(c.Request.Context(), req.ReplaceUrl); err != nil {
				log.Printf("images: cleanup of replaced blob %s failed: %v", req.ReplaceUrl, err)
				out["originalCleanupFailed"] = true
			}
		}

		c.JSON(http.StatusOK, out)
	}
}
