package routes

import (
	adminapi "southbound-app/internal/api/admin"
	citiesapi "southbound-app/internal/api/cities"
	countriesapi "southbound-app/internal/api/countries"
	imagesapi "southbound-app/internal/api/images"
	leadsapi "southbound-app/internal/api/leads"
	routesapi "southbound-app/internal/api/routes"
	tripsapi "southbound-app/internal/api/trips"
	"southbound-app/internal/app/http/middleware"
	"southbound-app/internal/infra/blob"
	"southbound-app/internal/ingest"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *blob.Store, ingestor *ingest.Ingestor, migrator *ingest.Migrator) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/cities", citiesapi.ListCities)
	r.GET("/cities/:id", citiesapi.GetCity)
	r.POST("/cities", citiesapi.CreateCity)
	r.PUT("/cities/:id", citiesapi.UpdateCity)
	r.DELETE("/cities/:id", citiesapi.DeleteCity)

	r.GET("/countries", countriesapi.ListCountries)
	r.GET("/countries/:id", countriesapi.GetCountry)
	r.POST("/countries", countriesapi.CreateCountry)
	r.PUT("/countries/:id", countriesapi.UpdateCountry)
	r.DELETE("/countries/:id", countriesapi.DeleteCountry)

	r.GET("/routes", routesapi.ListRoutes)
	r.GET("/routes/:id", routesapi.GetRoute)
	r.POST("/routes", routesapi.CreateRoute)
	r.PUT("/routes/:id", routesapi.UpdateRoute)
	r.DELETE("/routes/:id", routesapi.DeleteRoute)

	r.GET("/trips/templates", tripsapi.ListTemplates)
	r.GET("/trips/templates/:id", tripsapi.GetTemplate)
	r.POST("/trips/templates", tripsapi.CreateTemplate)
	r.PUT("/trips/templates/:id", tripsapi.UpdateTemplate)
	r.DELETE("/trips/templates/:id", tripsapi.DeleteTemplate)

	r.GET("/trips/cards", tripsapi.ListCards)
	r.POST("/trips/cards", tripsapi.CreateCard)
	r.PUT("/trips/cards/:id", tripsapi.UpdateCard)
	r.DELETE("/trips/cards/:id", tripsapi.DeleteCard)

	r.GET("/trips/default", tripsapi.GetDefaultTrip)
	r.POST("/trips/default", tripsapi.SetDefaultTrip)

	// ✅ Public enquiry form gets input sanitization
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/leads", leadsapi.CreateLead)

	r.GET("/leads", leadsapi.ListLeads)
	r.PUT("/leads/:id", leadsapi.UpdateLead)
	r.DELETE("/leads/:id", leadsapi.DeleteLead)

	r.POST("/images", imagesapi.Upload(store, ingestor))

	admin := r.Group("/admin")
	admin.POST("/migrate-images", adminapi.MigrateImages(migrator))
}
