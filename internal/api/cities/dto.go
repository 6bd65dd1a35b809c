package cities

// ---------- requests

type CreateCityRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Region  string `json:"region"`

	Description string `json:"description"`
	BestSeason  string `json:"best_season"`

	Highlights []string `json:"highlights"`
	Activities []string `json:"activities"`

	ImageUrl            string   `json:"image_url"`
	ImageUrls           []string `json:"image_urls"`
	HighlightImages     []string `json:"highlight_images"`
	ActivityImages      []string `json:"activity_images"`
	AccommodationImages []string `json:"accommodation_images"`
}

type UpdateCityRequest struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Region  *string `json:"region"`

	Description *string `json:"description"`
	BestSeason  *string `json:"best_season"`

	Highlights *[]string `json:"highlights"`
	Activities *[]string `json:"activities"`

	ImageUrl            *string   `json:"image_url"`
	ImageUrls           *[]string `json:"image_urls"`
	HighlightImages     *[]string `json:"highlight_images"`
	ActivityImages      *[]string `json:"activity_images"`
	AccommodationImages *[]string `json:"accommodation_images"`
}
