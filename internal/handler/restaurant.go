package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/restaurant-reviews/internal/catalog"
	"github.com/sakif/restaurant-reviews/internal/model"
)

// defaultLocation is only used for logging; listing never filters by it.
const defaultLocation = "South Africa"

// BusinessesResponse wraps restaurant lists the way the search provider
// does, so the client can switch between the two without changes.
type BusinessesResponse struct {
	Businesses []model.Restaurant `json:"businesses"`
}

// RestaurantHandler serves the static catalog.
type RestaurantHandler struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewRestaurantHandler(c *catalog.Catalog, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{catalog: c, logger: logger}
}

// HandleList returns every restaurant.
//
// HTTP: GET /api/restaurants?location=
//
// location is accepted and logged but does not filter the result.
func (h *RestaurantHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		location = defaultLocation
	}
	h.logger.Debug("listing restaurants", slog.String("location", location))

	writeJSON(w, http.StatusOK, BusinessesResponse{Businesses: h.catalog.List(location)})
}

// HandleSearch filters by name or city.
//
// HTTP: GET /api/restaurants/search?query=
func (h *RestaurantHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	writeJSON(w, http.StatusOK, BusinessesResponse{Businesses: h.catalog.Search(query)})
}

// HandleGetByID returns one restaurant or 404.
//
// HTTP: GET /api/restaurants/{id}
func (h *RestaurantHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	restaurant, err := h.catalog.GetByID(id)
	if err != nil {
		h.logger.Info("restaurant not found",
			slog.String("id", id),
			slog.Any("available", h.catalog.IDs()),
		)
		writeError(w, h.logger, err, "Failed to fetch restaurant details")
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}
