package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/restaurant-reviews/internal/service"
)

// createReviewRequest is the POST /api/reviews body. Timestamps a client
// might send are not part of it and are dropped by the decoder.
type createReviewRequest struct {
	RestaurantID    flexString `json:"restaurantId"`
	RestaurantName  flexString `json:"restaurantName"`
	RestaurantImage flexString `json:"restaurantImage"`
	UserID          flexString `json:"userId"`
	UserName        flexString `json:"userName"`
	Rating          flexNumber `json:"rating"`
	Comment         flexString `json:"comment"`
}

type updateReviewRequest struct {
	Rating  flexNumber `json:"rating"`
	Comment flexString `json:"comment"`
	UserID  flexString `json:"userId"`
}

// ReviewHandler exposes review CRUD. All rules live in ReviewService; this
// type only translates HTTP to service calls and back.
type ReviewHandler struct {
	reviews *service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(reviews *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// HandleListByRestaurant returns a restaurant's reviews, newest first.
//
// HTTP: GET /api/reviews/{restaurantId}
func (h *ReviewHandler) HandleListByRestaurant(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// HandleListByUser returns a user's reviews, newest first.
//
// HTTP: GET /api/user-reviews/{userId}
func (h *ReviewHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch user reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// HandleCreate stores a new review and answers 201.
//
// HTTP: POST /api/reviews
// BODY: {"restaurantId","restaurantName"?,"restaurantImage"?,"userId","userName"?,"rating","comment"}
//
// createdAt/updatedAt are null in the response; they are resolved by the
// store and show up on the next list call.
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	h.logger.Info("creating review",
		slog.String("restaurantId", string(req.RestaurantID)),
		slog.String("userId", string(req.UserID)),
		slog.Float64("rating", float64(req.Rating)),
	)

	review, err := h.reviews.Create(r.Context(), service.CreateReviewInput{
		RestaurantID:    string(req.RestaurantID),
		RestaurantName:  string(req.RestaurantName),
		RestaurantImage: string(req.RestaurantImage),
		UserID:          string(req.UserID),
		UserName:        string(req.UserName),
		Rating:          float64(req.Rating),
		Comment:         string(req.Comment),
	})
	if err != nil {
		writeError(w, h.logger, err, "Failed to create review")
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

// HandleUpdate changes rating and comment on the caller's own review.
//
// HTTP: PUT /api/reviews/{id}
// BODY: {"rating","comment","userId"}
func (h *ReviewHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, h.logger, err)
		return
	}

	updated, err := h.reviews.Update(r.Context(),
		chi.URLParam(r, "id"),
		string(req.UserID),
		float64(req.Rating),
		string(req.Comment),
	)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update review")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete removes the caller's own review.
//
// HTTP: DELETE /api/reviews/{id}?userId=
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.reviews.Delete(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("userId"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete review")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
}
