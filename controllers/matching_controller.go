package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"togedog_server/models"
	"togedog_server/services"
)

// MatchingController handles HTTP requests for the matching lifecycle
type MatchingController struct {
	MatchingService *services.MatchingService
}

// NewMatchingController creates a new MatchingController instance
func NewMatchingController(matchingService *services.MatchingService) *MatchingController {
	return &MatchingController{MatchingService: matchingService}
}

type createMatchRequest struct {
	GuestEmail string  `json:"guestEmail,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type updateMatchRequest struct {
	MatchStatus models.MatchStatus `json:"matchStatus"`
}

// HandleCreateMatch opens or moves the caller's hosted match
func (mc *MatchingController) HandleCreateMatch(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	matching, err := mc.MatchingService.CreateMatch(r.Context(), email, req.GuestEmail, req.Latitude, req.Longitude)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, matching)
}

// HandleUpdateMatch applies a status change to the caller's hosted match
func (mc *MatchingController) HandleUpdateMatch(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	var req updateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	matching, err := mc.MatchingService.UpdateMatch(r.Context(), email, req.MatchStatus)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matching)
}

// HandleGetMyMatch returns the caller's own hosted match
func (mc *MatchingController) HandleGetMyMatch(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	matching, err := mc.MatchingService.FindHostedMatch(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matching)
}

// HandleGetMatchByEmail returns the hosted match of the member in the path
func (mc *MatchingController) HandleGetMatchByEmail(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	hostEmail := mux.Vars(r)["email"]
	matching, err := mc.MatchingService.FindHostedMatchByEmail(r.Context(), hostEmail, email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matching)
}

// HandleListMatches returns one page of matches, newest first
func (mc *MatchingController) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		http.Error(w, "page is required and must be a number", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil {
		http.Error(w, "size is required and must be a number", http.StatusBadRequest)
		return
	}

	matchings, err := mc.MatchingService.FindMatches(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matchings,
		"page":    page,
		"size":    size,
	})
}
