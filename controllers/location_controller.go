package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"togedog_server/services"
)

// LocationController handles HTTP requests for the geo-presence cache
type LocationController struct {
	LocationService *services.LocationService
	GeocodeService  *services.GeocodeService
}

// NewLocationController creates a new LocationController instance
func NewLocationController(locationService *services.LocationService, geocodeService *services.GeocodeService) *LocationController {
	return &LocationController{LocationService: locationService, GeocodeService: geocodeService}
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HandleCurrentLocation saves the caller's position and returns the
// reverse-geocoded address for it. The cache write happens first, so a
// geocoding failure never loses the position.
func (lc *LocationController) HandleCurrentLocation(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	location := lc.LocationService.SaveLocation(r.Context(), email, req.Latitude, req.Longitude)

	var address json.RawMessage
	if lc.GeocodeService != nil {
		var err error
		address, err = lc.GeocodeService.ReverseGeocode(r.Context(), req.Latitude, req.Longitude)
		if err != nil {
			log.Printf("Reverse geocoding failed for %s: %v", email, err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location": location,
		"address":  address,
	})
}

// HandleGetLocation returns the caller's cached position
func (lc *LocationController) HandleGetLocation(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	location, err := lc.LocationService.GetLocation(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if location == nil {
		http.Error(w, "no cached location", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, location)
}

// HandleDeleteLocation evicts the caller's cached position
func (lc *LocationController) HandleDeleteLocation(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	if err := lc.LocationService.DeleteLocation(r.Context(), email); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
