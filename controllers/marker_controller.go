package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"togedog_server/models"
	"togedog_server/services"
	"togedog_server/socket"
)

// MarkerController handles HTTP requests for map markers
type MarkerController struct {
	MarkerService *services.MarkerService
	Hub           *socket.MapHub
}

// NewMarkerController creates a new MarkerController instance
func NewMarkerController(markerService *services.MarkerService, hub *socket.MapHub) *MarkerController {
	return &MarkerController{MarkerService: markerService, Hub: hub}
}

// HandleSaveMarker saves the caller's map pin and notifies map watchers
func (mc *MarkerController) HandleSaveMarker(w http.ResponseWriter, r *http.Request) {
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

	markerKey := models.MarkerKeyPrefix + email
	if err := mc.MarkerService.SaveMarker(r.Context(), markerKey, req.Latitude, req.Longitude, email); err != nil {
		writeServiceError(w, err)
		return
	}

	mc.Hub.BroadcastMarkerSaved(&models.Marker{
		Email:     email,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Marker saved successfully"})
}

// HandleGetMarkers lists every active marker on the map
func (mc *MarkerController) HandleGetMarkers(w http.ResponseWriter, r *http.Request) {
	keys, err := mc.MarkerService.GetKeysByPattern(r.Context(), models.MarkerKeyPrefix+"*")
	if err != nil {
		writeServiceError(w, err)
		return
	}

	markers := make([]*models.Marker, 0, len(keys))
	for _, key := range keys {
		marker, err := mc.MarkerService.GetMarker(r.Context(), key)
		if err != nil {
			log.Printf("Skipping unreadable marker '%s': %v", key, err)
			continue
		}
		if marker != nil {
			markers = append(markers, marker)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"markers": markers})
}

// HandleDeleteMarker removes the caller's map pin
func (mc *MarkerController) HandleDeleteMarker(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r)
	if email == "" {
		http.Error(w, "X-User-Email header is required", http.StatusUnauthorized)
		return
	}

	if err := mc.MarkerService.DeleteMarker(r.Context(), models.MarkerKeyPrefix+email); err != nil {
		writeServiceError(w, err)
		return
	}

	mc.Hub.BroadcastMarkerDeleted(email)
	w.WriteHeader(http.StatusOK)
}
