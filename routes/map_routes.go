package routes

import (
	"togedog_server/controllers"
	"togedog_server/services"
	"togedog_server/socket"

	"github.com/gorilla/mux"
)

func RegisterMapRoutes(
	r *mux.Router,
	locationService *services.LocationService,
	markerService *services.MarkerService,
	geocodeService *services.GeocodeService,
	hub *socket.MapHub,
) {
	locationController := controllers.NewLocationController(locationService, geocodeService)
	markerController := controllers.NewMarkerController(markerService, hub)

	mapRouter := r.PathPrefix("/api").Subrouter()
	mapRouter.HandleFunc("/currentLocation", locationController.HandleCurrentLocation).Methods("POST")
	mapRouter.HandleFunc("/location", locationController.HandleGetLocation).Methods("GET")
	mapRouter.HandleFunc("/location", locationController.HandleDeleteLocation).Methods("DELETE")
	mapRouter.HandleFunc("/save-marker", markerController.HandleSaveMarker).Methods("POST")
	mapRouter.HandleFunc("/markers", markerController.HandleGetMarkers).Methods("GET")
	mapRouter.HandleFunc("/marker", markerController.HandleDeleteMarker).Methods("DELETE")
}
