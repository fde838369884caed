package routes

import (
	"togedog_server/controllers"
	"togedog_server/services"

	"github.com/gorilla/mux"
)

func RegisterMatchingRoutes(r *mux.Router, matchingService *services.MatchingService) {
	controller := controllers.NewMatchingController(matchingService)

	matchingRouter := r.PathPrefix("/api/matches").Subrouter()
	matchingRouter.HandleFunc("", controller.HandleCreateMatch).Methods("POST")
	matchingRouter.HandleFunc("", controller.HandleUpdateMatch).Methods("PATCH")
	matchingRouter.HandleFunc("", controller.HandleListMatches).Methods("GET").Queries("page", "{page}", "size", "{size}")
	matchingRouter.HandleFunc("/me", controller.HandleGetMyMatch).Methods("GET")
	matchingRouter.HandleFunc("/host/{email}", controller.HandleGetMatchByEmail).Methods("GET")
}
