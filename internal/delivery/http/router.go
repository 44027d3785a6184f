package http

import (
	"net/http"

	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	doctorHandler  *handler.DoctorHandler
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		doctorHandler:  doctorHandler,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctor directory
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
