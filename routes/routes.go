package routes

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"sas-quotation/config"
	"sas-quotation/handlers"
	"sas-quotation/middleware"
)

func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	store, err := handlers.NewObjectStore(context.Background(), config.App)
	if err != nil {
		logrus.Fatalf("could not initialize object store: %v", err)
	}

	repo := handlers.NewQuotationRepository(config.DB)
	renderer := handlers.NewPDFRenderer(config.App.FontPath)
	mailer := handlers.NewSMTPMailer(config.App, config.DB)
	svc := handlers.NewQuotationService(repo, store, renderer, mailer, config.App)
	h := handlers.NewQuotationHandler(svc)

	// Public routes (no authentication required)
	r.HandleFunc("/api/v1/register", handlers.Register).Methods("POST")
	r.HandleFunc("/api/v1/login", handlers.Login).Methods("POST")
	r.HandleFunc("/api/v1/quotations", h.Submit).Methods("POST")
	r.HandleFunc("/api/v1/quotations", h.List).Methods("GET")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.App.UploadDir))),
	)

	// Protected routes (require authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)
	api.HandleFunc("/quotations/export", h.Export).Methods("GET")
	api.HandleFunc("/quotations/{id}/fulfill", h.Fulfill).Methods("POST")

	return r
}
