package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"sas-quotation/middleware"
	"sas-quotation/models"
)

// QuotationUsecase is the business surface the HTTP layer depends on.
type QuotationUsecase interface {
	Submit(ctx context.Context, form map[string]string, files map[string]*SubmittedFile) (*models.Quotation, error)
	Fulfill(ctx context.Context, id uuid.UUID, uploaderEmail string, file *SubmittedFile) error
	List() ([]models.Quotation, error)
}

// submitFormFields are the textual fields read off the request form.
var submitFormFields = []string{
	"sale_name",
	"sale_email",
	"customer_name",
	"customer_phone",
	"customer_company",
	"product_type",
	"purpose",
	"motor_model",
	"motor_unit",
	"gear_ratio",
	"controller",
	"other_info",
	"quotation_speed",
}

// submitFileFields are the file inputs read off the request form.
var submitFileFields = append(append([]string{}, models.ReplacementImageRoles...), "extra_file")

type QuotationHandler struct {
	svc QuotationUsecase
}

func NewQuotationHandler(svc QuotationUsecase) *QuotationHandler {
	return &QuotationHandler{svc: svc}
}

// Submit handles POST /api/v1/quotations (multipart form).
func (h *QuotationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// Parse the multipart form (max 50MB)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := make(map[string]string, len(submitFormFields))
	for _, field := range submitFormFields {
		form[field] = r.FormValue(field)
	}

	files := make(map[string]*SubmittedFile)
	for _, field := range submitFileFields {
		if f := readFormFile(r, field); f != nil {
			files[field] = f
		}
	}

	q, err := h.svc.Submit(r.Context(), form, files)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":         q.ID,
		"job_number": q.JobNumber,
		"status":     q.Status,
	})
}

// Fulfill handles POST /api/v1/quotations/{id}/fulfill. The uploader identity
// comes from the JWT claims.
func (h *QuotationHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid quotation id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file := readFormFile(r, "quotation_file")

	if err := h.svc.Fulfill(r.Context(), id, claims.Email, file); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":     id,
		"status": models.StatusFulfilled,
	})
}

// List handles GET /api/v1/quotations: the dashboard feed, newest first.
func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(quotations)
}

func readFormFile(r *http.Request, field string) *SubmittedFile {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logrus.Warnf("⚠️  Failed to read uploaded file %s: %v", field, err)
		return nil
	}

	return &SubmittedFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
}

func writeError(w http.ResponseWriter, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSONError(w, http.StatusBadRequest, ve.Error(), ve.Field)
	case errors.Is(err, ErrUnauthorizedUploader):
		writeJSONError(w, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, ErrQuotationNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error(), "")
	default:
		logrus.Errorf("❌ Internal error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]string{"error": msg}
	if field != "" {
		body["field"] = field
	}
	json.NewEncoder(w).Encode(body)
}
