package handlers

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sas-quotation/models"
)

// QuotationRepository is the append-only store of quotation records.
type QuotationRepository interface {
	Create(q *models.Quotation) error
	GetByID(id uuid.UUID) (*models.Quotation, error)
	// UpdateFulfillment atomically flips the record to fulfilled, attaches the
	// final file URL and records the uploader.
	UpdateFulfillment(id uuid.UUID, fileURL, uploader string) error
	// ListAll returns every record, newest first.
	ListAll() ([]models.Quotation, error)
	Count() (int64, error)
}

// GormQuotationRepository is the Postgres implementation.
type GormQuotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

func (r *GormQuotationRepository) Create(q *models.Quotation) error {
	return r.db.Create(q).Error
}

func (r *GormQuotationRepository) GetByID(id uuid.UUID) (*models.Quotation, error) {
	var q models.Quotation
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}
	return &q, nil
}

func (r *GormQuotationRepository) UpdateFulfillment(id uuid.UUID, fileURL, uploader string) error {
	// Single UPDATE so the status flip, file URL and uploader become visible
	// together. jsonb || merges the new attachment role into the map. Only
	// pending rows match; a fulfilled record is never overwritten, so the
	// loser of a concurrent fulfill sees not-found.
	res := r.db.Model(&models.Quotation{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":       models.StatusFulfilled,
			"fulfilled_by": uploader,
			"attachments":  gorm.Expr("attachments || ?", datatypes.JSONMap{models.RoleQuotationFile: fileURL}),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuotationNotFound
	}
	return nil
}

func (r *GormQuotationRepository) ListAll() ([]models.Quotation, error) {
	var quotations []models.Quotation
	if err := r.db.Order("timestamp DESC").Find(&quotations).Error; err != nil {
		return nil, err
	}
	return quotations, nil
}

func (r *GormQuotationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Quotation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
