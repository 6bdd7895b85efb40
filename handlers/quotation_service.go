package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sas-quotation/config"
	"sas-quotation/models"
	"sas-quotation/utils"
)

// SubmittedFile is one uploaded file from the request form.
type SubmittedFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// requiredFields must be present on every submission.
var requiredFields = []string{
	"sale_name",
	"sale_email",
	"customer_name",
	"customer_phone",
	"customer_company",
	"product_type",
	"quotation_speed",
}

// allowedDocExtensions is the extension allow-list for extra attachments and
// final quotation files.
var allowedDocExtensions = map[string]bool{
	".pdf":  true,
	".xls":  true,
	".xlsx": true,
}

// QuotationService coordinates validation, uploads, document rendering,
// persistence and notification for the quotation intake workflow.
type QuotationService struct {
	repo     QuotationRepository
	store    ObjectStore
	renderer DocumentRenderer
	mailer   NotificationSender
	cfg      *config.Settings
}

func NewQuotationService(repo QuotationRepository, store ObjectStore, renderer DocumentRenderer, mailer NotificationSender, cfg *config.Settings) *QuotationService {
	return &QuotationService{
		repo:     repo,
		store:    store,
		renderer: renderer,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Submit validates a request form, uploads its files, persists the record and
// notifies the category recipients. All validation happens before the first
// upload; a validation failure has no side effects.
func (s *QuotationService) Submit(ctx context.Context, form map[string]string, files map[string]*SubmittedFile) (*models.Quotation, error) {
	for _, field := range requiredFields {
		if strings.TrimSpace(form[field]) == "" {
			return nil, validationErr(field, "required field is missing")
		}
	}

	product := models.ProductType(form["product_type"])
	purpose := form["purpose"]

	// Replacing an installed unit requires all four reference photos.
	if purpose == models.PurposeReplaceExisting {
		for _, field := range models.ReplacementImageRoles {
			if f := files[field]; f == nil || f.Filename == "" || len(f.Data) == 0 {
				return nil, validationErr(field, "photo is required when replacing an existing unit")
			}
		}
	}

	// Everything except Gear Motor must bring its own spec sheet.
	var extra *SubmittedFile
	if product != models.ProductGearMotor {
		extra = files["extra_file"]
		if extra == nil || extra.Filename == "" || len(extra.Data) == 0 {
			return nil, validationErr("extra_file", "attachment is required for this product type")
		}
		if !allowedExtension(extra.Filename) {
			return nil, validationErr("extra_file", "only pdf, xls or xlsx files are accepted")
		}
	}

	now := time.Now()
	count, err := s.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("assign queue number: %w", err)
	}

	q := &models.Quotation{
		ID:             uuid.New(),
		JobNumber:      models.NewJobNumber(product, now, count+1),
		SaleName:       form["sale_name"],
		SaleEmail:      form["sale_email"],
		CustomerName:   form["customer_name"],
		Phone:          form["customer_phone"],
		Company:        form["customer_company"],
		ProductType:    product,
		Purpose:        purpose,
		MotorModel:     form["motor_model"],
		MotorUnit:      form["motor_unit"],
		Ratio:          form["gear_ratio"],
		Controller:     form["controller"],
		OtherInfo:      form["other_info"],
		QuotationSpeed: form["quotation_speed"],
		Timestamp:      now.Format(models.TimestampLayout),
		Status:         models.StatusPending,
		Attachments:    datatypes.JSONMap{},
	}

	var attachments []Attachment

	// Upload every present photo first so the rendered document can embed it.
	for _, field := range models.ReplacementImageRoles {
		img := files[field]
		if img == nil || img.Filename == "" {
			continue
		}
		url, err := s.store.Put(ctx, objectPath("uploads", now, img.Filename), img.Data, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", field, err)
		}
		q.Attachments[field] = url
		attachments = append(attachments, Attachment{
			Filename:    img.Filename,
			ContentType: img.ContentType,
			Data:        img.Data,
		})
	}

	if product == models.ProductGearMotor {
		pdfBytes, err := s.renderer.Render(q)
		if err != nil {
			return nil, fmt.Errorf("render document: %w", err)
		}
		filename := q.JobNumber + ".pdf"
		url, err := s.store.Put(ctx, "pdf/"+filename, pdfBytes, "application/pdf")
		if err != nil {
			return nil, fmt.Errorf("upload document: %w", err)
		}
		q.Attachments[models.RolePDF] = url
		attachments = append(attachments, Attachment{
			Filename:    filename,
			ContentType: "application/pdf",
			Data:        pdfBytes,
		})
	} else {
		url, err := s.store.Put(ctx, objectPath("attachments", now, extra.Filename), extra.Data, docContentType(extra))
		if err != nil {
			return nil, fmt.Errorf("upload attachment: %w", err)
		}
		q.Attachments[models.RoleExtraFile] = url
		attachments = append(attachments, Attachment{
			Filename:    extra.Filename,
			ContentType: docContentType(extra),
			Data:        extra.Data,
		})
	}

	if err := s.repo.Create(q); err != nil {
		return nil, fmt.Errorf("persist quotation: %w", err)
	}

	// Best-effort: the record is already committed, a mail outage must not
	// fail the submission.
	s.mailer.Notify(q, attachments)

	return q, nil
}

// Fulfill attaches the final quotation file to a record, flips it to
// fulfilled and replies to the original submitter.
func (s *QuotationService) Fulfill(ctx context.Context, id uuid.UUID, uploaderEmail string, file *SubmittedFile) error {
	if !s.cfg.IsAuthorizedUploader(uploaderEmail) {
		return ErrUnauthorizedUploader
	}
	if file == nil || file.Filename == "" || len(file.Data) == 0 {
		return validationErr("quotation_file", "no file selected")
	}
	if !allowedExtension(file.Filename) {
		return validationErr("quotation_file", "only pdf, xls or xlsx files are accepted")
	}

	q, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	// A fulfilled record is final. Rejecting here also spares the upload;
	// the conditional update below still guards against a concurrent fulfill.
	if q.Status != models.StatusPending {
		return ErrQuotationNotFound
	}

	url, err := s.store.Put(ctx, objectPath("quotations", time.Now(), file.Filename), file.Data, docContentType(file))
	if err != nil {
		return fmt.Errorf("upload quotation file: %w", err)
	}

	if err := s.repo.UpdateFulfillment(id, url, uploaderEmail); err != nil {
		return err
	}

	q.Status = models.StatusFulfilled
	q.FulfilledBy = uploaderEmail
	if q.Attachments == nil {
		q.Attachments = datatypes.JSONMap{}
	}
	q.Attachments[models.RoleQuotationFile] = url

	s.mailer.NotifyFulfilled(q, url)
	return nil
}

// List returns all quotation records, most recent first.
func (s *QuotationService) List() ([]models.Quotation, error) {
	return s.repo.ListAll()
}

// objectPath namespaces an upload under a folder with a timestamp so paths
// never collide.
func objectPath(folder string, t time.Time, filename string) string {
	return fmt.Sprintf("%s/%s_%s", folder, t.Format("20060102_150405"), utils.SecureFilename(filename))
}

func allowedExtension(filename string) bool {
	return allowedDocExtensions[strings.ToLower(filepath.Ext(filename))]
}

// docContentType falls back from the uploaded content type to one derived
// from the extension.
func docContentType(f *SubmittedFile) string {
	if f.ContentType != "" {
		return f.ContentType
	}
	switch strings.ToLower(filepath.Ext(f.Filename)) {
	case ".pdf":
		return "application/pdf"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
