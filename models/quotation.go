package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductType is the product category of a quotation request.
type ProductType string

const (
	ProductGearMotor          ProductType = "Gear Motor"
	ProductConveyorAutomation ProductType = "Conveyor & Automation"
	ProductStructure          ProductType = "Structure"
)

// QuotationStatus is the lifecycle state of a quotation. The Thai strings are
// the stored values; dashboards built on the existing data depend on them.
type QuotationStatus string

const (
	StatusPending   QuotationStatus = "รอใบเสนอราคา"
	StatusFulfilled QuotationStatus = "ส่งแล้ว"
)

// PurposeReplaceExisting marks a request for replacing an installed unit.
// Submissions with this purpose must carry all four reference photos.
const PurposeReplaceExisting = "วางแทนของเดิม"

// TimestampLayout is the sortable creation-time format stored on every record.
const TimestampLayout = "2006-01-02 15:04:05"

// Attachment roles. Keys of the Attachments map.
const (
	RoleOldModelImage = "old_model_image"
	RoleMotorImage    = "motor_image"
	RoleRatioImage    = "ratio_image"
	RoleInstallImage  = "install_image"
	RolePDF           = "pdf"
	RoleExtraFile     = "extra_file"
	RoleQuotationFile = "quotation_file"
)

// ReplacementImageRoles are the photos required when the purpose is
// PurposeReplaceExisting, in render order.
var ReplacementImageRoles = []string{
	RoleOldModelImage,
	RoleMotorImage,
	RoleRatioImage,
	RoleInstallImage,
}

// Quotation represents one pricing request and its fulfillment state.
type Quotation struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobNumber      string            `gorm:"size:20;uniqueIndex" json:"job_number"`
	SaleName       string            `gorm:"size:100;not null" json:"sale_name"`
	SaleEmail      string            `gorm:"size:100;not null" json:"sale_email"`
	CustomerName   string            `gorm:"size:100;not null" json:"customer_name"`
	Phone          string            `gorm:"size:30;not null" json:"phone"`
	Company        string            `gorm:"size:150;not null" json:"company"`
	ProductType    ProductType       `gorm:"size:50;not null" json:"product_type"`
	Purpose        string            `gorm:"size:100" json:"purpose"`
	MotorModel     string            `gorm:"size:100" json:"motor_model"`
	MotorUnit      string            `gorm:"size:50" json:"motor_unit"`
	Ratio          string            `gorm:"size:50" json:"ratio"`
	Controller     string            `gorm:"size:100" json:"controller"`
	OtherInfo      string            `gorm:"type:text" json:"other_info"`
	QuotationSpeed string            `gorm:"size:50;not null" json:"quotation_speed"`
	Timestamp      string            `gorm:"size:19;not null" json:"timestamp"`
	Status         QuotationStatus   `gorm:"size:30;default:'รอใบเสนอราคา'" json:"status"`
	Attachments    datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"attachments"`
	FulfilledBy    string            `gorm:"size:100" json:"fulfilled_by,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}

// AttachmentURL returns the stored URL for the given role, or "" if absent.
func (q *Quotation) AttachmentURL(role string) string {
	if q.Attachments == nil {
		return ""
	}
	if url, ok := q.Attachments[role].(string); ok {
		return url
	}
	return ""
}

// JobCode is the three-letter product code embedded in job numbers.
func (p ProductType) JobCode() string {
	switch p {
	case ProductGearMotor:
		return "GEA"
	case ProductConveyorAutomation:
		return "AUT"
	case ProductStructure:
		return "STC"
	default:
		return "XXX"
	}
}

// NewJobNumber builds a job number like SASGEA150825003: prefix, product
// code, submission date (ddmmyy) and a zero-padded queue number.
func NewJobNumber(p ProductType, t time.Time, queue int64) string {
	return fmt.Sprintf("SAS%s%s%03d", p.JobCode(), t.Format("020106"), queue)
}
