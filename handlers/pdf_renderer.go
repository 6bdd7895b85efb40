package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/signintech/gopdf"
	"github.com/sirupsen/logrus"

	"sas-quotation/models"
)

// DocumentRenderer produces the summary document for a quotation record.
type DocumentRenderer interface {
	Render(q *models.Quotation) ([]byte, error)
}

const fontFamily = "THSarabunNew"

// Layout constants, in points. A4 portrait.
const (
	cm         = 28.3465
	leftMargin = 2 * cm
	topMargin  = 2 * cm
	lineHeight = 1.2 * cm
	imageSize  = 6 * cm
)

// imageLabels maps attachment roles to their printed captions, in render order.
var imageLabels = map[string]string{
	models.RoleOldModelImage: "รูป: Old Model",
	models.RoleMotorImage:    "รูป: Motor",
	models.RoleRatioImage:    "รูป: Ratio",
	models.RoleInstallImage:  "รูป: Install",
}

// PDFRenderer draws a quotation record onto A4 pages using a Thai-capable
// TTF font. Photos are fetched from their stored URLs; a fetch or decode
// failure produces a placeholder line, never an aborted render.
type PDFRenderer struct {
	fontPath string
	client   *http.Client
}

func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{
		fontPath: fontPath,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (r *PDFRenderer) Render(q *models.Quotation) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	if err := pdf.AddTTFFont(fontFamily, r.fontPath); err != nil {
		return nil, fmt.Errorf("load font %s: %w", r.fontPath, err)
	}

	pageHeight := gopdf.PageSizeA4.H
	y := topMargin

	// The current font carries over to new pages.
	newPage := func() {
		pdf.AddPage()
		y = topMargin
	}

	drawLine := func(text string) {
		if y > pageHeight-topMargin {
			newPage()
		}
		pdf.SetX(leftMargin)
		pdf.SetY(y)
		pdf.Cell(nil, text)
		y += lineHeight
	}

	drawField := func(label, value string) {
		drawLine(fmt.Sprintf("%s: %s", label, value))
	}

	if err := pdf.SetFont(fontFamily, "", 22); err != nil {
		return nil, fmt.Errorf("set font: %w", err)
	}
	drawLine("รายการขอใบเสนอราคาจาก Sale")
	y += 0.8 * cm
	if err := pdf.SetFont(fontFamily, "", 16); err != nil {
		return nil, fmt.Errorf("set font: %w", err)
	}

	// Quotation details
	drawField("Job Number", q.JobNumber)
	drawField("Speed Controller / Driver", q.Controller)
	drawField("อัตราทด", q.Ratio)
	drawField("Model ที่ต้องการ", q.MotorModel)
	drawField("หน่วย (W/HP/kW)", q.MotorUnit)
	drawField("ข้อมูลจำเป็นอื่น ๆ", q.OtherInfo)
	drawField("ประเภทใบเสนอราคา", q.QuotationSpeed)
	y += 1 * cm

	// Sale and customer details
	drawField("ชื่อเซลล์", q.SaleName)
	drawField("อีเมลเซลล์", q.SaleEmail)
	drawField("ชื่อลูกค้า", q.CustomerName)
	drawField("เบอร์โทร", q.Phone)
	drawField("บริษัทลูกค้า", q.Company)
	drawField("วัตถุประสงค์", q.Purpose)
	drawField("วันที่ส่งข้อมูล", q.Timestamp)
	y += 1 * cm

	// Attached photos, 6x6cm each below its caption
	for _, role := range models.ReplacementImageRoles {
		url := q.AttachmentURL(role)
		if url == "" {
			continue
		}
		label := imageLabels[role]

		if y > pageHeight-(imageSize+2*cm) {
			newPage()
		}

		holder, err := r.fetchImage(url)
		if err != nil {
			logrus.Warnf("⚠️  Could not attach %s for %s: %v", role, q.JobNumber, err)
			drawLine(label + " - แนบไม่ได้")
			continue
		}

		drawLine(label)
		if err := pdf.ImageByHolder(holder, leftMargin, y, &gopdf.Rect{W: imageSize, H: imageSize}); err != nil {
			logrus.Warnf("⚠️  Could not draw %s for %s: %v", role, q.JobNumber, err)
			drawLine(label + " - แนบไม่ได้")
			continue
		}
		y += imageSize + 0.5*cm
	}

	return pdf.GetBytesPdf(), nil
}

func (r *PDFRenderer) fetchImage(url string) (gopdf.ImageHolder, error) {
	resp, err := r.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return gopdf.ImageHolderByBytes(data)
}
