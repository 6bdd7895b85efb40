package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"sas-quotation/models"
)

var exportColumns = []string{
	"Job Number", "Sale", "Sale Email", "Customer", "Phone", "Company",
	"Product", "Purpose", "Urgency", "Status", "Submitted At", "Quotation File",
}

// Export handles GET /api/v1/quotations/export and streams the dashboard as
// an Excel workbook, newest first.
func (h *QuotationHandler) Export(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.svc.List()
	if err != nil {
		writeError(w, err)
		return
	}

	f, err := buildQuotationWorkbook(quotations)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("quotations_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(buffer.Bytes())
}

func buildQuotationWorkbook(quotations []models.Quotation) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for row, q := range quotations {
		values := []interface{}{
			q.JobNumber, q.SaleName, q.SaleEmail, q.CustomerName, q.Phone,
			q.Company, string(q.ProductType), q.Purpose, q.QuotationSpeed,
			string(q.Status), q.Timestamp, q.AttachmentURL(models.RoleQuotationFile),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
