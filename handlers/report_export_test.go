package handlers

import (
	"testing"

	"gorm.io/datatypes"

	"sas-quotation/models"
)

func TestBuildQuotationWorkbook(t *testing.T) {
	quotations := []models.Quotation{
		{
			JobNumber:      "SASGEA160825002",
			SaleName:       "Anan",
			SaleEmail:      "anan@synergy-as.com",
			CustomerName:   "Khun Somchai",
			ProductType:    models.ProductGearMotor,
			QuotationSpeed: "ด่วน",
			Status:         models.StatusFulfilled,
			Timestamp:      "2025-08-16 09:00:00",
			Attachments: datatypes.JSONMap{
				models.RoleQuotationFile: "https://store.example/quotations/final.pdf",
			},
		},
		{
			JobNumber:   "SASSTC150825001",
			SaleName:    "Nok",
			ProductType: models.ProductStructure,
			Status:      models.StatusPending,
			Timestamp:   "2025-08-15 10:00:00",
		},
	}

	f, err := buildQuotationWorkbook(quotations)
	if err != nil {
		t.Fatalf("buildQuotationWorkbook returned error: %v", err)
	}
	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if header != "Job Number" {
		t.Errorf("A1 = %q, expected header Job Number", header)
	}

	first, _ := f.GetCellValue(sheet, "A2")
	if first != "SASGEA160825002" {
		t.Errorf("A2 = %q, expected SASGEA160825002", first)
	}

	status, _ := f.GetCellValue(sheet, "J2")
	if status != string(models.StatusFulfilled) {
		t.Errorf("J2 = %q, expected %q", status, models.StatusFulfilled)
	}

	fileURL, _ := f.GetCellValue(sheet, "L2")
	if fileURL != "https://store.example/quotations/final.pdf" {
		t.Errorf("L2 = %q, expected quotation file URL", fileURL)
	}

	// rows without attachments still export cleanly
	second, _ := f.GetCellValue(sheet, "A3")
	if second != "SASSTC150825001" {
		t.Errorf("A3 = %q, expected SASSTC150825001", second)
	}
	emptyURL, _ := f.GetCellValue(sheet, "L3")
	if emptyURL != "" {
		t.Errorf("L3 = %q, expected empty", emptyURL)
	}
}
