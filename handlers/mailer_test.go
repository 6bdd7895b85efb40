package handlers

import (
	"strings"
	"testing"

	"sas-quotation/models"
)

func TestBuildNotificationBody(t *testing.T) {
	q := &models.Quotation{
		JobNumber:      "SASGEA150825001",
		SaleName:       "Anan",
		SaleEmail:      "anan@synergy-as.com",
		CustomerName:   "Khun Somchai",
		Phone:          "0812345678",
		Company:        "Thai Food Machinery Co., Ltd.",
		ProductType:    models.ProductGearMotor,
		Purpose:        models.PurposeReplaceExisting,
		MotorModel:     "GM-200",
		QuotationSpeed: "ด่วน",
		Timestamp:      "2025-08-15 10:30:00",
	}

	body := buildNotificationBody(q)

	for _, want := range []string{
		"📌 Sale: Anan",
		"📧 Sale Email: anan@synergy-as.com",
		"👤 ลูกค้า: Khun Somchai",
		"📦 สินค้า: Gear Motor",
		"🔖 Job Number: SASGEA150825001",
		"🎯 วัตถุประสงค์: " + models.PurposeReplaceExisting,
		"📅 ส่งเมื่อ: 2025-08-15 10:30:00",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\n%s", want, body)
		}
	}

	// blank fields render as "-"
	if !strings.Contains(body, "⚙️ อัตราทด: -") {
		t.Errorf("expected dash placeholder for empty ratio\n%s", body)
	}
	if !strings.Contains(body, "🔌 Controller: -") {
		t.Errorf("expected dash placeholder for empty controller\n%s", body)
	}
}

func TestOrDash(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "-"},
		{"   ", "-"},
		{"value", "value"},
		{" value ", " value "},
	}

	for _, tt := range tests {
		if got := orDash(tt.input); got != tt.expected {
			t.Errorf("orDash(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
