package handlers

import "sas-quotation/models"

// recipientEntry is one row of the recipient resolution table.
type recipientEntry struct {
	To []string
	Cc []string
}

// recipientTable maps a product category to the mail addresses notified about
// it. This is the single authoritative copy of the lists; do not inline them
// at call sites.
var recipientTable = map[models.ProductType]recipientEntry{
	models.ProductGearMotor: {
		To: []string{"Somyot@synergy-as.com"},
		Cc: []string{"sas04@synergy-as.com", "sas06@synergy-as.com", "kongkiat@synergy-as.com", "traiwit@synergy-as.com"},
	},
	models.ProductConveyorAutomation: {
		To: []string{"matinee@synergy-as.com", "wiroj@synergy-as.com", "Somyot@synergy-as.com"},
		Cc: []string{"sas07@synergy-as.com", "sas06@synergy-as.com", "kongkiat@synergy-as.com", "traiwit@synergy-as.com"},
	},
	models.ProductStructure: {
		To: []string{"design_pp@hotmail.com", "designsas2024@gmail.com", "tanin@synergy-as.com", "Sukitkongprom@gmail.com", "SAS03@synergy-as.com", "sas04@synergy-as.com"},
		Cc: []string{"design_pp@hotmail.com", "designsas2024@gmail.com", "tanin@synergy-as.com", "Sukitkongprom@gmail.com", "SAS03@synergy-as.com", "sas07@synergy-as.com", "sas06@synergy-as.com", "kongkiat@synergy-as.com", "traiwit@synergy-as.com", "sassynergy2024@outlook.com"},
	},
}

// ResolveRecipients returns the to/cc lists for a product category. Unknown
// categories fall back to the configured sender address so the request is
// never silently dropped.
func ResolveRecipients(product models.ProductType, fallback string) (to []string, cc []string) {
	if entry, ok := recipientTable[product]; ok {
		return entry.To, entry.Cc
	}
	return []string{fallback}, nil
}
