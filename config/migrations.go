package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"sas-quotation/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250801_create_quotation_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Quotation{}, &models.StaffUser{}, &models.NotificationLog{})
			},
		},
		{
			ID: "20250812_add_quotation_timestamp_index",
			Migrate: func(tx *gorm.DB) error {
				// Dashboard and exports sort newest first
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_quotations_timestamp_desc ON quotations (timestamp DESC)").Error
			},
		},
		{
			ID: "20250820_add_notification_log_quotation_index",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_notification_logs_quotation_id ON notification_logs (quotation_id)").Error
			},
		},
	})
	return m.Migrate()
}
