package config

import (
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sas-quotation/models"
)

// SeedStaffUsers creates a staff account for every authorized uploader so the
// quotation team can log in and attach final files. Existing rows are left
// untouched.
func SeedStaffUsers() error {
	if DB == nil || App == nil {
		return errors.New("database not initialized")
	}

	defaultPassword := os.Getenv("STAFF_DEFAULT_PASSWORD")
	if defaultPassword == "" {
		defaultPassword = "changeme"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, email := range App.AuthorizedUploaders {
		var existing models.StaffUser
		err := DB.Where("lower(email) = ?", strings.ToLower(email)).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		u := models.StaffUser{
			Name:         strings.SplitN(email, "@", 2)[0],
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.StaffRoleQuotation,
			IsActive:     true,
		}
		if err := DB.Create(&u).Error; err != nil {
			logrus.Warnf("⚠️  Failed to seed staff user %s: %v", email, err)
			continue
		}
		logrus.Infof("✅ Seeded staff user %s", email)
	}

	return nil
}
