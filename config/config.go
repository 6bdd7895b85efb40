package config

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// App holds the runtime settings. Constructed once in Connect, read-only afterwards.
var App *Settings

func Connect() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logrus.Infoln("No .env file found, using system environment variables")
	}

	App = LoadSettings()

	var err error
	DB, err = gorm.Open(postgres.Open(App.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
}
