package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings is the explicit configuration object injected into the quotation
// services at startup. Every value comes from the environment (or .env).
type Settings struct {
	DatabaseDSN string
	Port        string

	// Outbound mail
	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  int

	// Object storage
	UseGCS        bool
	GCSBucket     string
	UploadDir     string
	PublicBaseURL string

	// PDF rendering
	FontPath string

	// Auth
	JWTSecret           string
	AuthorizedUploaders []string
}

// defaultAuthorizedUploaders may attach final quotation files. Overridable
// via AUTHORIZED_UPLOADERS (comma separated).
var defaultAuthorizedUploaders = []string{
	"Somyot@synergy-as.com",
	"sas04@synergy-as.com",
	"sas06@synergy-as.com",
	"kongkiat@synergy-as.com",
	"traiwit@synergy-as.com",
}

func LoadSettings() *Settings {
	s := &Settings{
		DatabaseDSN:   os.Getenv("DB_DSN"),
		Port:          getenv("PORT", "8080"),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getenvInt("SMTP_PORT", 587),
		GCSBucket:     getenv("GCS_BUCKET", "sas-transmission.firebasestorage.app"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
		FontPath:      getenv("PDF_FONT_PATH", "static/fonts/THSarabunNew.ttf"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	// Cloud Run sets K_SERVICE; GOOGLE_APPLICATION_CREDENTIALS means a service
	// account is available either way.
	s.UseGCS = os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""

	if raw := os.Getenv("AUTHORIZED_UPLOADERS"); raw != "" {
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				s.AuthorizedUploaders = append(s.AuthorizedUploaders, e)
			}
		}
	} else {
		s.AuthorizedUploaders = defaultAuthorizedUploaders
	}

	return s
}

// IsAuthorizedUploader reports whether the given email may attach final
// quotation files. Comparison is case-insensitive, as mail addresses are.
func (s *Settings) IsAuthorizedUploader(email string) bool {
	for _, allowed := range s.AuthorizedUploaders {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
