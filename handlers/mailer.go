package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"sas-quotation/config"
	"sas-quotation/models"
)

// Attachment is one file inlined into a notification mail.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NotificationSender delivers quotation notifications. Implementations are
// best-effort: failures are logged, never returned, because the record is
// already persisted when a notification goes out.
type NotificationSender interface {
	Notify(q *models.Quotation, attachments []Attachment)
	NotifyFulfilled(q *models.Quotation, fileURL string)
}

// SMTPMailer sends notifications over SMTP and records every attempt in
// notification_logs.
type SMTPMailer struct {
	cfg *config.Settings
	db  *gorm.DB
}

func NewSMTPMailer(cfg *config.Settings, db *gorm.DB) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, db: db}
}

// Notify mails the recipient list for the record's product category about a
// new quotation request.
func (m *SMTPMailer) Notify(q *models.Quotation, attachments []Attachment) {
	to, cc := ResolveRecipients(q.ProductType, m.cfg.EmailUser)
	subject := fmt.Sprintf("📨 ขอใบเสนอราคา (%s)", q.ProductType)
	body := buildNotificationBody(q)

	err := m.send(to, cc, subject, body, attachments)
	m.logAttempt(q, subject, to, cc, err)
	if err != nil {
		logrus.Errorf("❌ Error sending email for %s: %v", q.JobNumber, err)
		return
	}
	logrus.Infof("✅ Notification sent for %s to %s", q.JobNumber, strings.Join(to, ", "))
}

// NotifyFulfilled replies to the original submitter once the final quotation
// file is attached, cc'ing the category recipient list.
func (m *SMTPMailer) NotifyFulfilled(q *models.Quotation, fileURL string) {
	_, cc := ResolveRecipients(q.ProductType, m.cfg.EmailUser)
	to := []string{q.SaleEmail}
	subject := fmt.Sprintf("✅ ใบเสนอราคาพร้อมแล้ว (%s)", q.JobNumber)

	body := fmt.Sprintf(`เรียนคุณ %s

ใบเสนอราคาสำหรับงาน %s (%s) พร้อมแล้ว

👤 ลูกค้า: %s
🏢 บริษัท: %s
📎 ไฟล์ใบเสนอราคา: %s
📅 ส่งเมื่อ: %s
`, orDash(q.SaleName), q.JobNumber, q.ProductType, orDash(q.CustomerName), orDash(q.Company), fileURL, orDash(q.Timestamp))

	err := m.send(to, cc, subject, body, nil)
	m.logAttempt(q, subject, to, cc, err)
	if err != nil {
		logrus.Errorf("❌ Error sending fulfillment email for %s: %v", q.JobNumber, err)
	}
}

func (m *SMTPMailer) send(to, cc []string, subject, body string, attachments []Attachment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.EmailUser)
	msg.SetHeader("To", to...)
	if len(cc) > 0 {
		msg.SetHeader("Cc", cc...)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	for _, att := range attachments {
		att := att
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Data)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		msg.Attach(att.Filename, settings...)
	}

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.EmailUser, m.cfg.EmailPass)
	return d.DialAndSend(msg)
}

func (m *SMTPMailer) logAttempt(q *models.Quotation, subject string, to, cc []string, sendErr error) {
	if m.db == nil {
		return
	}
	entry := models.NotificationLog{
		QuotationID: &q.ID,
		Subject:     subject,
		Recipients:  pq.StringArray(to),
		Cc:          pq.StringArray(cc),
	}
	if sendErr != nil {
		entry.Error = sendErr.Error()
	}
	if err := m.db.Create(&entry).Error; err != nil {
		logrus.Warnf("⚠️  Failed to record notification log for %s: %v", q.JobNumber, err)
	}
}

// buildNotificationBody interpolates the record fields into the plain-text
// mail body. Missing values render as "-".
func buildNotificationBody(q *models.Quotation) string {
	return fmt.Sprintf(`📌 Sale: %s
📧 Sale Email: %s
👤 ลูกค้า: %s
📞 โทร: %s
🏢 บริษัท: %s
📦 สินค้า: %s
🔖 Job Number: %s
🎯 วัตถุประสงค์: %s
🔧 Model/Unit: %s / %s
⚙️ อัตราทด: %s
🔌 Controller: %s
📝 ข้อมูลอื่นๆ: %s
🚀 ความเร่งด่วน: %s
📅 ส่งเมื่อ: %s
`,
		orDash(q.SaleName), orDash(q.SaleEmail), orDash(q.CustomerName),
		orDash(q.Phone), orDash(q.Company), orDash(string(q.ProductType)),
		orDash(q.JobNumber), orDash(q.Purpose), orDash(q.MotorModel),
		orDash(q.MotorUnit), orDash(q.Ratio), orDash(q.Controller),
		orDash(q.OtherInfo), orDash(q.QuotationSpeed), orDash(q.Timestamp))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
