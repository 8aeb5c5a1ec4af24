// file: services/notification_service.go
package services

import (
	"fmt"
	"io"
	"log"

	"RunClub/config"
	"github.com/jung-kurt/gofpdf"
	"gopkg.in/gomail.v2"
)

type NotificationKind string

const (
	KindVerified NotificationKind = "verified"
	KindRejected NotificationKind = "rejected"
)

// NotificationPayload 通知内容，BibLabel 已经是补零后的展示值（或 "N/A"）
type NotificationPayload struct {
	PlayerName    string
	Email         string
	BibLabel      string
	EventTitle    string
	EventDate     string
	CategoryTitle string
	Reason        string
}

// Notifier 通知分发器接口。发送结果对审核状态流转永远是非致命的，
// 由调用方负责记录失败并继续。
type Notifier interface {
	Send(kind NotificationKind, payload NotificationPayload) error
}

// DefaultNotifier 全局通知分发器，main 启动时初始化；
// 未配置 SMTP 时保持为 nil，审核流程照常执行只是不发信
var DefaultNotifier Notifier

// EmailNotifier 基于 SMTP 的通知实现，审核通过的邮件附带号码布确认函 PDF
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// InitNotifier 根据配置初始化全局分发器
func InitNotifier(cfg *config.Config) {
	if cfg.SMTPHost == "" {
		log.Println("SMTP not configured, email notifications are disabled.")
		return
	}
	DefaultNotifier = &EmailNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.MailFrom,
	}
	log.Println("Email notifier initialized.")
}

func (n *EmailNotifier) Send(kind NotificationKind, p NotificationPayload) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", p.Email)

	switch kind {
	case KindVerified:
		m.SetHeader("Subject", fmt.Sprintf("Registration Confirmed - %s", p.EventTitle))
		m.SetBody("text/plain", fmt.Sprintf(
			"Dear %s,\n\nYour registration for %s (%s) has been verified.\nYour BIB number: %s\nEvent date: %s\n\nThe confirmation letter is attached. Please bring it on race day.\n\nRunClub",
			p.PlayerName, p.EventTitle, p.CategoryTitle, p.BibLabel, p.EventDate))
		m.Attach("bib_confirmation.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			return writeConfirmationPDF(w, p)
		}))
	case KindRejected:
		m.SetHeader("Subject", fmt.Sprintf("Registration Update - %s", p.EventTitle))
		m.SetBody("text/plain", fmt.Sprintf(
			"Dear %s,\n\nUnfortunately your registration for %s could not be verified.\nReason: %s\n\nYou may contact us or submit a new registration.\n\nRunClub",
			p.PlayerName, p.EventTitle, p.Reason))
	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}

	return n.dialer.DialAndSend(m)
}

// writeConfirmationPDF 生成号码布确认函
func writeConfirmationPDF(w io.Writer, p NotificationPayload) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 22)
	pdf.CellFormat(0, 14, "RunClub - BIB Confirmation", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 9, fmt.Sprintf("Participant: %s", p.PlayerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 9, fmt.Sprintf("Event: %s", p.EventTitle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 9, fmt.Sprintf("Category: %s", p.CategoryTitle), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 9, fmt.Sprintf("Date: %s", p.EventDate), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 48)
	pdf.CellFormat(0, 28, p.BibLabel, "1", 1, "C", false, 0, "")

	return pdf.Output(w)
}
