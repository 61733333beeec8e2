// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendLeadNotification(to, doctorName, leadName, quizType string, score int, severity string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("leadHTML").Parse(leadHTMLTemplate))
	textTpl := template.Must(template.New("leadText").Parse(leadTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

type leadEmailData struct {
	DoctorName   string
	LeadName     string
	QuizType     string
	Score        int
	Severity     string
	DashboardURL string
	AppName      string
	Year         int
}

func (s *smtpMailService) SendLeadNotification(to, doctorName, leadName, quizType string, score int, severity string) error {
	data := leadEmailData{
		DoctorName:   doctorName,
		LeadName:     leadName,
		QuizType:     quizType,
		Score:        score,
		Severity:     severity,
		DashboardURL: strings.TrimRight(s.cfg.AppBaseURL, "/") + "/dashboard/leads",
		AppName:      s.cfg.AppName,
		Year:         time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}

	subject := fmt.Sprintf("New %s lead: %s (%s)", quizType, leadName, severity)
	return s.send(to, subject, hb.String(), tb.String())
}

const leadHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>New assessment lead</title>
</head>
<body style="font-family:-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;background:#f8fafc;color:#0f172a;padding:24px;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;padding:32px;border:1px solid #e2e8f0;">
    <h1 style="margin:0 0 16px;font-size:22px;">New assessment lead</h1>
    <p>Hi {{.DoctorName}},</p>
    <p><strong>{{.LeadName}}</strong> just completed the <strong>{{.QuizType}}</strong> assessment
       with a score of <strong>{{.Score}}</strong> ({{.Severity}}).</p>
    <p style="margin:24px 0;">
      <a href="{{.DashboardURL}}" style="background:#2563eb;color:#ffffff;text-decoration:none;padding:12px 24px;border-radius:8px;">View in dashboard</a>
    </p>
    <p style="color:#64748b;font-size:13px;">© {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

const leadTextTemplate = `New assessment lead

Hi {{.DoctorName}},

{{.LeadName}} just completed the {{.QuizType}} assessment with a score of {{.Score}} ({{.Severity}}).

View in dashboard: {{.DashboardURL}}

- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) formatFromHeader() string {
	if s.cfg.FromName == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if err = c.Auth(auth); err != nil {
			return err
		}
		return s.transmit(c, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	return s.transmit(c, to, msg.Bytes())
}

func (s *smtpMailService) transmit(c *smtp.Client, to string, msg []byte) error {
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
