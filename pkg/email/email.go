package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"time"

	"go-portfolio-backend/config"

	"github.com/google/uuid"
)

// Service is the mail dispatch gateway. It is constructed once at startup
// from configuration and shared across requests; nothing in it mutates
// after construction, so concurrent sends are safe.
type Service struct {
	host      string
	port      string
	secure    bool
	username  string
	password  string
	from      string
	directory Directory
	timeout   time.Duration
}

// ContactEmailData holds the validated submission handed to the gateway
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
	Category    string
}

// NewService creates the dispatch gateway from SMTP configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		host:     cfg.EmailHost,
		port:     cfg.EmailPort,
		secure:   cfg.EmailSecure,
		username: cfg.EmailUser,
		password: cfg.EmailPass,
		from:     cfg.EmailFrom,
		directory: Directory{
			"professional": cfg.ContactEmailProfessional,
			"personal":     cfg.ContactEmailPersonal,
			"educational":  cfg.ContactEmailEducational,
		},
		timeout: time.Duration(cfg.SMTPTimeoutSeconds) * time.Second,
	}
}

// IsConfigured checks if the gateway has valid SMTP configuration
func (s *Service) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}

// Directory exposes the recipient directory for resolution checks
func (s *Service) Directory() Directory {
	return s.directory
}

// contactTextTemplate is the plain-text part of contact form emails
const contactTextTemplate = `Name: %s
Email: %s
Category: %s

Message:
%s
`

// contactHTMLTemplate is the HTML part of contact form emails
const contactHTMLTemplate = `<div style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #38bdf8;">New contact form submission</h2>
  <p>You have received a new message from your portfolio contact form.</p>

  <div style="margin: 20px 0; padding: 15px; background-color: #f5f5f5; border-left: 4px solid #38bdf8;">
    <p><strong>Name:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> {{.SenderEmail}}</p>
    <p><strong>Category:</strong> {{.Category}}</p>
    <p><strong>Message:</strong></p>
    <div style="white-space: pre-wrap;">{{.Message}}</div>
  </div>

  <p style="font-size: 12px; color: #666;">This message was sent from your portfolio contact form. Reply to this email to answer the sender directly.</p>
</div>`

var htmlTmpl = template.Must(template.New("contact").Parse(contactHTMLTemplate))

// Send resolves the destination mailbox, performs the transport pre-flight
// and delivers the message. Exactly one attempt: a failure is returned as a
// classified *SendError and never retried here.
func (s *Service) Send(ctx context.Context, data ContactEmailData) (string, error) {
	// Recipient resolution is local and must short-circuit before any
	// network call
	to := s.directory.Resolve(data.Category)
	if to == "" {
		return "", &SendError{Kind: KindRecipientNotConfigured}
	}

	if !s.IsConfigured() {
		return "", &SendError{Kind: KindServiceUnavailable, Err: fmt.Errorf("smtp credentials not configured")}
	}

	// Build the full message before touching the network so a template
	// problem cannot surface as a half-sent mail
	messageID, msg, err := s.buildMessage(data, to)
	if err != nil {
		return "", &SendError{Kind: KindUnknown, Err: err}
	}

	// Pre-flight: dial and greet the relay. Failure here means the
	// transport is down, distinct from a rejected send.
	client, err := s.connect(ctx)
	if err != nil {
		return "", &SendError{Kind: KindServiceUnavailable, Err: err}
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return "", classify(err)
	}
	if err := client.Mail(s.envelopeFrom()); err != nil {
		return "", classify(err)
	}
	if err := client.Rcpt(to); err != nil {
		return "", classify(err)
	}

	w, err := client.Data()
	if err != nil {
		return "", classify(err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", classify(err)
	}
	if err := w.Close(); err != nil {
		return "", classify(err)
	}

	_ = client.Quit()

	return messageID, nil
}

// connect dials the relay and completes the greeting, upgrading to TLS
// either implicitly (secure=true) or via STARTTLS when the server offers it.
func (s *Service) connect(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, s.port)

	dialer := net.Dialer{Timeout: s.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	// Socket deadline caps every subsequent command round-trip; the hosting
	// layer owns any broader request timeout
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if s.secure {
		conn = tls.Client(conn, s.tlsConfig())
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return nil, err
	}

	if !s.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(s.tlsConfig()); err != nil {
				client.Close()
				return nil, err
			}
		}
	}

	return client, nil
}

func (s *Service) tlsConfig() *tls.Config {
	return &tls.Config{
		ServerName: s.host,
		MinVersion: tls.VersionTLS12,
	}
}

// envelopeFrom extracts the bare address for MAIL FROM; the From header may
// carry a display name
func (s *Service) envelopeFrom() string {
	if parsed, err := mail.ParseAddress(s.from); err == nil {
		return parsed.Address
	}
	return s.username
}

// buildMessage renders the multipart/alternative MIME message and returns
// the generated Message-ID alongside the raw bytes. The Reply-To header is
// always the submitter's address so the recipient can answer directly.
func (s *Service) buildMessage(data ContactEmailData, to string) (string, []byte, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	subject := fmt.Sprintf("Portfolio Contact [%s]: Message from %s", data.Category, data.SenderName)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=UTF-8"},
	})
	if err != nil {
		return "", nil, err
	}
	fmt.Fprintf(textPart, contactTextTemplate, data.SenderName, data.SenderEmail, data.Category, data.Message)

	htmlPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/html; charset=UTF-8"},
	})
	if err != nil {
		return "", nil, err
	}
	if err := htmlTmpl.Execute(htmlPart, data); err != nil {
		return "", nil, err
	}

	if err := mw.Close(); err != nil {
		return "", nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Reply-To: %s\r\n", data.SenderEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&msg, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	return messageID, msg.Bytes(), nil
}
