package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"

	"tradenomi-backend/config"
	"tradenomi-backend/internal/domain"
)

// SendFunc matches smtp.SendMail so tests can capture outgoing messages.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService sends the marketplace notifications via SMTP
type EmailService struct {
	host        string
	port        string
	username    string
	password    string
	fromEmail   string
	frontendURL string
	send        SendFunc
	templates   *template.Template
}

type newAdData struct {
	AuthorName string
	Ad         *domain.Ad
	Link       string
}

type answerData struct {
	AnswererName string
	Ad           *domain.Ad
	Answer       *domain.Answer
	Link         string
}

type cardData struct {
	Card *domain.BusinessCard
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:        cfg.SMTPHost,
		port:        cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		fromEmail:   cfg.MailFrom,
		frontendURL: cfg.FrontendURL,
		send:        smtp.SendMail,
		templates:   template.Must(template.New("mail").Parse(mailTemplates)),
	}
}

// WithSender replaces the SMTP transport.
func (s *EmailService) WithSender(send SendFunc) *EmailService {
	s.send = send
	return s
}

const mailTemplates = `
{{define "layout_start"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .content { padding: 20px; background: #f9f9f9; }
        .message-box { background: white; padding: 15px; border-left: 4px solid #0066cc; margin-top: 10px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="content">{{end}}
{{define "layout_end"}}
        </div>
        <div class="footer">
            <p>Voit muuttaa sähköposti-ilmoitusten asetuksia palvelun asetussivulla.</p>
        </div>
    </div>
</body>
</html>{{end}}
{{define "new_ad"}}{{template "layout_start"}}
            <h2>Uusi ilmoitus: {{.Ad.Data.Heading}}</h2>
            <p>{{.AuthorName}} jätti uuden ilmoituksen.</p>
            <div class="message-box">{{.Ad.Data.Description}}</div>
            <p><a href="{{.Link}}">Lue ilmoitus</a></p>
{{template "layout_end"}}{{end}}
{{define "answer"}}{{template "layout_start"}}
            <h2>Ilmoitukseesi on vastattu</h2>
            <p>{{.AnswererName}} vastasi ilmoitukseesi "{{.Ad.Data.Heading}}".</p>
            <div class="message-box">{{.Answer.Message}}</div>
            <p><a href="{{.Link}}">Näytä ilmoitus</a></p>
{{template "layout_end"}}{{end}}
{{define "business_card"}}{{template "layout_start"}}
            <h2>{{.Card.Name}} lähetti sinulle käyntikorttinsa</h2>
            <p>{{if .Card.Title}}{{.Card.Title}}<br>{{end}}{{.Card.Email}}{{if .Card.Phone}}<br>{{.Card.Phone}}{{end}}</p>
            {{if .Card.Message}}<div class="message-box">{{.Card.Message}}</div>{{end}}
{{template "layout_end"}}{{end}}
`

func (s *EmailService) NotifyNewAd(ctx context.Context, to string, ad *domain.Ad, authorName string) error {
	data := newAdData{AuthorName: authorName, Ad: ad, Link: s.adLink(ad.ID)}
	return s.deliver(ctx, to, "", "Uusi ilmoitus: "+ad.Data.Heading, "new_ad", data)
}

func (s *EmailService) NotifyAnswer(ctx context.Context, to string, ad *domain.Ad, answer *domain.Answer, answererName string) error {
	data := answerData{AnswererName: answererName, Ad: ad, Answer: answer, Link: s.adLink(ad.ID)}
	return s.deliver(ctx, to, "", "Vastaus ilmoitukseesi: "+ad.Data.Heading, "answer", data)
}

// SendBusinessCard replies go straight to the sender of the card.
func (s *EmailService) SendBusinessCard(ctx context.Context, to string, card *domain.BusinessCard) error {
	return s.deliver(ctx, to, card.Email, card.Name+" lähetti sinulle käyntikorttinsa", "business_card", cardData{Card: card})
}

func (s *EmailService) adLink(id int64) string {
	return fmt.Sprintf("%s/ilmoitukset/%d", s.frontendURL, id)
}

func (s *EmailService) deliver(ctx context.Context, to, replyTo, subject, tmpl string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("failed to execute email template %s: %w", tmpl, err)
	}

	msg := buildMessage(s.fromEmail, to, replyTo, subject, body.String())

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.send(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func buildMessage(from, to, replyTo, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if replyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", encodeHeader(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// encodeHeader leaves ASCII subjects untouched.
func encodeHeader(v string) string {
	return mime.QEncoding.Encode("utf-8", v)
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != "" && s.fromEmail != ""
}
