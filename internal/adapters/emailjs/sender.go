// Package emailjs implements the report sender secondary port against
// the EmailJS HTTP API. The report travels as template parameters: the
// shift label plus the touched locations rendered as HTML table rows.
package emailjs

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/example/patrol/internal/ports/secondary"
)

const (
	defaultBaseURL = "https://api.emailjs.com"
	sendPath       = "/api/v1.0/email/send"
)

// Reference deployment credentials, overridable via config.
const (
	defaultServiceID  = "service_785wfif"
	defaultTemplateID = "template_70klndz"
	defaultPublicKey  = "PXlRgcuYyDEu_pLHZ"
)

// Config carries the EmailJS account settings. Empty fields fall back
// to the reference deployment defaults; BaseURL exists for tests.
type Config struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToEmail    string
	BaseURL    string
}

// Sender implements secondary.ReportSender.
type Sender struct {
	client *resty.Client
	cfg    Config
}

// NewSender creates a Sender with defaults applied.
func NewSender(cfg Config) *Sender {
	if cfg.ServiceID == "" {
		cfg.ServiceID = defaultServiceID
	}
	if cfg.TemplateID == "" {
		cfg.TemplateID = defaultTemplateID
	}
	if cfg.PublicKey == "" {
		cfg.PublicKey = defaultPublicKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("origin", "http://localhost")

	return &Sender{client: client, cfg: cfg}
}

type payload struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	ToEmail string `json:"to_email"`
	Shift   string `json:"shift"`
	Rows    string `json:"rows"`
}

// Send dispatches one shift report. A non-2xx response becomes an error
// carrying the status and response body.
func (s *Sender) Send(ctx context.Context, shift string, rows []secondary.ReportRow) error {
	body := payload{
		ServiceID:  s.cfg.ServiceID,
		TemplateID: s.cfg.TemplateID,
		UserID:     s.cfg.PublicKey,
		TemplateParams: templateParams{
			ToEmail: s.cfg.ToEmail,
			Shift:   shift,
			Rows:    RenderRows(rows),
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(sendPath)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("emailjs error %s: %s", resp.Status(), resp.String())
	}

	return nil
}

// RenderRows renders report rows as HTML <tr> fragments for the email
// template. Unset times show as an em dash.
func RenderRows(rows []secondary.ReportRow) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, `
<tr>
  <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
  <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
  <td style="border: 1px solid #ccc; padding: 8px;">%s</td>
</tr>
`, row.Location, orDash(row.Start), orDash(row.End))
	}
	return b.String()
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
