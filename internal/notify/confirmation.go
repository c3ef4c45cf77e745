package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/connecthq/registrar/internal/registration"
)

//go:embed templates/*
var templateFS embed.FS

var (
	subjectTmpl = template.Must(template.ParseFS(templateFS, "templates/confirmation_subject.txt"))
	textTmpl    = template.Must(template.ParseFS(templateFS, "templates/confirmation.txt"))
	htmlTmpl    = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/confirmation.html"))
)

type confirmationData struct {
	EventName   string
	Name        string
	TeamName    string
	Workplace   string
	ProjectIdea string
}

// Confirmer emails registrants once their registration is stored.
type Confirmer struct {
	mailer    Mailer
	eventName string
}

// NewConfirmer creates a Confirmer that announces eventName.
func NewConfirmer(mailer Mailer, eventName string) *Confirmer {
	return &Confirmer{mailer: mailer, eventName: eventName}
}

// RegistrationConfirmed renders and sends the confirmation for reg.
func (c *Confirmer) RegistrationConfirmed(ctx context.Context, reg *registration.Registration) error {
	subject, html, text, err := c.Render(reg)
	if err != nil {
		return err
	}
	return c.mailer.Send(ctx, reg.Email, subject, html, text)
}

// Render returns subject, html and text bodies for reg.
func (c *Confirmer) Render(reg *registration.Registration) (subject, html, text string, err error) {
	data := confirmationData{EventName: c.eventName, Name: reg.Name}
	if reg.TeamName != nil {
		data.TeamName = *reg.TeamName
	}
	if reg.Workplace != nil {
		data.Workplace = *reg.Workplace
	}
	if reg.ProjectIdea != nil {
		data.ProjectIdea = *reg.ProjectIdea
	}

	var buf bytes.Buffer
	if err := subjectTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	subject = strings.TrimSpace(buf.String())

	buf.Reset()
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	html = buf.String()

	buf.Reset()
	if err := textTmpl.Execute(&buf, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	text = buf.String()

	return subject, html, text, nil
}
