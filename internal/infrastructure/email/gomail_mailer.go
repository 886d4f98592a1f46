// Package email implementa el puerto Mailer sobre SMTP usando gomail.
package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/sanka-api/internal/application/ports"
)

// Verificar en tiempo de compilación que SMTPMailer implementa Mailer.
var _ ports.Mailer = (*SMTPMailer)(nil)

// Config parámetros de conexión SMTP.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string // dirección remitente
	FromName string // nombre visible por defecto
}

// SMTPMailer adaptador SMTP. gomail abre y cierra la conexión por envío, lo que
// alcanza para el volumen de correos transaccionales de la aplicación.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer construye el adaptador.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send envía un correo en texto plano. gomail no acepta context, así que solo se
// respeta la cancelación previa al envío.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.OutgoingEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.cfg.Host == "" {
		return fmt.Errorf("email: SMTP_HOST no configurado")
	}
	if msg.To == "" {
		return fmt.Errorf("email: destinatario vacío")
	}

	fromName := msg.FromName
	if fromName == "" {
		fromName = m.cfg.FromName
	}

	mail := gomail.NewMessage()
	mail.SetAddressHeader("From", m.cfg.From, fromName)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("email: enviar a %s: %w", msg.To, err)
	}
	return nil
}
