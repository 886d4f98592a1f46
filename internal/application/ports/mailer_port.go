package ports

import "context"

// OutgoingEmail correo saliente en texto plano.
type OutgoingEmail struct {
	To       string
	Subject  string
	Body     string
	FromName string // nombre visible del remitente; vacío = el configurado
}

// Mailer define el puerto de envío de correos (solicitudes de pago,
// re-enganche de clientes). El adaptador concreto es SMTP vía gomail.
type Mailer interface {
	Send(ctx context.Context, msg OutgoingEmail) error
}
