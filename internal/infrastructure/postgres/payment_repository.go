package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, company_id, customer_email, description, amount, fee_amount, total_amount, net_amount, payment_link, status, payment_date, created_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste una solicitud de pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CompanyID, payment.CustomerEmail, payment.Description,
		payment.Amount, payment.FeeAmount, payment.TotalAmount, payment.NetAmount,
		payment.PaymentLink, payment.Status, payment.PaymentDate, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CustomerEmail, &p.Description, &p.Amount, &p.FeeAmount,
		&p.TotalAmount, &p.NetAmount, &p.PaymentLink, &p.Status, &p.PaymentDate, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByCompany lista pagos por empresa con paginación, más recientes primero.
func (r *PaymentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var result []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(
			&p.ID, &p.CompanyID, &p.CustomerEmail, &p.Description, &p.Amount, &p.FeeAmount,
			&p.TotalAmount, &p.NetAmount, &p.PaymentLink, &p.Status, &p.PaymentDate, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

// UpdateStatus cambia el estado; paymentDate solo aplica al pasar a completed.
func (r *PaymentRepo) UpdateStatus(id, status string, paymentDate *time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE payments SET status = $2, payment_date = $3 WHERE id = $1`,
		id, status, paymentDate,
	)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
