package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
	"github.com/jhoicas/sanka-api/internal/domain/repository"
)

var _ repository.InsightRepository = (*InsightRepo)(nil)

const insightColumns = `id, company_id, title, message, type, category, priority, action_label, insight_date, is_read, is_dismissed, created_at`

// InsightRepo implementación del puerto InsightRepository sobre PostgreSQL.
type InsightRepo struct {
	q Querier
}

// NewInsightRepository construye el adaptador de persistencia para insights.
func NewInsightRepository(q Querier) *InsightRepo {
	return &InsightRepo{q: q}
}

// Create persiste un insight y devuelve el registro almacenado. El store asigna
// el ID y created_at; el pipeline entrega el insight sin identidad.
func (r *InsightRepo) Create(insight *entity.PulseInsight) (*entity.PulseInsight, error) {
	id := insight.ID
	if id == "" {
		id = uuid.New().String()
	}
	query := `
		INSERT INTO pulse_insights (id, company_id, title, message, type, category, priority, action_label, insight_date, is_read, is_dismissed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		RETURNING ` + insightColumns
	stored, err := scanInsight(r.q.QueryRow(context.Background(), query,
		id, insight.CompanyID, insight.Title, insight.Message, insight.Type,
		insight.Category, insight.Priority, insight.ActionLabel, insight.InsightDate,
		insight.IsRead, insight.IsDismissed,
	))
	if err != nil {
		return nil, fmt.Errorf("insert insight: %w", err)
	}
	return stored, nil
}

// GetByID obtiene un insight por ID.
func (r *InsightRepo) GetByID(id string) (*entity.PulseInsight, error) {
	query := `SELECT ` + insightColumns + ` FROM pulse_insights WHERE id = $1`
	ins, err := scanInsight(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insight: %w", err)
	}
	return ins, nil
}

// ListActive devuelve los insights no descartados, más recientes primero.
func (r *InsightRepo) ListActive(companyID string) ([]*entity.PulseInsight, error) {
	query := `SELECT ` + insightColumns + ` FROM pulse_insights
		WHERE company_id = $1 AND is_dismissed = false
		ORDER BY insight_date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	var result []*entity.PulseInsight
	for rows.Next() {
		ins, err := scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		result = append(result, ins)
	}
	return result, rows.Err()
}

// MarkRead marca un insight como leído. Idempotente.
func (r *InsightRepo) MarkRead(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pulse_insights SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark insight read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Dismiss descarta un insight del feed. Idempotente.
func (r *InsightRepo) Dismiss(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pulse_insights SET is_dismissed = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("dismiss insight: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanInsight(row pgx.Row) (*entity.PulseInsight, error) {
	var ins entity.PulseInsight
	err := row.Scan(
		&ins.ID, &ins.CompanyID, &ins.Title, &ins.Message, &ins.Type, &ins.Category,
		&ins.Priority, &ins.ActionLabel, &ins.InsightDate, &ins.IsRead, &ins.IsDismissed,
		&ins.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ins, nil
}
