package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sanka-api/internal/application/dto"
	"github.com/jhoicas/sanka-api/internal/application/ports"
	"github.com/jhoicas/sanka-api/internal/application/usecase"
	"github.com/jhoicas/sanka-api/internal/domain"
	"github.com/jhoicas/sanka-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type memPaymentRepo struct {
	byID map[string]*entity.Payment
	list []*entity.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{byID: make(map[string]*entity.Payment)}
}

func (m *memPaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	m.byID[p.ID] = &cp
	m.list = append(m.list, &cp)
	return nil
}

func (m *memPaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPaymentRepo) ListByCompany(companyID string, _, _ int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range m.list {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPaymentRepo) UpdateStatus(id, status string, paymentDate *time.Time) error {
	p, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	if paymentDate != nil {
		p.PaymentDate = paymentDate
	}
	return nil
}

// spyMailer registra los envíos; puede fallar para probar el best-effort.
type spyMailer struct {
	sent []ports.OutgoingEmail
	fail bool
}

func (s *spyMailer) Send(_ context.Context, msg ports.OutgoingEmail) error {
	if s.fail {
		return errors.New("smtp caído")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Comisión
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentCreate_CalculaComisionYTotales(t *testing.T) {
	repo := newMemPaymentRepo()
	uc := usecase.NewPaymentUseCase(repo, &spyMailer{})

	out, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{
		Amount:        mustDec("100.00"),
		CustomerEmail: "cliente@example.com",
		Description:   "Pedido #42",
	})
	require.NoError(t, err)

	// fee = 100 × 0.029 + 0.30 = 3.20
	assert.True(t, out.FeeAmount.Equal(mustDec("3.20")), "fee 2.9%% + $0.30, fue %s", out.FeeAmount)
	assert.True(t, out.TotalAmount.Equal(mustDec("103.20")), "el cliente absorbe la comisión")
	assert.True(t, out.NetAmount.Equal(mustDec("100.00")), "el negocio recibe el monto completo")
	assert.Equal(t, entity.PaymentStatusPending, out.Status)
}

func TestPaymentCreate_ComisionSeRedondeaADosDecimales(t *testing.T) {
	uc := usecase.NewPaymentUseCase(newMemPaymentRepo(), &spyMailer{})

	out, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{
		Amount: mustDec("19.99"),
	})
	require.NoError(t, err)

	// 19.99 × 0.029 = 0.57971 → + 0.30 = 0.87971 → 0.88
	assert.True(t, out.FeeAmount.Equal(mustDec("0.88")), "fue %s", out.FeeAmount)
	assert.True(t, out.TotalAmount.Equal(mustDec("20.87")))
}

func TestPaymentCreate_MontoNoPositivoFalla(t *testing.T) {
	uc := usecase.NewPaymentUseCase(newMemPaymentRepo(), &spyMailer{})

	_, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Correo de solicitud
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentCreate_PendienteConEmailEnviaSolicitud(t *testing.T) {
	mailer := &spyMailer{}
	uc := usecase.NewPaymentUseCase(newMemPaymentRepo(), mailer)

	_, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{
		Amount:        mustDec("50.00"),
		CustomerEmail: "cliente@example.com",
		PaymentLink:   "https://pay.example.com/abc",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1, "pago pendiente con email dispara la solicitud")
	assert.Equal(t, "cliente@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Body, "$51.75", "el correo muestra el total con comisión")
	assert.Contains(t, mailer.sent[0].Body, "https://pay.example.com/abc")
}

func TestPaymentCreate_FalloDeCorreoNoRompeElRegistro(t *testing.T) {
	repo := newMemPaymentRepo()
	uc := usecase.NewPaymentUseCase(repo, &spyMailer{fail: true})

	out, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{
		Amount:        mustDec("50.00"),
		CustomerEmail: "cliente@example.com",
	})
	require.NoError(t, err, "el correo es best-effort, el pago ya quedó registrado")
	assert.NotNil(t, repo.byID[out.ID])
}

func TestPaymentCreate_MarkCompletedNoEnviaCorreo(t *testing.T) {
	mailer := &spyMailer{}
	uc := usecase.NewPaymentUseCase(newMemPaymentRepo(), mailer)

	out, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{
		Amount:        mustDec("50.00"),
		CustomerEmail: "cliente@example.com",
		MarkCompleted: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusCompleted, out.Status)
	require.NotNil(t, out.PaymentDate, "completed al crear estampa la fecha de pago")
	assert.Empty(t, mailer.sent, "un pago ya cobrado no pide nada al cliente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentMarkCompleted_SoloDesdePendiente(t *testing.T) {
	repo := newMemPaymentRepo()
	uc := usecase.NewPaymentUseCase(repo, &spyMailer{})

	created, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: mustDec("10.00")})
	require.NoError(t, err)

	out, err := uc.MarkCompleted(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCompleted, out.Status)
	assert.NotNil(t, out.PaymentDate)

	// Segunda vez: ya no está pendiente.
	_, err = uc.MarkCompleted(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPaymentCancel_SoloDesdePendiente(t *testing.T) {
	repo := newMemPaymentRepo()
	uc := usecase.NewPaymentUseCase(repo, &spyMailer{})

	created, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: mustDec("10.00")})
	require.NoError(t, err)

	out, err := uc.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusCancelled, out.Status)

	_, err = uc.Cancel(created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPaymentMarkCompleted_NoExisteRetornaNotFound(t *testing.T) {
	uc := usecase.NewPaymentUseCase(newMemPaymentRepo(), &spyMailer{})
	_, err := uc.MarkCompleted("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado con totales
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentList_TotalesPorEstado(t *testing.T) {
	repo := newMemPaymentRepo()
	uc := usecase.NewPaymentUseCase(repo, &spyMailer{})

	p1, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: mustDec("100.00")})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: mustDec("40.00")})
	require.NoError(t, err)
	p3, err := uc.Create(context.Background(), "co-1", dto.CreatePaymentRequest{Amount: mustDec("25.00")})
	require.NoError(t, err)

	_, err = uc.MarkCompleted(p1.ID)
	require.NoError(t, err)
	_, err = uc.Cancel(p3.ID)
	require.NoError(t, err)

	out, err := uc.List("co-1", 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Count)
	assert.True(t, out.TotalPending.Equal(mustDec("40.00")), "solo los pendientes suman, fue %s", out.TotalPending)
	assert.True(t, out.TotalProcessed.Equal(mustDec("100.00")), "los cancelados no suman a ningún total")
}
