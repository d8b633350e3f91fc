package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfirm_VerifiedStoresProof(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entry := &models.AuditLogEntry{
		ID:         1,
		ActionType: models.ActionIncidentVerified,
		TargetType: models.TargetIncident,
		TargetID:   incidentID.String(),
	}
	receipt := models.LedgerReceipt{TxHash: "0x1", GasUsed: 10, BlockNumber: 5}

	// Ожидания
	gomock.InOrder(
		deps.repo.EXPECT().Claim(ctx, int64(1), svc.lease).Return(entry, true, nil),
		deps.ledger.EXPECT().LogVerified(ctx, incidentID.String()).Return(receipt, nil),
		deps.repo.EXPECT().MarkConfirmed(ctx, int64(1), receipt).Return(true, nil),
		deps.proofs.EXPECT().SetLedgerProof(ctx, incidentID, "0x1").Return(nil),
	)

	// Действие
	err := svc.Confirm(ctx, 1)

	// Проверки
	require.NoError(t, err)
}

func TestConfirm_ResolvedStoresProof(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entry := &models.AuditLogEntry{
		ID:         2,
		ActionType: models.ActionIncidentResolved,
		TargetType: models.TargetIncident,
		TargetID:   incidentID.String(),
	}

	// Ожидания
	deps.repo.EXPECT().Claim(ctx, int64(2), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogResolved(ctx, incidentID.String()).Return(models.LedgerReceipt{TxHash: "0x2"}, nil)
	deps.repo.EXPECT().MarkConfirmed(ctx, int64(2), gomock.Any()).Return(true, nil)
	deps.proofs.EXPECT().SetLedgerProof(ctx, incidentID, "0x2").Return(nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 2))
}

func TestConfirm_ResourceAssigned(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	entry := &models.AuditLogEntry{
		ID:         3,
		ActionType: models.ActionResourceAssigned,
		TargetType: models.TargetIncident,
		TargetID:   "inc-3",
		Metadata:   map[string]any{models.MetadataResourceID: "AMBULANCE-1"},
	}

	// Ожидания: доказательство в инциденте не пишется
	deps.repo.EXPECT().Claim(ctx, int64(3), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogResource(ctx, "inc-3", "AMBULANCE-1").Return(models.LedgerReceipt{TxHash: "0x3"}, nil)
	deps.repo.EXPECT().MarkConfirmed(ctx, int64(3), gomock.Any()).Return(true, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 3))
}

func TestConfirm_ResourceWithoutIDFails(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	entry := &models.AuditLogEntry{ID: 4, ActionType: models.ActionResourceAssigned, TargetID: "inc-4"}

	// Ожидания
	deps.repo.EXPECT().Claim(ctx, int64(4), gomock.Any()).Return(entry, true, nil)
	deps.repo.EXPECT().MarkFailed(ctx, int64(4), errMissingResourceID.Error()).Return(true, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 4))
}

func TestConfirm_GenericAudit(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	entry := &models.AuditLogEntry{ID: 5, ActionType: models.ActionConfigEnabled, TargetType: models.TargetSystemConfig}

	// Ожидания
	deps.repo.EXPECT().Claim(ctx, int64(5), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogGenericAudit(ctx, entry).Return(models.LedgerReceipt{TxHash: "0x5"}, nil)
	deps.repo.EXPECT().MarkConfirmed(ctx, int64(5), models.LedgerReceipt{TxHash: "0x5"}).Return(true, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 5))
}

func TestConfirm_LedgerErrorMarksFailed(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entry := &models.AuditLogEntry{
		ID:         6,
		ActionType: models.ActionIncidentVerified,
		TargetType: models.TargetIncident,
		TargetID:   incidentID.String(),
	}

	// Ожидания: ни MarkConfirmed, ни SetLedgerProof
	deps.repo.EXPECT().Claim(ctx, int64(6), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogVerified(ctx, incidentID.String()).Return(models.LedgerReceipt{}, errors.New("gateway timeout"))
	deps.repo.EXPECT().MarkFailed(ctx, int64(6), "gateway timeout").Return(true, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 6))
}

func TestConfirm_AlreadySettled(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()

	// Ожидания: реестр не вызывается
	deps.repo.EXPECT().Claim(ctx, int64(7), gomock.Any()).Return(nil, false, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 7))
}

func TestConfirm_ClaimError(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()

	// Ожидания
	deps.repo.EXPECT().Claim(ctx, int64(8), gomock.Any()).Return(nil, false, errors.New("db error"))

	// Действие и проверки
	require.Error(t, svc.Confirm(ctx, 8))
}

func TestConfirm_StateChangedConcurrently(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entry := &models.AuditLogEntry{
		ID:         9,
		ActionType: models.ActionIncidentResolved,
		TargetType: models.TargetIncident,
		TargetID:   incidentID.String(),
	}

	// Ожидания: запись уже не PENDING, доказательство не пишется
	deps.repo.EXPECT().Claim(ctx, int64(9), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogResolved(ctx, incidentID.String()).Return(models.LedgerReceipt{TxHash: "0x9"}, nil)
	deps.repo.EXPECT().MarkConfirmed(ctx, int64(9), gomock.Any()).Return(false, nil)

	// Действие и проверки
	require.NoError(t, svc.Confirm(ctx, 9))
}

func TestConfirm_DuplicateTxHashMarksFailed(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	entry := &models.AuditLogEntry{
		ID:         10,
		ActionType: models.ActionIncidentVerified,
		TargetType: models.TargetIncident,
		TargetID:   incidentID.String(),
	}
	receipt := models.LedgerReceipt{TxHash: "0xdup", BlockNumber: 12}
	conflict := fmt.Errorf("ledger tx hash 0xdup already stored: %w", models.ErrConflict)

	// Ожидания: запись закрывается как FAILED, доказательство не пишется
	gomock.InOrder(
		deps.repo.EXPECT().Claim(ctx, int64(10), gomock.Any()).Return(entry, true, nil),
		deps.ledger.EXPECT().LogVerified(ctx, incidentID.String()).Return(receipt, nil),
		deps.repo.EXPECT().MarkConfirmed(ctx, int64(10), receipt).Return(false, conflict),
		deps.repo.EXPECT().MarkFailed(ctx, int64(10), conflict.Error()).Return(true, nil),
	)

	// Действие
	err := svc.Confirm(ctx, 10)

	// Проверки
	require.NoError(t, err)
}

func TestConfirm_StoreReceiptErrorKeepsPending(t *testing.T) {
	// Подготовка
	svc, deps := newTestAuditService(t)
	ctx := context.Background()
	entry := &models.AuditLogEntry{ID: 11, ActionType: models.ActionConfigEnabled, TargetType: models.TargetSystemConfig}

	// Ожидания: MarkFailed не вызывается
	deps.repo.EXPECT().Claim(ctx, int64(11), gomock.Any()).Return(entry, true, nil)
	deps.ledger.EXPECT().LogGenericAudit(ctx, entry).Return(models.LedgerReceipt{TxHash: "0xb"}, nil)
	deps.repo.EXPECT().MarkConfirmed(ctx, int64(11), gomock.Any()).Return(false, errors.New("connection reset"))

	// Действие
	err := svc.Confirm(ctx, 11)

	// Проверки
	require.Error(t, err)
}
