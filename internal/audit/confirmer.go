package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/sirupsen/logrus"
)

var errMissingResourceID = errors.New("resource assignment entry has no resourceId metadata")

// Confirm выполняет запись в реестр для одной записи журнала.
// Меняются только поля реестра записи и, для подтвержденных verified/resolved,
// доказательство в самом инциденте.
func (s *Service) Confirm(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "AuditService",
		"method":   "Confirm",
		"audit_id": id,
	})

	entry, claimed, err := s.repo.Claim(ctx, id, s.lease)
	if err != nil {
		log.WithError(err).Error("Failed to claim audit entry")
		return fmt.Errorf("audit: failed to claim entry %d: %w", id, err)
	}
	if !claimed {
		log.Debug("Audit entry already settled or claimed by another worker")
		return nil
	}

	receipt, ledgerErr := s.submit(ctx, entry)
	if ledgerErr != nil {
		log.WithError(ledgerErr).Warn("Ledger write failed")
		if _, err := s.repo.MarkFailed(ctx, id, ledgerErr.Error()); err != nil {
			log.WithError(err).Error("Failed to mark audit entry as ledger-failed")
			return fmt.Errorf("audit: failed to mark entry %d failed: %w", id, err)
		}
		return nil
	}

	updated, err := s.repo.MarkConfirmed(ctx, id, receipt)
	if err != nil {
		log = log.WithFields(logrus.Fields{
			"tx_hash":      receipt.TxHash,
			"block_number": receipt.BlockNumber,
			"gas_used":     receipt.GasUsed,
		})
		if errors.Is(err, models.ErrConflict) {
			// Квитанция уже принадлежит другой записи, состояние окончательное
			log.WithError(err).Error("Ledger receipt conflicts with a stored entry, marking entry failed")
			if _, markErr := s.repo.MarkFailed(ctx, id, err.Error()); markErr != nil {
				log.WithError(markErr).Error("Failed to mark audit entry as ledger-failed")
				return fmt.Errorf("audit: failed to mark entry %d failed: %w", id, markErr)
			}
			return nil
		}
		log.WithError(err).Error("Failed to store ledger receipt, entry stays PENDING")
		return fmt.Errorf("audit: failed to mark entry %d confirmed: %w", id, err)
	}
	if !updated {
		log.Warn("Audit entry left PENDING state before confirmation was stored")
		return nil
	}
	log.WithField("tx_hash", receipt.TxHash).Info("Audit entry confirmed on ledger")

	if entry.ActionType == models.ActionIncidentVerified || entry.ActionType == models.ActionIncidentResolved {
		s.storeProof(ctx, log, entry, receipt.TxHash)
	}
	return nil
}

func (s *Service) submit(ctx context.Context, entry *models.AuditLogEntry) (models.LedgerReceipt, error) {
	switch entry.ActionType {
	case models.ActionIncidentVerified:
		return s.ledger.LogVerified(ctx, entry.TargetID)
	case models.ActionIncidentResolved:
		return s.ledger.LogResolved(ctx, entry.TargetID)
	case models.ActionResourceAssigned:
		resourceID := entry.MetadataString(models.MetadataResourceID)
		if resourceID == "" {
			return models.LedgerReceipt{}, errMissingResourceID
		}
		return s.ledger.LogResource(ctx, entry.TargetID, resourceID)
	default:
		return s.ledger.LogGenericAudit(ctx, entry)
	}
}

func (s *Service) storeProof(ctx context.Context, log *logrus.Entry, entry *models.AuditLogEntry, txHash string) {
	if s.proofs == nil || entry.TargetType != models.TargetIncident {
		return
	}
	incidentID, err := entry.IncidentID()
	if err != nil {
		log.WithError(err).Warn("Audit entry target is not an incident id")
		return
	}
	if err := s.proofs.SetLedgerProof(ctx, incidentID, txHash); err != nil {
		log.WithError(err).Error("Failed to store ledger proof on incident")
	}
}
