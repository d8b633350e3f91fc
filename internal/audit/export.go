package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
)

var csvHeader = []string{
	"id", "actionType", "actorId", "actorRole", "targetType", "targetId", "description",
	"status", "errorMessage", "ledgerTxHash", "ledgerStatus", "createdAt", "metadata",
}

const exportPageSize = maxPageSize

// ExportCSV выгружает все записи, подходящие под фильтр, постранично
func (s *Service) ExportCSV(ctx context.Context, w io.Writer, filter models.AuditFilter) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("audit: failed to write csv header: %w", err)
	}

	filter.Page = 1
	filter.PageSize = exportPageSize
	for {
		entries, _, err := s.List(ctx, filter)
		if err != nil {
			return err
		}
		for _, e := range entries {
			row, err := csvRow(e)
			if err != nil {
				return err
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("audit: failed to write csv row %d: %w", e.ID, err)
			}
		}
		if len(entries) < exportPageSize {
			break
		}
		filter.Page++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("audit: failed to flush csv: %w", err)
	}
	return nil
}

func csvRow(e *models.AuditLogEntry) ([]string, error) {
	metadata, err := e.MetadataJSON()
	if err != nil {
		return nil, fmt.Errorf("audit: failed to encode metadata of entry %d: %w", e.ID, err)
	}
	txHash := ""
	if e.LedgerTxHash != nil {
		txHash = *e.LedgerTxHash
	}
	return []string{
		strconv.FormatInt(e.ID, 10),
		string(e.ActionType),
		e.ActorID,
		e.ActorRole,
		e.TargetType,
		e.TargetID,
		e.Description,
		string(e.Status),
		e.ErrorMessage,
		txHash,
		string(e.LedgerStatus),
		e.CreatedAt.UTC().Format(time.RFC3339),
		metadata,
	}, nil
}
