package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AdwikaVishal/Disaster-Management/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:            dto.Title,
		Description:      dto.Description,
		Type:             models.IncidentType(dto.Type),
		Severity:         models.Severity(dto.Severity),
		Latitude:         dto.Latitude,
		Longitude:        dto.Longitude,
		Address:          dto.Address,
		Landmark:         dto.Landmark,
		MediaURLs:        dto.MediaURLs,
		ReporterID:       dto.ReporterID,
		InjuriesReported: dto.InjuriesReported,
		PeopleInvolved:   dto.PeopleInvolved,
	}
}

// DTOToVerificationModel - отклик для инцидента из пути запроса
func DTOToVerificationModel(incidentID uuid.UUID, dto VerificationRequest) *models.Verification {
	return &models.Verification{
		IncidentID:      incidentID,
		VerifierID:      dto.VerifierID,
		Type:            models.VerificationType(dto.Type),
		IsAccurate:      dto.IsAccurate,
		ConfidenceLevel: dto.ConfidenceLevel,
		Comments:        dto.Comments,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                    model.ID,
		Title:                 model.Title,
		Description:           model.Description,
		Type:                  string(model.Type),
		Severity:              string(model.Severity),
		Status:                string(model.Status),
		Latitude:              model.Latitude,
		Longitude:             model.Longitude,
		Address:               model.Address,
		Landmark:              model.Landmark,
		MediaURLs:             model.MediaURLs,
		ReporterID:            model.ReporterID,
		Upvotes:               model.Upvotes,
		Flags:                 model.Flags,
		VerificationCount:     model.VerificationCount,
		InjuriesReported:      model.InjuriesReported,
		PeopleInvolved:        model.PeopleInvolved,
		FraudProbability:      model.FraudProbability,
		IsFraud:               model.IsFraud,
		RiskScore:             model.RiskScore,
		RiskLevel:             model.RiskLevel,
		SimilarityScore:       model.SimilarityScore,
		DistanceToResponder:   model.DistanceToResponder,
		NearSensitiveLocation: model.NearSensitiveLocation,
		LedgerTxHash:          model.LedgerTxHash,
		LedgerVerified:        model.LedgerVerified,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
		ResolvedAt:            model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// incidentFilterFromQuery читает фильтры списка инцидентов
func incidentFilterFromQuery(c *gin.Context) models.IncidentFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return models.IncidentFilter{
		Status:   models.Status(c.Query("status")),
		Severity: models.Severity(c.Query("severity")),
		Type:     models.IncidentType(c.Query("type")),
		Page:     page,
		PageSize: pageSize,
	}
}

// auditFilterFromQuery читает фильтры журнала; даты в RFC3339
func auditFilterFromQuery(c *gin.Context) (models.AuditFilter, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	filter := models.AuditFilter{
		ActionType:   models.ActionType(c.Query("actionType")),
		ActorID:      c.Query("actorId"),
		Status:       models.AuditStatus(c.Query("status")),
		LedgerStatus: models.LedgerStatus(c.Query("ledgerStatus")),
		Page:         page,
		PageSize:     pageSize,
	}
	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, fmt.Errorf("invalid %s date: %w", name, models.ErrValidation)
		}
		*dst = &t
	}
	return filter, nil
}
