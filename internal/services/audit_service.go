package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/pkg/logger"
)

// AuditService stores a record of every admin mutation. A failed audit
// write is logged but never fails the mutation itself.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Record(ctx context.Context, actor models.User, action, entity string, entityID uint, detail interface{}) {
	payload, err := json.Marshal(detail)
	if err != nil {
		payload = []byte("{}")
	}

	entry := &models.AuditLog{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Detail:     datatypes.JSON(payload),
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil && logger.Log != nil {
		logger.Log.Warn("failed to record audit entry",
			zap.String("action", action),
			zap.Uint("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// RecentEntries lists the latest audit records for the admin console.
func (s *AuditService) RecentEntries(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
