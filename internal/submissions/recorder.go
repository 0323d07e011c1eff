// Package submissions appends accepted accreditation requests to the
// document store. The collection is append-only: records are never updated or
// deleted.
package submissions

import (
	"context"

	"accreditation-gateway/internal/i18n"
	"accreditation-gateway/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatusPending is the fixed status every new submission is stored with.
const StatusPending = "pending"

type Recorder struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewRecorder(db *gorm.DB, log *zap.Logger) *Recorder {
	return &Recorder{db: db, log: log}
}

// Persist appends one submission with a server-assigned creation timestamp.
// Persistence is best-effort for the submitting user: callers log the error
// and carry on, the letter has already been produced.
func (r *Recorder) Persist(ctx context.Context, record models.AgencyRecord, letter string, lang i18n.Language) (*models.Submission, error) {
	sub := &models.Submission{
		ID:           uuid.NewString(),
		AgencyRecord: record,
		Letter:       letter,
		Language:     string(lang),
		Status:       StatusPending,
	}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		r.log.Error("failed to persist submission", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// List returns the newest submissions for the admin dashboard, read-only.
func (r *Recorder) List(ctx context.Context, limit int) ([]models.Submission, error) {
	if limit <= 0 {
		limit = 100
	}
	var subs []models.Submission
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return subs, nil
}
