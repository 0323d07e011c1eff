// Package configstore reads and writes the single site configuration
// document, with a local snapshot file as fallback when the remote store is
// unreachable.
package configstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"accreditation-gateway/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoFallback is returned by Load when the remote read fails and no cached
// snapshot exists. The caller falls back to models.DefaultConfig in memory.
var ErrNoFallback = errors.New("configstore: remote load failed and no fallback snapshot exists")

type Store struct {
	db        *gorm.DB
	cachePath string
	log       *zap.Logger
}

func New(db *gorm.DB, cachePath string, log *zap.Logger) *Store {
	return &Store{db: db, cachePath: cachePath, log: log}
}

// Load fetches the configuration document. A missing document is seeded with
// the hardcoded default and that default is returned. A failed remote read is
// answered from the fallback snapshot when one exists; otherwise the error is
// propagated wrapped in ErrNoFallback.
func (s *Store) Load(ctx context.Context) (*models.AppConfig, error) {
	var cfg models.AppConfig
	err := s.db.WithContext(ctx).First(&cfg, "id = ?", models.ConfigDocID).Error
	if err == nil {
		s.writeCache(&cfg)
		return &cfg, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := models.DefaultConfig()
		if seedErr := s.db.WithContext(ctx).Create(def).Error; seedErr != nil {
			s.log.Warn("failed to seed default config", zap.Error(seedErr))
		}
		s.writeCache(def)
		return def, nil
	}

	s.log.Warn("remote config load failed", zap.Error(err))
	if cached, cacheErr := s.readCache(); cacheErr == nil {
		s.log.Info("using fallback config snapshot", zap.String("path", s.cachePath))
		return cached, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrNoFallback, err)
}

// Save replaces the configuration document wholesale and mirrors the new
// snapshot to the fallback cache on success.
func (s *Store) Save(ctx context.Context, cfg *models.AppConfig) error {
	cfg.ID = models.ConfigDocID
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(cfg).Error
	if err != nil {
		return err
	}
	s.writeCache(cfg)
	return nil
}

func (s *Store) writeCache(cfg *models.AppConfig) {
	data, err := json.Marshal(cfg)
	if err != nil {
		s.log.Warn("failed to marshal config snapshot", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.cachePath, data, 0o644); err != nil {
		s.log.Warn("failed to write fallback snapshot", zap.Error(err))
	}
}

func (s *Store) readCache() (*models.AppConfig, error) {
	data, err := os.ReadFile(s.cachePath)
	if err != nil {
		return nil, err
	}
	var cfg models.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ID = models.ConfigDocID
	return &cfg, nil
}
