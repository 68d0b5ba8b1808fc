package repository

import (
	"context"

	"gorm.io/gorm"

	"anpr-service/internal/model"
)

type RecognitionRepository struct {
	db *gorm.DB
}

func NewRecognitionRepository(db *gorm.DB) *RecognitionRepository {
	return &RecognitionRepository{db: db}
}

func (r *RecognitionRepository) Create(ctx context.Context, rec *model.Recognition) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// ListAll возвращает все результаты в порядке кадра и трека — в том же
// порядке строки попадают в выгрузку.
func (r *RecognitionRepository) ListAll(ctx context.Context) ([]model.Recognition, error) {
	var recognitions []model.Recognition
	err := r.db.WithContext(ctx).
		Order("frame_nmr ASC, track_id ASC").
		Find(&recognitions).Error
	return recognitions, err
}

func (r *RecognitionRepository) ListByTrackID(ctx context.Context, trackID int64) ([]model.Recognition, error) {
	var recognitions []model.Recognition
	err := r.db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("frame_nmr ASC").
		Find(&recognitions).Error
	return recognitions, err
}
