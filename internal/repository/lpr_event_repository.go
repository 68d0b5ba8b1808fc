package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"anpr-service/internal/model"
)

type LprEventRepository struct {
	db *gorm.DB
}

func NewLprEventRepository(db *gorm.DB) *LprEventRepository {
	return &LprEventRepository{db: db}
}

func (r *LprEventRepository) Create(ctx context.Context, event *model.LprEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByPlateAndPeriod возвращает события по нормализованному номеру за период
func (r *LprEventRepository) ListByPlateAndPeriod(ctx context.Context, plate string, startTime, endTime time.Time, direction *string) ([]model.LprEvent, error) {
	var events []model.LprEvent
	query := r.db.WithContext(ctx).
		Where("plate_number = ?", plate).
		Where("detected_at >= ?", startTime).
		Where("detected_at <= ?", endTime)
	if direction != nil && *direction != "" {
		query = query.Where("direction = ?", *direction)
	}
	err := query.Order("detected_at ASC").Find(&events).Error
	return events, err
}
