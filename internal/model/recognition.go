package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recognition — сопоставленный результат по одному кадру: бокс машины из
// трекера, бокс пластины из детектора и прочитанный номер.
type Recognition struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	FrameNmr       int64     `gorm:"not null;index" json:"frame_nmr"`
	TrackID        int64     `gorm:"not null;index" json:"track_id"`
	CarX1          float64   `json:"car_x1"`
	CarY1          float64   `json:"car_y1"`
	CarX2          float64   `json:"car_x2"`
	CarY2          float64   `json:"car_y2"`
	PlateX1        float64   `json:"plate_x1"`
	PlateY1        float64   `json:"plate_y1"`
	PlateX2        float64   `json:"plate_x2"`
	PlateY2        float64   `json:"plate_y2"`
	PlateScore     float64   `json:"plate_score"`
	PlateText      string    `gorm:"type:varchar(32);not null" json:"plate_text"`
	PlateTextScore float64   `json:"plate_text_score"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Recognition) TableName() string {
	return "recognitions"
}

func (r *Recognition) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
