package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS lpr_events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		camera_id UUID NOT NULL,
		polygon_id UUID,
		plate_number VARCHAR(32) NOT NULL,
		detected_at TIMESTAMPTZ NOT NULL,
		direction VARCHAR(20),
		confidence DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`DO $$
	BEGIN
		-- Добавляем polygon_id если его нет
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns
			WHERE table_name = 'lpr_events' AND column_name = 'polygon_id') THEN
			ALTER TABLE lpr_events ADD COLUMN polygon_id UUID;
		END IF;
	END
	$$;`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_camera_id ON lpr_events (camera_id);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_detected_at ON lpr_events (detected_at);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_plate_number ON lpr_events (plate_number);`,
	`CREATE TABLE IF NOT EXISTS recognitions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		frame_nmr BIGINT NOT NULL,
		track_id BIGINT NOT NULL,
		car_x1 DOUBLE PRECISION NOT NULL,
		car_y1 DOUBLE PRECISION NOT NULL,
		car_x2 DOUBLE PRECISION NOT NULL,
		car_y2 DOUBLE PRECISION NOT NULL,
		plate_x1 DOUBLE PRECISION NOT NULL,
		plate_y1 DOUBLE PRECISION NOT NULL,
		plate_x2 DOUBLE PRECISION NOT NULL,
		plate_y2 DOUBLE PRECISION NOT NULL,
		plate_score DOUBLE PRECISION NOT NULL,
		plate_text VARCHAR(32) NOT NULL,
		plate_text_score DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_recognitions_frame_nmr ON recognitions (frame_nmr);`,
	`CREATE INDEX IF NOT EXISTS idx_recognitions_track_id ON recognitions (track_id);`,
	`CREATE INDEX IF NOT EXISTS idx_recognitions_plate_text ON recognitions (plate_text);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
