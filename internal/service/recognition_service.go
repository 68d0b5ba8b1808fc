package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"anpr-service/internal/export"
	"anpr-service/internal/geometry"
	"anpr-service/internal/model"
	"anpr-service/internal/ocr"
	"anpr-service/internal/plate"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// RecognitionStore — хранилище результатов распознавания.
type RecognitionStore interface {
	Create(ctx context.Context, rec *model.Recognition) error
	ListAll(ctx context.Context) ([]model.Recognition, error)
	ListByTrackID(ctx context.Context, trackID int64) ([]model.Recognition, error)
}

// EventStore — хранилище событий LPR, отдаваемых смежным сервисам.
type EventStore interface {
	Create(ctx context.Context, event *model.LprEvent) error
	ListByPlateAndPeriod(ctx context.Context, plate string, startTime, endTime time.Time, direction *string) ([]model.LprEvent, error)
}

type RecognitionService struct {
	engine       ocr.Engine
	recognitions RecognitionStore
	events       EventStore
	log          zerolog.Logger
}

func NewRecognitionService(
	engine ocr.Engine,
	recognitions RecognitionStore,
	events EventStore,
	log zerolog.Logger,
) *RecognitionService {
	return &RecognitionService{
		engine:       engine,
		recognitions: recognitions,
		events:       events,
		log:          log,
	}
}

// PlateInput — один вырез с пластиной из кадра.
type PlateInput struct {
	Detection geometry.PlateDetection
	Crop      []byte
}

// FrameInput — один кадр: треки машин от трекера и найденные пластины.
type FrameInput struct {
	FrameNmr   int64
	CameraID   uuid.UUID
	PolygonID  *uuid.UUID
	DetectedAt time.Time
	Direction  *string
	Vehicles   []geometry.VehicleTrack
	Plates     []PlateInput
}

// PlateResult — исход обработки одного выреза.
type PlateResult struct {
	Vehicle   geometry.VehicleTrack   `json:"vehicle"`
	Plate     geometry.PlateDetection `json:"plate"`
	Text      string                  `json:"text"`
	TextScore float64                 `json:"text_score"`
}

// ProcessFrame сопоставляет каждую пластину с машиной, читает номер и
// сохраняет успешные результаты. Пластина без содержащей её машины или без
// читаемого текста пропускается: это не ошибка кадра.
func (s *RecognitionService) ProcessFrame(ctx context.Context, input FrameInput) ([]PlateResult, error) {
	if input.FrameNmr < 0 {
		return nil, ErrInvalidInput
	}
	if input.DetectedAt.IsZero() {
		input.DetectedAt = time.Now().UTC()
	}

	results := make([]PlateResult, 0, len(input.Plates))
	for _, p := range input.Plates {
		vehicle, found := geometry.FindContainer(p.Detection.Box, input.Vehicles)
		if !found {
			s.log.Debug().
				Int64("frame_nmr", input.FrameNmr).
				Msg("no vehicle contains plate box")
			continue
		}

		hypotheses, err := s.engine.Detect(ctx, p.Crop)
		if err != nil {
			s.log.Error().Err(err).
				Int64("frame_nmr", input.FrameNmr).
				Int64("track_id", vehicle.TrackID).
				Msg("OCR detect failed")
			continue
		}

		text, score, ok := plate.ReadPlate(hypotheses)
		if !ok {
			continue
		}

		rec := &model.Recognition{
			FrameNmr:       input.FrameNmr,
			TrackID:        vehicle.TrackID,
			CarX1:          vehicle.X1,
			CarY1:          vehicle.Y1,
			CarX2:          vehicle.X2,
			CarY2:          vehicle.Y2,
			PlateX1:        p.Detection.X1,
			PlateY1:        p.Detection.Y1,
			PlateX2:        p.Detection.X2,
			PlateY2:        p.Detection.Y2,
			PlateScore:     p.Detection.Score,
			PlateText:      text,
			PlateTextScore: score,
		}
		if err := s.recognitions.Create(ctx, rec); err != nil {
			return nil, err
		}

		confidence := score
		event := &model.LprEvent{
			CameraID:    input.CameraID,
			PolygonID:   input.PolygonID,
			PlateNumber: plate.NormalizeLoose(text),
			DetectedAt:  input.DetectedAt,
			Direction:   input.Direction,
			Confidence:  &confidence,
		}
		if err := s.events.Create(ctx, event); err != nil {
			return nil, err
		}

		results = append(results, PlateResult{
			Vehicle:   vehicle,
			Plate:     p.Detection,
			Text:      text,
			TextScore: score,
		})
	}

	return results, nil
}

// EventFilter — параметры выборки событий для смежных сервисов.
type EventFilter struct {
	Plate     string
	StartTime time.Time
	EndTime   time.Time
	Direction *string
}

func (s *RecognitionService) ListEvents(ctx context.Context, filter EventFilter) ([]model.LprEvent, error) {
	normalized := plate.NormalizeLoose(filter.Plate)
	if normalized == "" {
		return nil, ErrInvalidInput
	}
	if filter.StartTime.IsZero() || filter.EndTime.IsZero() || filter.EndTime.Before(filter.StartTime) {
		return nil, ErrInvalidInput
	}
	return s.events.ListByPlateAndPeriod(ctx, normalized, filter.StartTime, filter.EndTime, filter.Direction)
}

func (s *RecognitionService) ListRecognitions(ctx context.Context, trackID *int64) ([]model.Recognition, error) {
	if trackID != nil {
		return s.recognitions.ListByTrackID(ctx, *trackID)
	}
	return s.recognitions.ListAll(ctx)
}

// ExportCSV выгружает сохранённые результаты в семиколоночном формате.
func (s *RecognitionService) ExportCSV(ctx context.Context, w io.Writer) error {
	recognitions, err := s.recognitions.ListAll(ctx)
	if err != nil {
		return err
	}

	results := make(export.Results, len(recognitions))
	for _, rec := range recognitions {
		results.Set(rec.FrameNmr, rec.TrackID, export.Entry{
			HasCar:         true,
			CarBox:         geometry.Box{X1: rec.CarX1, Y1: rec.CarY1, X2: rec.CarX2, Y2: rec.CarY2},
			PlateBox:       geometry.Box{X1: rec.PlateX1, Y1: rec.PlateY1, X2: rec.PlateX2, Y2: rec.PlateY2},
			PlateScore:     rec.PlateScore,
			PlateText:      rec.PlateText,
			PlateTextScore: rec.PlateTextScore,
		})
	}

	return export.WriteCSV(w, results)
}
