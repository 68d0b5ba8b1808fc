package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"anpr-service/internal/geometry"
	"anpr-service/internal/http/middleware"
	"anpr-service/internal/service"
)

type Handler struct {
	recognitionService *service.RecognitionService
	log                zerolog.Logger
}

func NewHandler(recognitionService *service.RecognitionService, log zerolog.Logger) *Handler {
	return &Handler{
		recognitionService: recognitionService,
		log:                log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware, internalMiddleware gin.HandlerFunc) {
	// Маршруты для камер и смежных сервисов
	internal := r.Group("/internal/anpr")
	internal.Use(internalMiddleware)
	{
		internal.POST("/frames", h.processFrame)
		internal.GET("/events", h.listEvents)
	}

	protected := r.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/recognitions", h.listRecognitions)
		protected.GET("/recognitions/export", h.exportRecognitions)
	}
}

type boxRequest struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (b boxRequest) toBox() geometry.Box {
	return geometry.Box{X1: b.X1, Y1: b.Y1, X2: b.X2, Y2: b.Y2}
}

func (h *Handler) processFrame(c *gin.Context) {
	var req struct {
		FrameNmr   int64   `json:"frame_nmr"`
		CameraID   string  `json:"camera_id" binding:"required"`
		PolygonID  *string `json:"polygon_id"`
		DetectedAt string  `json:"detected_at"`
		Direction  *string `json:"direction"`
		Vehicles   []struct {
			boxRequest
			TrackID int64 `json:"track_id"`
		} `json:"vehicles"`
		Plates []struct {
			boxRequest
			Score      float64 `json:"score"`
			ClassID    int     `json:"class_id"`
			CropBase64 string  `json:"crop_base64" binding:"required"`
		} `json:"plates" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	cameraID, err := uuid.Parse(req.CameraID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid camera id"))
		return
	}

	var polygonID *uuid.UUID
	if req.PolygonID != nil && *req.PolygonID != "" {
		parsed, err := uuid.Parse(*req.PolygonID)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid polygon id"))
			return
		}
		polygonID = &parsed
	}

	var detectedAt time.Time
	if req.DetectedAt != "" {
		detectedAt, err = parseTime(req.DetectedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid detected_at"))
			return
		}
	}

	input := service.FrameInput{
		FrameNmr:   req.FrameNmr,
		CameraID:   cameraID,
		PolygonID:  polygonID,
		DetectedAt: detectedAt,
		Direction:  req.Direction,
		Vehicles:   make([]geometry.VehicleTrack, 0, len(req.Vehicles)),
		Plates:     make([]service.PlateInput, 0, len(req.Plates)),
	}

	for _, v := range req.Vehicles {
		input.Vehicles = append(input.Vehicles, geometry.VehicleTrack{
			Box:     v.toBox(),
			TrackID: v.TrackID,
		})
	}

	for _, p := range req.Plates {
		crop, err := base64.StdEncoding.DecodeString(p.CropBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid crop encoding"))
			return
		}
		input.Plates = append(input.Plates, service.PlateInput{
			Detection: geometry.PlateDetection{
				Box:     p.toBox(),
				Score:   p.Score,
				ClassID: p.ClassID,
			},
			Crop: crop,
		})
	}

	results, err := h.recognitionService.ProcessFrame(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(results))
}

// eventDTO — формат события, который потребляет ticket-service.
type eventDTO struct {
	ID              string    `json:"id"`
	NormalizedPlate string    `json:"normalized_plate"`
	EventTime       time.Time `json:"event_time"`
	Direction       *string   `json:"direction,omitempty"`
	Confidence      *float64  `json:"confidence,omitempty"`
	CameraID        string    `json:"camera_id"`
	PolygonID       *string   `json:"polygon_id,omitempty"`
}

func (h *Handler) listEvents(c *gin.Context) {
	startTime, err := parseTime(c.Query("start_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid start_time"))
		return
	}
	endTime, err := parseTime(c.Query("end_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid end_time"))
		return
	}

	var direction *string
	if raw := c.Query("direction"); raw != "" {
		d := strings.ToUpper(strings.TrimSpace(raw))
		direction = &d
	}

	events, err := h.recognitionService.ListEvents(c.Request.Context(), service.EventFilter{
		Plate:     c.Query("plate"),
		StartTime: startTime,
		EndTime:   endTime,
		Direction: direction,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	dtos := make([]eventDTO, 0, len(events))
	for _, e := range events {
		dto := eventDTO{
			ID:              e.ID.String(),
			NormalizedPlate: e.PlateNumber,
			EventTime:       e.DetectedAt,
			Direction:       e.Direction,
			Confidence:      e.Confidence,
			CameraID:        e.CameraID.String(),
		}
		if e.PolygonID != nil {
			id := e.PolygonID.String()
			dto.PolygonID = &id
		}
		dtos = append(dtos, dto)
	}

	c.JSON(http.StatusOK, successResponse(dtos))
}

func (h *Handler) listRecognitions(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var trackID *int64
	if raw := c.Query("track_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid track_id"))
			return
		}
		trackID = &parsed
	}

	recognitions, err := h.recognitionService.ListRecognitions(c.Request.Context(), trackID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(recognitions))
}

func (h *Handler) exportRecognitions(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="recognitions.csv"`)

	if err := h.recognitionService.ExportCSV(c.Request.Context(), c.Writer); err != nil {
		h.log.Error().Err(err).Msg("failed to export recognitions")
		c.Status(http.StatusInternalServerError)
		return
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("internal error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid time format")
}
