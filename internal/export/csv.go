package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"anpr-service/internal/geometry"
)

// Entry — результат по одной машине в одном кадре.
type Entry struct {
	HasCar         bool
	CarBox         geometry.Box
	PlateBox       geometry.Box
	PlateScore     float64
	PlateText      string
	PlateTextScore float64
}

// Results — вложенное отображение: кадр → идентификатор машины → результат.
type Results map[int64]map[int64]Entry

// Set добавляет запись, создавая при необходимости отображение кадра.
func (r Results) Set(frameNmr, carID int64, entry Entry) {
	cars, ok := r[frameNmr]
	if !ok {
		cars = make(map[int64]Entry)
		r[frameNmr] = cars
	}
	cars[carID] = entry
}

var header = []string{
	"frame_nmr",
	"car_id",
	"car_bbox",
	"license_plate_bbox",
	"license_plate_bbox_score",
	"license_number",
	"license_number_score",
}

// WriteCSV пишет результаты в фиксированном семиколоночном формате.
// Строка попадает в вывод, только если у записи есть и бокс машины, и
// прочитанный текст пластины. Кадры и машины идут по возрастанию.
func WriteCSV(w io.Writer, results Results) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	frames := make([]int64, 0, len(results))
	for frame := range results {
		frames = append(frames, frame)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i] < frames[j] })

	for _, frame := range frames {
		cars := results[frame]
		carIDs := make([]int64, 0, len(cars))
		for id := range cars {
			carIDs = append(carIDs, id)
		}
		sort.Slice(carIDs, func(i, j int) bool { return carIDs[i] < carIDs[j] })

		for _, carID := range carIDs {
			entry := cars[carID]
			if !entry.HasCar || entry.PlateText == "" {
				continue
			}
			record := []string{
				strconv.FormatInt(frame, 10),
				strconv.FormatInt(carID, 10),
				formatBox(entry.CarBox),
				formatBox(entry.PlateBox),
				formatFloat(entry.PlateScore),
				entry.PlateText,
				formatFloat(entry.PlateTextScore),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatBox(b geometry.Box) string {
	return fmt.Sprintf("[%s %s %s %s]",
		formatFloat(b.X1), formatFloat(b.Y1), formatFloat(b.X2), formatFloat(b.Y2))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
