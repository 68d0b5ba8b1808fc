package geometry

// Box — прямоугольник, выровненный по осям, в пиксельных координатах кадра.
type Box struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// ContainsStrict — строгое вложение: все стороны inner лежат строго внутри
// b, касание границ вложением не считается.
func (b Box) ContainsStrict(inner Box) bool {
	return b.X1 < inner.X1 && b.Y1 < inner.Y1 && inner.X2 < b.X2 && inner.Y2 < b.Y2
}

// VehicleTrack — бокс транспортного средства со стабильным идентификатором
// трека, присвоенным внешним трекером.
type VehicleTrack struct {
	Box
	TrackID int64 `json:"track_id"`
}

// PlateDetection — бокс номерной пластины от внешнего детектора.
type PlateDetection struct {
	Box
	Score   float64 `json:"score"`
	ClassID int     `json:"class_id"`
}

// NoContainer возвращается, когда ни один бокс не содержит пластину.
var NoContainer = VehicleTrack{Box: Box{X1: -1, Y1: -1, X2: -1, Y2: -1}, TrackID: -1}

// FindContainer возвращает первый бокс из vehicles, строго содержащий plate.
// Порядок обхода задаёт вызывающая сторона; побеждает первый подошедший
// бокс, а не самый тесный.
func FindContainer(plate Box, vehicles []VehicleTrack) (VehicleTrack, bool) {
	for _, v := range vehicles {
		if v.ContainsStrict(plate) {
			return v, true
		}
	}
	return NoContainer, false
}
