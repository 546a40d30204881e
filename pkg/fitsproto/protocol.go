// Package fitsproto содержит wire-константы API просмотра FITS, общие для
// сервера и клиента.
package fitsproto

const (
	// HeaderShape — JSON-массив размерностей среза в ответе slice.
	HeaderShape = "X-FITS-Shape"
	// HeaderType — wire-имя типа элемента (i8..u64, f32, f64).
	HeaderType = "X-FITS-Type"
	// HeaderRequestID — идентификатор запроса, проставляется middleware.
	HeaderRequestID = "X-Request-Id"

	MetadataPath = "/fitsview/metadata"
	SlicePath    = "/fitsview/slice"
)
