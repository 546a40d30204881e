package models

// HDUInfo — описание одного HDU в ответе metadata-эндпоинта.
// Shape и ArrayType равны null (nil), если юнит не содержит массива данных
// (пустой primary, таблицы).
type HDUInfo struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Header    string  `json:"header"`
	Shape     []int   `json:"shape"`
	ArrayType *string `json:"arrayType"`
}

// FileMeta — агрегированные метаданные FITS-файла, тело ответа metadata.
type FileMeta struct {
	Path        string    `json:"path"`
	NExtensions int       `json:"n_extensions"`
	HDUs        []HDUInfo `json:"hdus"`
}
