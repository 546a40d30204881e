// Package fitshttp реализует HTTP-интерфейс просмотра FITS-файлов поверх
// корневого каталога с данными. Основные эндпоинты:
//   - GET /fitsview/metadata?path=... — JSON с перечнем HDU файла: имя, тип,
//     дословный текст заголовка, форма массива и тип элементов.
//   - GET /fitsview/slice?path=...&hdu=...&slices=... — сырой little-endian
//     срез массива как application/octet-stream; форма и тип — в заголовках
//     X-FITS-Shape и X-FITS-Type.
//   - GET /health — проверка доступности каталога данных.
//
// Состояние между запросами не разделяется: каждый запрос открывает свой
// файловый хэндл и закрывает его до отправки ответа.
package fitshttp
