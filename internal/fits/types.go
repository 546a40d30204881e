package fits

// ElemKind классифицирует примитивный тип элемента массива: знаковость,
// целочисленность, плавающая точка.
type ElemKind int

const (
	KindSigned ElemKind = iota
	KindUnsigned
	KindBool
	KindFloat
	KindUnknown
)

// ArrayType — замкнутый набор типов элементов, которыми оперирует API.
// Wire-имя (метод String) попадает в поле arrayType и заголовок X-FITS-Type.
type ArrayType int

const (
	I8 ArrayType = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

var arrayTypeNames = map[ArrayType]string{
	I8:  "i8",
	I16: "i16",
	I32: "i32",
	I64: "i64",
	U8:  "u8",
	U16: "u16",
	U32: "u32",
	U64: "u64",
	F32: "f32",
	F64: "f64",
}

func (t ArrayType) String() string {
	return arrayTypeNames[t]
}

// Size возвращает ширину одного элемента в байтах.
func (t ArrayType) Size() int {
	switch t {
	case I8, U8:
		return 1
	case I16, U16:
		return 2
	case I32, U32, F32:
		return 4
	default:
		return 8
	}
}

// MapElementType отображает примитивный тип (вид + ширина в байтах) в один из
// тегов ArrayType. Функция тотальная: нераспознанные комбинации дают F64 —
// это задокументированный fallback без потери значения, а не ошибка.
func MapElementType(kind ElemKind, width int) ArrayType {
	switch kind {
	case KindSigned:
		switch width {
		case 1:
			return I8
		case 2:
			return I16
		case 4:
			return I32
		case 8:
			return I64
		}
	case KindUnsigned:
		switch width {
		case 1:
			return U8
		case 2:
			return U16
		case 4:
			return U32
		case 8:
			return U64
		}
	case KindBool:
		return U8
	case KindFloat:
		switch width {
		case 4:
			return F32
		case 8:
			return F64
		}
	}
	return F64
}

// elemFromBitpix разбирает BITPIX на вид и ширину элемента.
// BITPIX=8 в FITS — беззнаковый байт, остальные целые — знаковые,
// отрицательные значения — IEEE float соответствующей ширины.
func elemFromBitpix(bitpix int) (ElemKind, int) {
	switch bitpix {
	case 8:
		return KindUnsigned, 1
	case 16, 32, 64:
		return KindSigned, bitpix / 8
	case -32, -64:
		return KindFloat, -bitpix / 8
	}
	return KindUnknown, 0
}
