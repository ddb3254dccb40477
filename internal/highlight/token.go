package highlight

import "github.com/dshills/texture/internal/buffer"

// Type is one of the closed set of syntactic/semantic token categories.
type Type uint8

const (
	TypeError Type = iota
	TypeWarning
	TypeString
	TypeComment
	TypeDocComment
	TypeAttribute
	TypeDerive
	TypeMacro
	TypeFormatSpecifier
	TypeKeyword
	TypeKeywordControl
	TypeKeywordOperator
	TypeType
	TypeTypeBuiltin
	TypeFunction
	TypeMethod
	TypeConstructor
	TypeVariable
	TypeParameter
	TypeField
	TypeOperator
	TypePunctuation
	TypeNumber
	TypeBoolean
	TypeText
)

// precedence ranks token categories for conflict resolution: higher wins.
var precedence = map[Type]int{
	TypeError:           100,
	TypeWarning:         100,
	TypeString:          90,
	TypeComment:         90,
	TypeDocComment:      90,
	TypeAttribute:       85,
	TypeDerive:          85,
	TypeMacro:           80,
	TypeFormatSpecifier: 80,
	TypeKeyword:         70,
	TypeKeywordControl:  70,
	TypeKeywordOperator: 70,
	TypeType:            60,
	TypeTypeBuiltin:     60,
	TypeFunction:        50,
	TypeMethod:          50,
	TypeConstructor:     50,
	TypeVariable:        40,
	TypeParameter:       40,
	TypeField:           40,
	TypeOperator:        30,
	TypePunctuation:     30,
	TypeNumber:          20,
	TypeBoolean:         20,
	TypeText:            10,
}

// Precedence returns t's conflict-resolution precedence; higher wins.
func (t Type) Precedence() int { return precedence[t] }

func (t Type) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeWarning:
		return "warning"
	case TypeString:
		return "string"
	case TypeComment:
		return "comment"
	case TypeDocComment:
		return "doc_comment"
	case TypeAttribute:
		return "attribute"
	case TypeDerive:
		return "derive"
	case TypeMacro:
		return "macro"
	case TypeFormatSpecifier:
		return "format_specifier"
	case TypeKeyword:
		return "keyword"
	case TypeKeywordControl:
		return "keyword.control"
	case TypeKeywordOperator:
		return "keyword.operator"
	case TypeType:
		return "type"
	case TypeTypeBuiltin:
		return "type.builtin"
	case TypeFunction:
		return "function"
	case TypeMethod:
		return "method"
	case TypeConstructor:
		return "constructor"
	case TypeVariable:
		return "variable"
	case TypeParameter:
		return "parameter"
	case TypeField:
		return "field"
	case TypeOperator:
		return "operator"
	case TypePunctuation:
		return "punctuation"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "text"
	}
}

// Token is a syntactic/semantic region of the buffer with a category tag
// and a precedence used to resolve overlaps.
type Token struct {
	Range      buffer.PositionRange
	ByteRange  buffer.Range
	Type       Type
	Text       string
	Precedence int
}

// rangeSpanLess is the overlap-resolution tie-break: narrower range
// first, compared as (end_line-start_line, end_col-start_col)
// lexicographically.
func rangeSpanLess(a, b Token) bool {
	aLines := int64(a.Range.End.Line) - int64(a.Range.Start.Line)
	bLines := int64(b.Range.End.Line) - int64(b.Range.Start.Line)
	if aLines != bLines {
		return aLines < bLines
	}
	aCols := int64(a.Range.End.Column) - int64(a.Range.Start.Column)
	bCols := int64(b.Range.End.Column) - int64(b.Range.Start.Column)
	return aCols < bCols
}
