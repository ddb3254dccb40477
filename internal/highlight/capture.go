package highlight

// captureTypes maps a tree-sitter capture name (the name after @ in a
// query) to the closed Type set. A capture with no entry here is skipped
// entirely rather than guessed at.
var captureTypes = map[string]Type{
	"comment":          TypeComment,
	"comment.doc":      TypeDocComment,
	"string":           TypeString,
	"string.special":   TypeFormatSpecifier,
	"number":           TypeNumber,
	"boolean":          TypeBoolean,
	"variable":         TypeVariable,
	"variable.builtin": TypeVariable,
	"parameter":        TypeParameter,
	"field":            TypeField,
	"property":         TypeField,
	"function":         TypeFunction,
	"function.builtin": TypeFunction,
	"method":           TypeMethod,
	"constructor":      TypeConstructor,
	"type":             TypeType,
	"type.builtin":     TypeTypeBuiltin,
	"keyword":          TypeKeyword,
	"keyword.control":  TypeKeywordControl,
	"keyword.operator": TypeKeywordOperator,
	"operator":         TypeOperator,
	"punctuation":      TypePunctuation,
	"attribute":        TypeAttribute,
	"derive":           TypeDerive,
	"macro":            TypeMacro,
	"error":            TypeError,
}

// typeForCapture resolves a capture name, falling back to the part before
// the first '.' when an exact match isn't registered (e.g. an unknown
// "string.escape" still resolves through "string").
func typeForCapture(name string) (Type, bool) {
	if t, ok := captureTypes[name]; ok {
		return t, true
	}
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			if t, ok := captureTypes[name[:i]]; ok {
				return t, true
			}
			break
		}
	}
	return 0, false
}
