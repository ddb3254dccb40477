package highlight

import colorful "github.com/lucasb-eyer/go-colorful"

// Style carries the visual attributes a renderer applies to a themed
// token, independent of any particular terminal or GUI color model.
type Style struct {
	Color     colorful.Color
	Bold      bool
	Italic    bool
	Underline bool
}

// Theme maps every Type to a Style. Themes are looked up by name from a
// small built-in registry; callers needing a custom palette construct a
// Theme directly.
type Theme struct {
	Name   string
	Styles map[Type]Style
}

// ThemedToken pairs a Token with the Style its Theme assigns to its Type.
type ThemedToken struct {
	Token
	Style Style
}

func mustColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// DefaultTheme is a dark palette loosely modeled on common editor themes,
// covering every Type so GetThemedTokens never has to fall back silently.
var DefaultTheme = Theme{
	Name: "default-dark",
	Styles: map[Type]Style{
		TypeError:           {Color: mustColor("#f44747")},
		TypeWarning:         {Color: mustColor("#cca700")},
		TypeString:          {Color: mustColor("#ce9178")},
		TypeComment:         {Color: mustColor("#6a9955"), Italic: true},
		TypeDocComment:      {Color: mustColor("#6a9955"), Italic: true},
		TypeAttribute:       {Color: mustColor("#d7ba7d")},
		TypeDerive:          {Color: mustColor("#d7ba7d")},
		TypeMacro:           {Color: mustColor("#c586c0")},
		TypeFormatSpecifier: {Color: mustColor("#d7ba7d")},
		TypeKeyword:         {Color: mustColor("#569cd6"), Bold: true},
		TypeKeywordControl:  {Color: mustColor("#c586c0"), Bold: true},
		TypeKeywordOperator: {Color: mustColor("#569cd6")},
		TypeType:            {Color: mustColor("#4ec9b0")},
		TypeTypeBuiltin:     {Color: mustColor("#4ec9b0")},
		TypeFunction:        {Color: mustColor("#dcdcaa")},
		TypeMethod:          {Color: mustColor("#dcdcaa")},
		TypeConstructor:     {Color: mustColor("#4ec9b0")},
		TypeVariable:        {Color: mustColor("#9cdcfe")},
		TypeParameter:       {Color: mustColor("#9cdcfe")},
		TypeField:           {Color: mustColor("#9cdcfe")},
		TypeOperator:        {Color: mustColor("#d4d4d4")},
		TypePunctuation:     {Color: mustColor("#d4d4d4")},
		TypeNumber:          {Color: mustColor("#b5cea8")},
		TypeBoolean:         {Color: mustColor("#569cd6")},
		TypeText:            {Color: mustColor("#d4d4d4")},
	},
}

// LightTheme is a light-background counterpart to DefaultTheme.
var LightTheme = Theme{
	Name: "default-light",
	Styles: map[Type]Style{
		TypeError:           {Color: mustColor("#cd3131")},
		TypeWarning:         {Color: mustColor("#bf8803")},
		TypeString:          {Color: mustColor("#a31515")},
		TypeComment:         {Color: mustColor("#008000"), Italic: true},
		TypeDocComment:      {Color: mustColor("#008000"), Italic: true},
		TypeAttribute:       {Color: mustColor("#e2a30c")},
		TypeDerive:          {Color: mustColor("#e2a30c")},
		TypeMacro:           {Color: mustColor("#af00db")},
		TypeFormatSpecifier: {Color: mustColor("#e2a30c")},
		TypeKeyword:         {Color: mustColor("#0000ff"), Bold: true},
		TypeKeywordControl:  {Color: mustColor("#af00db"), Bold: true},
		TypeKeywordOperator: {Color: mustColor("#0000ff")},
		TypeType:            {Color: mustColor("#267f99")},
		TypeTypeBuiltin:     {Color: mustColor("#267f99")},
		TypeFunction:        {Color: mustColor("#795e26")},
		TypeMethod:          {Color: mustColor("#795e26")},
		TypeConstructor:     {Color: mustColor("#267f99")},
		TypeVariable:        {Color: mustColor("#001080")},
		TypeParameter:       {Color: mustColor("#001080")},
		TypeField:           {Color: mustColor("#001080")},
		TypeOperator:        {Color: mustColor("#000000")},
		TypePunctuation:     {Color: mustColor("#000000")},
		TypeNumber:          {Color: mustColor("#098658")},
		TypeBoolean:         {Color: mustColor("#0000ff")},
		TypeText:            {Color: mustColor("#000000")},
	},
}

var builtinThemes = map[string]Theme{
	DefaultTheme.Name: DefaultTheme,
	LightTheme.Name:   LightTheme,
}

// ThemeByName looks up a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	t, ok := builtinThemes[name]
	return t, ok
}

// Style resolves the Style for typ, falling back to TypeText's style if
// the theme doesn't cover typ explicitly.
func (t Theme) Style(typ Type) Style {
	if s, ok := t.Styles[typ]; ok {
		return s
	}
	return t.Styles[TypeText]
}
