package highlight

// Capture queries below are deliberately small: they cover the node kinds
// common editor themes care about, not a full grammar-specific highlights.scm.
// Capture names follow the nvim-treesitter/tree-sitter convention also used
// by the reference highlighter this package is modeled on (function, type,
// keyword, string, comment, number, ...).

const goQuery = `
(comment) @comment
(interpreted_string_literal) @string
(raw_string_literal) @string
(rune_literal) @string
(int_literal) @number
(float_literal) @number
(imaginary_literal) @number
(true) @boolean
(false) @boolean
(nil) @variable.builtin

(function_declaration name: (identifier) @function)
(method_declaration name: (field_identifier) @method)
(call_expression function: (identifier) @function)
(call_expression function: (selector_expression field: (field_identifier) @method))

(type_identifier) @type
(field_identifier) @field
(parameter_declaration name: (identifier) @parameter)

["func" "return" "if" "else" "for" "range" "switch" "case" "default"
 "go" "defer" "select" "break" "continue" "fallthrough" "goto"] @keyword.control
["package" "import" "var" "const" "type" "struct" "interface" "map" "chan"] @keyword
["+" "-" "*" "/" "%" "&" "|" "^" "<<" ">>" "&&" "||" "!" "==" "!=" "<" "<=" ">" ">=" ":=" "="] @operator
["(" ")" "[" "]" "{" "}" "," ";" "."] @punctuation
`

const pythonQuery = `
(comment) @comment
(string) @string
(integer) @number
(float) @number
(true) @boolean
(false) @boolean
(none) @variable.builtin

(function_definition name: (identifier) @function)
(class_definition name: (identifier) @type)
(call function: (identifier) @function)
(call function: (attribute attribute: (identifier) @method))

["def" "class" "return" "if" "elif" "else" "for" "while" "try" "except"
 "finally" "raise" "with" "as" "import" "from" "pass" "break" "continue"
 "lambda" "yield" "global" "nonlocal" "async" "await"] @keyword
["and" "or" "not" "in" "is"] @keyword.operator
["+" "-" "*" "/" "%" "**" "//" "==" "!=" "<" "<=" ">" ">=" "=" ":="] @operator
["(" ")" "[" "]" "{" "}" "," ":" "."] @punctuation
`

const javascriptQuery = `
(comment) @comment
(string) @string
(template_string) @string
(number) @number
(true) @boolean
(false) @boolean
(null) @variable.builtin
(undefined) @variable.builtin

(function_declaration name: (identifier) @function)
(method_definition name: (property_identifier) @method)
(call_expression function: (identifier) @function)
(call_expression function: (member_expression property: (property_identifier) @method))

["function" "return" "if" "else" "for" "while" "do" "switch" "case" "default"
 "break" "continue" "try" "catch" "finally" "throw" "class" "extends" "new"
 "typeof" "instanceof" "in" "of" "async" "await" "yield" "let" "const" "var"
 "import" "export" "from" "as" "interface" "type" "enum" "implements"] @keyword
["+" "-" "*" "/" "%" "==" "===" "!=" "!==" "<" "<=" ">" ">=" "&&" "||" "!" "=" "=>"] @operator
["(" ")" "[" "]" "{" "}" "," ";" "."] @punctuation
`

const bashQuery = `
(comment) @comment
(string) @string
(raw_string) @string
(number) @number
(variable_name) @variable
(function_definition name: (word) @function)
(command_name) @function

["if" "then" "else" "elif" "fi" "for" "while" "do" "done" "case" "esac"
 "function" "in" "return"] @keyword
`

const cQuery = `
(comment) @comment
(string_literal) @string
(char_literal) @string
(number_literal) @number
(true) @boolean
(false) @boolean

(function_declarator declarator: (identifier) @function)
(call_expression function: (identifier) @function)
(primitive_type) @type.builtin
(type_identifier) @type
(field_identifier) @field

["if" "else" "for" "while" "do" "switch" "case" "default" "break" "continue"
 "return" "goto" "struct" "union" "enum" "typedef" "sizeof" "static" "extern"
 "const" "volatile"] @keyword
["+" "-" "*" "/" "%" "==" "!=" "<" "<=" ">" ">=" "&&" "||" "!" "=" "&" "|" "^"] @operator
["(" ")" "[" "]" "{" "}" "," ";" "."] @punctuation
`
