package diag

import "fmt"

// Code classifies a diagnostic. The syntax family is produced by the
// parser and validator, the format family by the encoder, and the file
// family by the jsonio layer.
type Code int

const (
	CodeNone Code = iota
	CodeUnexpectedChar
	CodeInvalidNumber
	CodeInvalidNumberNaN
	CodeInvalidNumberInfinity
	CodeUnterminatedString
	CodeInvalidStringChar
	CodeInvalidEscape
	CodeInvalidUnicode
	CodeExpectedKey
	CodeExpectedColon
	CodeExpectedCommaOrBracket
	CodeExpectedCommaOrBrace
	CodeInvalidValue
	CodeAllocation
	CodeMaxNesting
	CodeUnexpectedContent

	CodeFormatInvalidConfig
	CodeFormatNullInput
	CodeFormatInvalidNumberNaN
	CodeFormatInvalidNumberInfinity

	CodeFileRead
	CodeFileWrite
)

var codeNames = map[Code]string{
	CodeNone:                        "none",
	CodeUnexpectedChar:              "unexpected character",
	CodeInvalidNumber:               "invalid number",
	CodeInvalidNumberNaN:            "invalid number (nan)",
	CodeInvalidNumberInfinity:       "invalid number (infinity)",
	CodeUnterminatedString:          "unterminated string",
	CodeInvalidStringChar:           "invalid string character",
	CodeInvalidEscape:               "invalid escape sequence",
	CodeInvalidUnicode:              "invalid unicode escape",
	CodeExpectedKey:                 "expected key",
	CodeExpectedColon:               "expected colon",
	CodeExpectedCommaOrBracket:      "expected ',' or ']'",
	CodeExpectedCommaOrBrace:        "expected ',' or '}'",
	CodeInvalidValue:                "invalid value",
	CodeAllocation:                  "allocation failure",
	CodeMaxNesting:                  "maximum nesting exceeded",
	CodeUnexpectedContent:           "unexpected trailing content",
	CodeFormatInvalidConfig:         "invalid format config",
	CodeFormatNullInput:             "null format input",
	CodeFormatInvalidNumberNaN:      "cannot format nan",
	CodeFormatInvalidNumberInfinity: "cannot format infinity",
	CodeFileRead:                    "file read error",
	CodeFileWrite:                   "file write error",
}

func (c Code) String() string {
	s, ok := codeNames[c]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown code %d>", int(c))
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
