package uasset

import "errors"

var (
	ErrorBadTag             = errors.New("Package file tag mismatch")
	ErrorTruncated          = errors.New("Unexpected end of data")
	ErrorUnsupportedVersion = errors.New("Unsupported package version")
	ErrorBadIndex           = errors.New("Index out of range")
	ErrorBadString          = errors.New("Malformed string")
	ErrorTrailingData       = errors.New("Value did not consume all serialized data")
	ErrorUnsupportedType    = errors.New("Property type can't be serialized here")
	ErrorTypeMismatch       = errors.New("Property does not match declared type")
	ErrorMalformedExport    = errors.New("Export body is malformed")
)
