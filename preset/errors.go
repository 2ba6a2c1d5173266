package preset

import (
	"errors"
	"fmt"
)

var (
	ErrorWrongExportKind           = errors.New("Export is not a DataTableExport")
	ErrorUnexpectedPropertyShape   = errors.New("Unexpected map entry shape")
	ErrorUnrecognizedUpgradeKey    = errors.New("Unrecognized key name")
	ErrorUnrecognizedStringField   = errors.New("Unrecognized field name for StrProperty")
	ErrorUnexpectedExportShape     = errors.New("Unrecognized export type")
	ErrorUnrecognizedUpgradeOption = errors.New("Unrecognized upgrade")
)

/* NameError carries the offending name for the Unrecognized* errors. */
type NameError struct {
	Err  error
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Name)
}

func (e *NameError) Unwrap() error {
	return e.Err
}
