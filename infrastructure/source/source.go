// Package source provides the prototype sources a registry is built from:
// the table compiled into the binary and side-loaded table files.
package source

import (
	"github.com/Masterminds/semver/v3"
	"github.com/phpshell/protoreg/application/validation"
	"github.com/phpshell/protoreg/domain/entities"
	"github.com/phpshell/protoreg/domain/errors"
)

// SupportedFormat is the semver constraint a table's format version must satisfy.
const SupportedFormat = "~1"

// checkTable enforces the format version and the record rules on a decoded table.
func checkTable(name string, table *entities.Table) error {
	if err := checkFormat(name, table.Format); err != nil {
		return err
	}
	return validation.AsError(name, validation.ValidateRecords(table))
}

// checkFormat rejects a table whose layout version this build cannot read.
func checkFormat(name, format string) error {
	constraint, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return &errors.FormatError{Source: name, Format: format, Supported: SupportedFormat, Err: err}
	}

	v, err := semver.NewVersion(format)
	if err != nil {
		return &errors.FormatError{Source: name, Format: format, Supported: SupportedFormat, Err: err}
	}
	if !constraint.Check(v) {
		return &errors.FormatError{Source: name, Format: format, Supported: SupportedFormat}
	}
	return nil
}
