package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/fieldcrypt/internal/validation"
)

// DefaultRewrapBatchSize is the number of rows read per rewrap batch.
const DefaultRewrapBatchSize = 500

// ColumnTarget names an application column that stores envelopes. Identifiers are
// interpolated into SQL and must pass Validate first.
type ColumnTarget struct {
	Table    string
	Column   string
	IDColumn string
}

// Validate checks that every identifier is a plain SQL identifier.
func (t ColumnTarget) Validate() error {
	err := validation.ValidateStruct(&t,
		validation.Field(&t.Table, validation.Required, customValidation.SQLIdentifier),
		validation.Field(&t.Column, validation.Required, customValidation.SQLIdentifier),
		validation.Field(&t.IDColumn, validation.Required, customValidation.SQLIdentifier),
	)
	return customValidation.WrapValidationError(err)
}

// ColumnValue is one row of a ColumnTarget. IDs are handled as text so any primary key
// type can be paged through.
type ColumnValue struct {
	ID    string
	Value []byte
}

// RewrapResult summarizes a rewrap run.
type RewrapResult struct {
	// Scanned counts rows read, including rows with a NULL value.
	Scanned int
	// Rewrapped counts rows re-encrypted under the current key.
	Rewrapped int
	// Skipped counts rows already under the current key or NULL.
	Skipped int
}
