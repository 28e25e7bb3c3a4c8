package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names of the fixed CSV import schema
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldPrice       = "price"
	FieldCount       = "count"
)

// RowErrorKind classifies why a CSV row failed validation
type RowErrorKind string

const (
	// MissingField means a required field is absent or blank
	MissingField RowErrorKind = "MissingField"
	// InvalidValue means a field is present but fails its constraint
	InvalidValue RowErrorKind = "InvalidValue"
)

// RowError is the per-row validation failure. Rows that fail validation are
// dropped from the import, never retried and never surfaced to the uploader.
type RowError struct {
	Kind   RowErrorKind
	Field  string
	Reason string
}

// Error implements the error interface
func (e *RowError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Field, e.Reason)
}

// ImportRow is one parsed CSV line: the raw field map plus its position in
// the file. Values stay strings until the writer coerces them.
type ImportRow struct {
	Line   int
	Fields map[string]string
}

// Candidate is a validated import row: the product fields plus the paired
// stock count, awaiting ID generation at write time.
type Candidate struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price" validate:"gt=0"`
	Count       int     `json:"count" validate:"gte=0"`
}

var candidateValidator = validator.New()

// CandidateFromFields coerces and validates one raw CSV field map against the
// fixed product schema. Classification follows the schema rules: a blank
// required field is MissingField, a present but unparseable or out-of-range
// value is InvalidValue.
func CandidateFromFields(fields map[string]string) (*Candidate, *RowError) {
	title := strings.TrimSpace(fields[FieldTitle])
	if title == "" {
		return nil, &RowError{Kind: MissingField, Field: FieldTitle, Reason: "title is required"}
	}

	priceRaw := strings.TrimSpace(fields[FieldPrice])
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return nil, &RowError{Kind: InvalidValue, Field: FieldPrice, Reason: "price must be a number"}
	}

	countRaw := strings.TrimSpace(fields[FieldCount])
	count, err := strconv.Atoi(countRaw)
	if err != nil {
		return nil, &RowError{Kind: InvalidValue, Field: FieldCount, Reason: "count must be an integer"}
	}

	candidate := &Candidate{
		Title:       title,
		Description: fields[FieldDescription],
		Image:       fields[FieldImage],
		Price:       price,
		Count:       count,
	}

	if err := candidateValidator.Struct(candidate); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			return nil, &RowError{
				Kind:   InvalidValue,
				Field:  strings.ToLower(fe.Field()),
				Reason: fmt.Sprintf("failed constraint %q", fe.Tag()),
			}
		}
		return nil, &RowError{Kind: InvalidValue, Field: "row", Reason: err.Error()}
	}

	return candidate, nil
}

// CreatedItem is one committed product+stock pair
type CreatedItem struct {
	Product *Product `json:"product"`
	Stock   *Stock   `json:"stock"`
}

// BatchFailure reports one row of a batch that failed its transaction
type BatchFailure struct {
	MessageID string
	Err       error
}

// BatchOutcome collects the product+stock pairs committed within one queue
// delivery batch. It exists only to compose the notification payload.
type BatchOutcome struct {
	Items    []CreatedItem
	Failures []BatchFailure
}

// HasEmpty reports whether any committed item has a zero stock count
func (o *BatchOutcome) HasEmpty() bool {
	for _, item := range o.Items {
		if item.Stock == nil || item.Stock.Count == 0 {
			return true
		}
	}
	return false
}
