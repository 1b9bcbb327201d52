// Package converr defines the error taxonomy shared by all message converters.
//
// Every stage of the pipeline fails fast with the most specific kind:
// ParseError for input that prevents any field extraction, MissingFieldError for
// an absent mandatory tag, ValidationError for a present field that fails
// semantic validation, and ConversionError for a mapping failure after
// extraction and validation succeeded.
package converr

import (
	"errors"
	"fmt"
)

// ParseError represents malformed or empty input that prevents field extraction.
type ParseError struct {
	MessageType string
	Reason      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse message: %s", e.MessageType, e.Reason)
}

// MissingFieldError is returned when a mandatory tag is absent from the input.
type MissingFieldError struct {
	MessageType string
	Tag         string
	FieldName   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: mandatory field %s (%s) is missing", e.MessageType, e.Tag, e.FieldName)
}

// ValidationError is returned when a present field fails semantic validation,
// such as an invalid calendar date, a non-positive amount or an unrecognized code.
type ValidationError struct {
	MessageType string
	Field       string
	Value       string
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s '%s': %s", e.MessageType, e.Field, e.Value, e.Reason)
}

// ConversionError wraps a failure while assembling the target document tree.
// It is never raised before extraction and validation have passed.
type ConversionError struct {
	MessageType string
	Err         error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: conversion to ISO 20022 failed: %v", e.MessageType, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
