package siteconf

import "errors"

var (
	// ErrUnknownField classifies strict parse failures caused by unknown keys.
	// Use errors.Is(err, ErrUnknownField) instead of string matching.
	ErrUnknownField = errors.New("unknown config field")

	// ErrMultipleDocuments is returned when a config file holds more than one
	// YAML document or trailing content.
	ErrMultipleDocuments = errors.New("config file contains multiple documents")
)
