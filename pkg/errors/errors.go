package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFetch represents catalog page fetch errors
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeDecoding represents non UTF-8 page bodies
	ErrorTypeDecoding ErrorType = "decoding"
	// ErrorTypeArtifact represents output artifact write errors
	ErrorTypeArtifact ErrorType = "artifact"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeDataset represents tabular dataset loading errors
	ErrorTypeDataset ErrorType = "dataset"
	// ErrorTypeCompletion represents text-generation service errors
	ErrorTypeCompletion ErrorType = "completion"
)

// CatalogError represents an error raised while extracting or recommending courses
type CatalogError struct {
	Type    ErrorType
	Subject string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Subject, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Subject, e.Message)
}

// Unwrap returns the underlying error
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// New creates a new CatalogError
func New(errType ErrorType, subject, message string, err error) *CatalogError {
	return &CatalogError{
		Type:    errType,
		Subject: subject,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewFetch creates a new fetch error
func NewFetch(subject, message string, err error) *CatalogError {
	return New(ErrorTypeFetch, subject, message, err)
}

// NewDecoding creates a new decoding error
func NewDecoding(subject, message string) *CatalogError {
	return New(ErrorTypeDecoding, subject, message, nil)
}

// NewArtifact creates a new artifact error
func NewArtifact(subject, message string, err error) *CatalogError {
	return New(ErrorTypeArtifact, subject, message, err)
}

// NewCache creates a new cache error
func NewCache(subject, message string, err error) *CatalogError {
	return New(ErrorTypeCache, subject, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(subject, message string, err error) *CatalogError {
	return New(ErrorTypePublisher, subject, message, err)
}

// NewValidation creates a new validation error
func NewValidation(subject, message string) *CatalogError {
	return New(ErrorTypeValidation, subject, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *CatalogError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// NewDataset creates a new dataset error; source is the file being loaded
func NewDataset(source, message string, err error) *CatalogError {
	return New(ErrorTypeDataset, source, message, err)
}

// NewCompletion creates a new completion error
func NewCompletion(message string, err error) *CatalogError {
	return New(ErrorTypeCompletion, "", message, err)
}

// Is reports whether err wraps a CatalogError of the given type
func Is(err error, errType ErrorType) bool {
	var ce *CatalogError
	if stderrors.As(err, &ce) {
		return ce.Type == errType
	}
	return false
}

// IsFetch reports whether err is a fetch error
func IsFetch(err error) bool {
	return Is(err, ErrorTypeFetch)
}

// IsDecoding reports whether err is a decoding error
func IsDecoding(err error) bool {
	return Is(err, ErrorTypeDecoding)
}
