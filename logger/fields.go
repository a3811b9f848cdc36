package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Domain identity
	FieldScope     = "scope"
	FieldRegionID  = "region_id"
	FieldRegion    = "region"
	FieldTag       = "tag"
	FieldNamespace = "namespace"

	// Documents
	FieldDocument = "document"
	FieldFormat   = "format"
	FieldVersion  = "version"
	FieldPolicy   = "policy"

	// Operations
	FieldOperation = "operation"
	FieldQuery     = "query"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount      = "count"
	FieldTotalCount = "total_count"
	FieldSkipped    = "skipped"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Importer struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewImporter() *Importer {
//	    return &Importer{
//	        logger: logger.ComponentLogger("realm.codec"),
//	    }
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	docLogger := logger.ChildLogger(baseLogger, logger.FieldDocument, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
