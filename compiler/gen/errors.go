package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates an invalid or missing configuration option.
	ErrMissingConfig = errors.New("gqlcodegen: invalid configuration")
	// ErrConfigConflict indicates two configuration choices that produce colliding artifacts.
	ErrConfigConflict = errors.New("gqlcodegen: conflicting configuration")
	// ErrUnresolvedTypeShape indicates a type reference that is neither named, list nor non-null.
	ErrUnresolvedTypeShape = errors.New("gqlcodegen: unresolved type shape")
	// ErrGenerationFailed indicates a data model mapping failure.
	ErrGenerationFailed = errors.New("gqlcodegen: generation failed")
)

// ConfigError represents an invalid configuration option value.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("gqlcodegen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("gqlcodegen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// ConflictError is returned by validation when a combination of options
// would produce output artifacts with the same name.
type ConflictError struct {
	// Options holds the names of the conflicting options.
	Options []string
	Message string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	var b strings.Builder
	b.WriteString("gqlcodegen: configuration conflict")
	if len(e.Options) > 0 {
		b.WriteString(" between ")
		b.WriteString(strings.Join(e.Options, ", "))
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConfigConflict
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, options ...string) *ConflictError {
	return &ConflictError{
		Options: options,
		Message: message,
	}
}

// TypeShapeError signals a malformed type reference in the parsed document.
type TypeShapeError struct {
	Type    string // Parent type name
	Field   string // Field name (if applicable)
	Message string
}

// Error implements the error interface.
func (e *TypeShapeError) Error() string {
	var b strings.Builder
	b.WriteString("gqlcodegen: unresolved type shape")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for TypeShapeError.
func (e *TypeShapeError) Is(target error) bool {
	return target == ErrUnresolvedTypeShape
}

// NewTypeShapeError creates a new TypeShapeError.
func NewTypeShapeError(typeName, fieldName, message string) *TypeShapeError {
	return &TypeShapeError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
	}
}

// GenerationError represents a failure while mapping one artifact.
type GenerationError struct {
	Kind       ArtifactKind
	Definition string
	Cause      error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("gqlcodegen: generation error")
	if e.Kind != "" {
		b.WriteString(" in ")
		b.WriteString(string(e.Kind))
	}
	if e.Definition != "" {
		b.WriteString(" (definition: ")
		b.WriteString(e.Definition)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(kind ArtifactKind, definition string, cause error) *GenerationError {
	return &GenerationError{
		Kind:       kind,
		Definition: definition,
		Cause:      cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsConflictError reports whether the error is a ConflictError.
func IsConflictError(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTypeShapeError reports whether the error is a TypeShapeError.
func IsTypeShapeError(err error) bool {
	var shapeErr *TypeShapeError
	return errors.As(err, &shapeErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
