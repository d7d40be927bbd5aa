package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Ship-related errors

type ShipError struct {
	*DomainError
	ShipName string
}

func NewShipError(shipName, message string) *ShipError {
	return &ShipError{DomainError: &DomainError{Message: message}, ShipName: shipName}
}

// InvalidShipStateError is returned when a command is not valid for the
// ship's current state (accelerate while landed, land while not adjacent...)
type InvalidShipStateError struct {
	*ShipError
	State string
}

func NewInvalidShipStateError(shipName, state, message string) *InvalidShipStateError {
	return &InvalidShipStateError{
		ShipError: NewShipError(shipName, fmt.Sprintf("%s: %s (state %s)", shipName, message, state)),
		State:     state,
	}
}

type ShipDestroyedError struct {
	*ShipError
}

func NewShipDestroyedError(shipName string) *ShipDestroyedError {
	return &ShipDestroyedError{ShipError: NewShipError(shipName, fmt.Sprintf("ship %s is destroyed", shipName))}
}

type InvalidShipDataError struct {
	*ShipError
}

func NewInvalidShipDataError(shipName, message string) *InvalidShipDataError {
	return &InvalidShipDataError{ShipError: NewShipError(shipName, message)}
}

// Turn sequencing errors

// InvalidCommandError is returned when a player command arrives in a turn
// phase that cannot accept it.
type InvalidCommandError struct {
	*DomainError
	Command string
	Phase   string
}

func NewInvalidCommandError(command, phase string) *InvalidCommandError {
	return &InvalidCommandError{
		DomainError: &DomainError{Message: fmt.Sprintf("command %s is not valid while %s", command, phase)},
		Command:     command,
		Phase:       phase,
	}
}

// Board errors

// ConfigurationError marks a board that cannot be built from its system
// description. No partial board is ever returned alongside it.
type ConfigurationError struct {
	*DomainError
	Body string
}

func NewConfigurationError(body, message string) *ConfigurationError {
	msg := message
	if body != "" {
		msg = fmt.Sprintf("%s: %s", body, message)
	}
	return &ConfigurationError{DomainError: &DomainError{Message: msg}, Body: body}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError is returned by repositories and lookups
type NotFoundError struct {
	*DomainError
	Kind string
	Key  string
}

func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", kind, key)},
		Kind:        kind,
		Key:         key,
	}
}
