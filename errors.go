package bindgen

import (
	"fmt"
	"strings"
)

// UnknownAliasError indicates a manual method alias references a
// function signature that does not exist in the descriptor.
type UnknownAliasError struct {
	Signature string
	Alias     string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("bindgen: alias %q references unknown function signature %q", e.Alias, e.Signature)
}

// DuplicateNetworkError indicates two manual deployment entries were
// configured for the same network id.
type DuplicateNetworkError struct {
	NetworkID uint32
}

func (e *DuplicateNetworkError) Error() string {
	return fmt.Sprintf("bindgen: duplicate manual deployment for network %d", e.NetworkID)
}

// UnsupportedTypeError indicates a parameter type has no Go
// representation in generated bindings.
type UnsupportedTypeError struct {
	Type   string
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("bindgen: unsupported parameter type %q: %s", e.Type, e.Reason)
}

// MalformedDescriptorError indicates structurally invalid artifact or
// descriptor input. Generation never proceeds past one.
type MalformedDescriptorError struct {
	Field  string
	Reason string
	Err    error
}

func (e *MalformedDescriptorError) Error() string {
	msg := fmt.Sprintf("bindgen: malformed descriptor field %q", e.Field)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDescriptorError) Unwrap() error {
	return e.Err
}

// DuplicateIdentifierError indicates two distinct function signatures
// resolved to the same generated method identifier. The collision is
// surfaced instead of silently shadowing one binding; a manual alias
// for one of the signatures resolves it.
type DuplicateIdentifierError struct {
	Identifier string
	Signatures []string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("bindgen: functions %s all resolve to method name %q; disambiguate with an alias",
		strings.Join(e.Signatures, ", "), e.Identifier)
}
