package bindgen

import (
	"errors"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{
			"UnknownAliasError",
			&UnknownAliasError{Signature: "mint(uint256)", Alias: "Mint"},
			`bindgen: alias "Mint" references unknown function signature "mint(uint256)"`,
		},
		{
			"DuplicateNetworkError",
			&DuplicateNetworkError{NetworkID: 4},
			"bindgen: duplicate manual deployment for network 4",
		},
		{
			"UnsupportedTypeError",
			&UnsupportedTypeError{Type: "(address,uint256)", Reason: "tuple parameters are not supported"},
			`bindgen: unsupported parameter type "(address,uint256)": tuple parameters are not supported`,
		},
		{
			"MalformedDescriptorError",
			&MalformedDescriptorError{Field: "abi", Reason: "multiple constructors"},
			`bindgen: malformed descriptor field "abi": multiple constructors`,
		},
		{
			"DuplicateIdentifierError",
			&DuplicateIdentifierError{
				Identifier: "Transfer",
				Signatures: []string{"transfer(address)", "transfer(address,uint256)"},
			},
			`bindgen: functions transfer(address), transfer(address,uint256) all resolve to method name "Transfer"; disambiguate with an alias`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestMalformedDescriptorUnwrap(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := &MalformedDescriptorError{Field: "artifact", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
	want := `bindgen: malformed descriptor field "artifact": unexpected end of JSON input`
	if err.Error() != want {
		t.Errorf("Expected error message %q, got %q", want, err.Error())
	}
}
