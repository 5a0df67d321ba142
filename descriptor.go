package bindgen

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Kind identifies the ABI category of a parameter type.
type Kind uint8

const (
	// KindBool is the `bool` type.
	KindBool Kind = iota

	// KindInt is a signed integer type with an explicit bit width.
	KindInt

	// KindUint is an unsigned integer type with an explicit bit width.
	KindUint

	// KindAddress is the 20-byte `address` type.
	KindAddress

	// KindFixedBytes is a `bytesN` type for 1 <= N <= 32.
	KindFixedBytes

	// KindBytes is the dynamically sized `bytes` type.
	KindBytes

	// KindString is the dynamically sized `string` type.
	KindString

	// KindArray is a dynamically sized array of a single element type.
	KindArray

	// KindFixedArray is a fixed length array of a single element type.
	KindFixedArray

	// KindTuple is an ordered list of component types.
	KindTuple
)

// ParamType describes the ABI type of a single function or event
// parameter. It is a recursive tagged union: exactly the fields
// relevant to Kind are populated.
type ParamType struct {
	Kind Kind

	// Bits is the bit width for KindInt and KindUint.
	Bits int

	// Size is the byte count for KindFixedBytes and the element count
	// for KindFixedArray.
	Size int

	// Elem is the element type for KindArray and KindFixedArray.
	Elem *ParamType

	// Components are the member types for KindTuple.
	Components []ParamType
}

// BoolType returns the `bool` parameter type.
func BoolType() ParamType { return ParamType{Kind: KindBool} }

// IntType returns a signed integer type of the given bit width.
func IntType(bits int) ParamType { return ParamType{Kind: KindInt, Bits: bits} }

// UintType returns an unsigned integer type of the given bit width.
func UintType(bits int) ParamType { return ParamType{Kind: KindUint, Bits: bits} }

// AddressType returns the `address` parameter type.
func AddressType() ParamType { return ParamType{Kind: KindAddress} }

// FixedBytesType returns a `bytesN` type of the given byte count.
func FixedBytesType(size int) ParamType { return ParamType{Kind: KindFixedBytes, Size: size} }

// BytesType returns the dynamically sized `bytes` parameter type.
func BytesType() ParamType { return ParamType{Kind: KindBytes} }

// StringType returns the `string` parameter type.
func StringType() ParamType { return ParamType{Kind: KindString} }

// ArrayOf returns a dynamically sized array of elem.
func ArrayOf(elem ParamType) ParamType {
	return ParamType{Kind: KindArray, Elem: &elem}
}

// FixedArrayOf returns a fixed size array of elem.
func FixedArrayOf(elem ParamType, size int) ParamType {
	return ParamType{Kind: KindFixedArray, Elem: &elem, Size: size}
}

// TupleOf returns a tuple of the given component types.
func TupleOf(components ...ParamType) ParamType {
	return ParamType{Kind: KindTuple, Components: components}
}

// String returns the canonical ABI text for the type, as used in
// function and event signatures.
func (t ParamType) String() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("int%d", t.Bits)
	case KindUint:
		return fmt.Sprintf("uint%d", t.Bits)
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return fmt.Sprintf("bytes%d", t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindFixedArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Size)
	case KindTuple:
		parts := make([]string, len(t.Components))
		for i, c := range t.Components {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, ",") + ")"
	}
	panic(fmt.Sprintf("bindgen: unknown parameter kind %d", t.Kind))
}

// Param is a named function input or output. The name may be empty.
type Param struct {
	Name string
	Type ParamType
}

// EventParam is a single event parameter. Indexed parameters occupy
// log topic slots instead of the log data section.
type EventParam struct {
	Name    string
	Type    ParamType
	Indexed bool
}

// Function describes a single callable contract function.
type Function struct {
	// RawName is the function name exactly as declared in the ABI.
	RawName string

	Inputs  []Param
	Outputs []Param

	// Const marks functions that do not mutate contract state and are
	// invoked through the read-only call path.
	Const bool
}

// Signature returns the canonical signature text, e.g.
// `transfer(address,uint256)`. It is used as the runtime lookup key
// and as the documentation map key.
func (f *Function) Signature() string {
	types := make([]ParamType, len(f.Inputs))
	for i, in := range f.Inputs {
		types[i] = in.Type
	}
	return signatureOf(f.RawName, types)
}

// Event describes a single contract event.
type Event struct {
	// RawName is the event name exactly as declared in the ABI.
	RawName string

	Inputs []EventParam

	// Anonymous events carry no signature hash in their first topic
	// and can only be decoded by structural trial.
	Anonymous bool
}

// Signature returns the canonical signature text, e.g.
// `Transfer(address,address,uint256)`.
func (e *Event) Signature() string {
	types := make([]ParamType, len(e.Inputs))
	for i, in := range e.Inputs {
		types[i] = in.Type
	}
	return signatureOf(e.RawName, types)
}

// Topic returns the Keccak-256 hash of the canonical signature. For
// non-anonymous events this is the value of the log's first topic.
func (e *Event) Topic() common.Hash {
	return crypto.Keccak256Hash([]byte(e.Signature()))
}

func signatureOf(name string, types []ParamType) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// placeholderLen is the character span a solc library placeholder
// occupies in unlinked bytecode hex.
const placeholderLen = 40

// Bytecode is the (possibly unlinked) deployment bytecode of a
// contract, stored as hex text without the 0x prefix. Library
// placeholders occupy 40-character `__Name...__` spans that must be
// substituted with concrete addresses before deployment.
type Bytecode struct {
	object string
}

// ParseBytecode parses hex bytecode text. A 0x prefix is stripped and
// empty input yields empty bytecode.
func ParseBytecode(s string) (Bytecode, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return Bytecode{}, &MalformedDescriptorError{
			Field:  "bytecode",
			Reason: "odd length hex",
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c == '_' || c == '$' || c == '.' || c == ':' || c == '/' || c == '-':
			// Library placeholder spans carry source paths and
			// identifiers, not just hex.
		default:
			return Bytecode{}, &MalformedDescriptorError{
				Field:  "bytecode",
				Reason: fmt.Sprintf("invalid character %q at offset %d", c, i),
			}
		}
	}
	return Bytecode{object: s}, nil
}

// Empty reports whether there is no bytecode at all. Contracts with
// empty bytecode are interfaces or libraries-only artifacts and are
// not deployable.
func (b Bytecode) Empty() bool { return b.object == "" }

// String returns the bytecode hex without a 0x prefix.
func (b Bytecode) String() string { return b.object }

// Placeholders returns the distinct library placeholder names in
// first-occurrence order.
func (b Bytecode) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)
	for i := 0; i+placeholderLen <= len(b.object); {
		if b.object[i:i+2] != "__" {
			i++
			continue
		}
		name := strings.Trim(b.object[i+2:i+placeholderLen], "_")
		name = strings.TrimPrefix(name, "$")
		name = strings.TrimSuffix(name, "$")
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += placeholderLen
	}
	return names
}

// Descriptor is the normalized interface description of a contract:
// its callable functions, events, deployment bytecode, known network
// deployments and documentation. A Descriptor is built once by the
// artifact loader and is read-only afterwards.
type Descriptor struct {
	// Name is the contract name from the artifact. It may be empty for
	// sources that do not carry one.
	Name string

	// Doc is contract level documentation, if any.
	Doc string

	// Functions in artifact declaration order.
	Functions []Function

	// Constructor is nil for contracts without an explicit constructor.
	Constructor *Function

	// Events keyed by event name. The collection is unordered; every
	// consumer that needs determinism imposes its own order.
	Events map[string]Event

	Bytecode Bytecode

	// Networks maps network ids to known deployment addresses.
	Networks map[uint32]common.Address

	// Docs maps canonical signatures to documentation text.
	Docs map[string]string
}

// validate enforces the descriptor invariants: unique function
// signatures and unique event signatures.
func (d *Descriptor) validate() error {
	seen := make(map[string]bool, len(d.Functions))
	for _, fn := range d.Functions {
		sig := fn.Signature()
		if seen[sig] {
			return &MalformedDescriptorError{
				Field:  "abi",
				Reason: fmt.Sprintf("duplicate function signature %q", sig),
			}
		}
		seen[sig] = true
	}
	sigs := make(map[string]bool, len(d.Events))
	for _, ev := range d.Events {
		sig := ev.Signature()
		if sigs[sig] {
			return &MalformedDescriptorError{
				Field:  "abi",
				Reason: fmt.Sprintf("duplicate event signature %q", sig),
			}
		}
		sigs[sig] = true
	}
	return nil
}
