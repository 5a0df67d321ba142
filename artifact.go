package bindgen

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Artifact is a loaded contract artifact: the normalized descriptor
// plus the raw JSON it was built from. The raw bytes are embedded into
// generated bindings so the runtime can reparse the same source.
type Artifact struct {
	Descriptor Descriptor
	Source     []byte
}

// truffle artifact envelope. Only the fields the generator consumes
// are decoded; everything else in the artifact is ignored.
type artifactJSON struct {
	ContractName string                     `json:"contractName"`
	ABI          []abiEntryJSON             `json:"abi"`
	Bytecode     string                     `json:"bytecode"`
	Networks     map[string]networkJSON     `json:"networks"`
	Devdoc       docJSON                    `json:"devdoc"`
	Userdoc      docJSON                    `json:"userdoc"`
}

type abiEntryJSON struct {
	Type            string         `json:"type"`
	Name            string         `json:"name"`
	Inputs          []abiParamJSON `json:"inputs"`
	Outputs         []abiParamJSON `json:"outputs"`
	StateMutability string         `json:"stateMutability"`
	Constant        *bool          `json:"constant"`
	Anonymous       bool           `json:"anonymous"`
}

type abiParamJSON struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Components []abiParamJSON `json:"components"`
	Indexed    bool           `json:"indexed"`
}

type networkJSON struct {
	Address string `json:"address"`
}

type docJSON struct {
	Details string `json:"details"`
	Methods map[string]struct {
		Details string `json:"details"`
	} `json:"methods"`
}

// LoadArtifact reads and parses a contract artifact from disk.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading artifact")
	}
	return ParseArtifact(data)
}

// ParseArtifact parses a truffle-style contract artifact JSON document
// into an Artifact. Structural problems are reported as
// MalformedDescriptorError values.
func ParseArtifact(data []byte) (*Artifact, error) {
	var raw artifactJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedDescriptorError{Field: "artifact", Err: err}
	}

	d := Descriptor{
		Name:     raw.ContractName,
		Doc:      raw.Devdoc.Details,
		Events:   make(map[string]Event),
		Networks: make(map[uint32]common.Address),
		Docs:     make(map[string]string),
	}

	for _, entry := range raw.ABI {
		switch entry.Type {
		case "function", "":
			fn, err := convertFunction(entry)
			if err != nil {
				return nil, err
			}
			d.Functions = append(d.Functions, fn)
		case "constructor":
			fn, err := convertFunction(entry)
			if err != nil {
				return nil, err
			}
			fn.RawName = ""
			if d.Constructor != nil {
				return nil, &MalformedDescriptorError{Field: "abi", Reason: "multiple constructors"}
			}
			d.Constructor = &fn
		case "event":
			ev, err := convertEvent(entry)
			if err != nil {
				return nil, err
			}
			// Event records are named after the event, so overloaded
			// event names cannot generate distinct types.
			if _, ok := d.Events[ev.RawName]; ok {
				return nil, &MalformedDescriptorError{
					Field:  "abi",
					Reason: "duplicate event name " + strconv.Quote(ev.RawName),
				}
			}
			d.Events[ev.RawName] = ev
		case "fallback", "receive", "error":
			// Not bindable; nothing to generate.
		default:
			return nil, &MalformedDescriptorError{
				Field:  "abi",
				Reason: "unknown entry type " + strconv.Quote(entry.Type),
			}
		}
	}

	bytecode, err := ParseBytecode(raw.Bytecode)
	if err != nil {
		return nil, err
	}
	d.Bytecode = bytecode

	for key, network := range raw.Networks {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, &MalformedDescriptorError{
				Field:  "networks",
				Reason: "invalid network id " + strconv.Quote(key),
			}
		}
		if !common.IsHexAddress(network.Address) {
			return nil, &MalformedDescriptorError{
				Field:  "networks",
				Reason: "invalid address " + strconv.Quote(network.Address) + " for network " + key,
			}
		}
		d.Networks[uint32(id)] = common.HexToAddress(network.Address)
	}

	// Devdoc wins over userdoc for the same signature, matching the
	// lookup order of the upstream tooling this loader mirrors.
	for sig, entry := range raw.Userdoc.Methods {
		if entry.Details != "" {
			d.Docs[sig] = entry.Details
		}
	}
	for sig, entry := range raw.Devdoc.Methods {
		if entry.Details != "" {
			d.Docs[sig] = entry.Details
		}
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	return &Artifact{Descriptor: d, Source: data}, nil
}

func convertFunction(entry abiEntryJSON) (Function, error) {
	fn := Function{
		RawName: entry.Name,
		Const:   isConstant(entry),
	}
	for _, in := range entry.Inputs {
		t, err := convertParamType(in)
		if err != nil {
			return Function{}, err
		}
		fn.Inputs = append(fn.Inputs, Param{Name: in.Name, Type: t})
	}
	for _, out := range entry.Outputs {
		t, err := convertParamType(out)
		if err != nil {
			return Function{}, err
		}
		fn.Outputs = append(fn.Outputs, Param{Name: out.Name, Type: t})
	}
	return fn, nil
}

func isConstant(entry abiEntryJSON) bool {
	switch entry.StateMutability {
	case "view", "pure":
		return true
	case "":
		// Legacy artifacts predate stateMutability and carry a
		// "constant" flag instead.
		return entry.Constant != nil && *entry.Constant
	default:
		return false
	}
}

func convertEvent(entry abiEntryJSON) (Event, error) {
	if entry.Name == "" {
		return Event{}, &MalformedDescriptorError{Field: "abi", Reason: "event with empty name"}
	}
	ev := Event{
		RawName:   entry.Name,
		Anonymous: entry.Anonymous,
	}
	for _, in := range entry.Inputs {
		t, err := convertParamType(in)
		if err != nil {
			return Event{}, err
		}
		ev.Inputs = append(ev.Inputs, EventParam{Name: in.Name, Type: t, Indexed: in.Indexed})
	}
	return ev, nil
}

// convertParamType parses an ABI type declaration through go-ethereum
// and converts the result into the generator's ParamType union.
func convertParamType(param abiParamJSON) (ParamType, error) {
	parsed, err := abi.NewType(param.Type, "", marshalComponents(param.Components))
	if err != nil {
		return ParamType{}, &MalformedDescriptorError{
			Field: "abi",
			Err:   errors.Wrapf(err, "parsing type %q", param.Type),
		}
	}
	return fromABIType(parsed)
}

func marshalComponents(components []abiParamJSON) []abi.ArgumentMarshaling {
	if len(components) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(components))
	for i, c := range components {
		out[i] = abi.ArgumentMarshaling{
			Name:       c.Name,
			Type:       c.Type,
			Components: marshalComponents(c.Components),
		}
	}
	return out
}

func fromABIType(t abi.Type) (ParamType, error) {
	switch t.T {
	case abi.BoolTy:
		return BoolType(), nil
	case abi.IntTy:
		return IntType(t.Size), nil
	case abi.UintTy:
		return UintType(t.Size), nil
	case abi.AddressTy:
		return AddressType(), nil
	case abi.FixedBytesTy:
		return FixedBytesType(t.Size), nil
	case abi.FunctionTy:
		// ABI `function` values are address + selector packed into 24
		// bytes.
		return FixedBytesType(24), nil
	case abi.HashTy:
		return FixedBytesType(32), nil
	case abi.BytesTy:
		return BytesType(), nil
	case abi.StringTy:
		return StringType(), nil
	case abi.SliceTy:
		elem, err := fromABIType(*t.Elem)
		if err != nil {
			return ParamType{}, err
		}
		return ArrayOf(elem), nil
	case abi.ArrayTy:
		elem, err := fromABIType(*t.Elem)
		if err != nil {
			return ParamType{}, err
		}
		return FixedArrayOf(elem, t.Size), nil
	case abi.TupleTy:
		components := make([]ParamType, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			c, err := fromABIType(*elem)
			if err != nil {
				return ParamType{}, err
			}
			components[i] = c
		}
		return TupleOf(components...), nil
	default:
		return ParamType{}, &MalformedDescriptorError{
			Field:  "abi",
			Reason: "unrepresentable parameter type " + strconv.Quote(t.String()),
		}
	}
}
