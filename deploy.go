package bindgen

import (
	"fmt"
	"strings"
	"unicode"
)

// libModel is one unresolved library placeholder: the raw placeholder
// name from the bytecode and the Go field holding its address.
type libModel struct {
	Field   string
	RawName string
}

// networkModel is one rendered entry of the merged deployment map.
type networkModel struct {
	ID      uint32
	Address string
}

// deployModel is the view model for the deployment section. A nil
// model (empty bytecode) emits nothing: the contract is not
// deployable.
type deployModel struct {
	ContractType string

	Libraries []libModel

	// CtorParams are the constructor inputs; empty when the contract
	// has no explicit constructor, in which case the deployer is built
	// with no constructor arguments at all.
	CtorParams []paramModel
	ArgNames   []string

	// Networks is the merged deployment map in ascending network id
	// order. Empty means no Deployed lookup is emitted.
	Networks []networkModel
}

// buildDeployment constructs the deployment section view model.
// Library placeholders are enumerated from the bytecode in
// first-occurrence order; the merged network map already has manual
// entries overriding artifact ones.
func buildDeployment(cx *Context, imp *imports) (*deployModel, error) {
	if cx.descriptor.Bytecode.Empty() {
		return nil, nil
	}

	model := &deployModel{ContractType: cx.typeName}

	taken := make(map[string]bool)
	for i, name := range cx.descriptor.Bytecode.Placeholders() {
		model.Libraries = append(model.Libraries, libModel{
			Field:   libraryField(name, i, taken),
			RawName: name,
		})
	}

	if ctor := cx.descriptor.Constructor; ctor != nil {
		params, err := buildParams(ctor.Inputs, imp)
		if err != nil {
			return nil, err
		}
		model.CtorParams = params
		for _, p := range params {
			model.ArgNames = append(model.ArgNames, p.Name)
		}
	}

	for _, dep := range cx.sortedNetworks() {
		model.Networks = append(model.Networks, networkModel{
			ID:      dep.network,
			Address: dep.address.Hex(),
		})
	}
	if len(model.Networks) > 0 {
		imp.Context = true
	}

	return model, nil
}

// libraryField derives the Go field name for a bytecode library
// placeholder. Fully qualified placeholders carry a source path
// ("contracts/Math.sol:MathLib") or a hex digest (solc >= 0.5), so the
// name is reduced to its last path segment before case conversion.
// Names that do not survive as valid exported identifiers, and names
// already used by an earlier placeholder, fall back to the positional
// Lib{i}.
func libraryField(raw string, index int, taken map[string]bool) string {
	name := raw
	if i := strings.LastIndexAny(name, ":/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, name)

	field := ""
	if name != "" {
		field = resolveName(name, index, ScopeField)
	}
	if field == "" || !unicode.IsLetter([]rune(field)[0]) || taken[field] {
		field = fmt.Sprintf("Lib%d", index)
	}
	taken[field] = true
	return field
}
