package bindgen

import (
	"fmt"
	"strings"
)

// defaultDoc is the doc comment used for generated declarations with
// no artifact documentation.
const defaultDoc = "Generated by bindgen."

// paramModel is one rendered parameter: a resolved identifier and its
// Go type expression.
type paramModel struct {
	Name string
	Type string
}

// methodModel is the view model for one generated contract method.
type methodModel struct {
	Doc  string
	Name string

	Params []paramModel

	// Builder is the runtime call builder the method returns:
	// "ViewMethod" for read-only functions, "Method" for mutating
	// ones. BuilderFunc is the matching constructor.
	Builder     string
	BuilderFunc string

	// Output is the type argument encoding the function's return
	// shape: struct{} for no outputs, the mapped type for one output,
	// a runtime tuple of mapped types otherwise.
	Output string

	Signature string
	ArgNames  []string
}

type methodsModel struct {
	ContractType string
	Methods      []methodModel
}

// buildMethods constructs the view models for every contract function
// in descriptor order.
func buildMethods(cx *Context, imp *imports) (*methodsModel, error) {
	model := &methodsModel{ContractType: cx.typeName}
	for i := range cx.descriptor.Functions {
		fn := &cx.descriptor.Functions[i]
		m, err := buildMethod(cx, fn, imp)
		if err != nil {
			return nil, err
		}
		model.Methods = append(model.Methods, m)
	}
	return model, nil
}

func buildMethod(cx *Context, fn *Function, imp *imports) (methodModel, error) {
	sig := fn.Signature()

	params, err := buildParams(fn.Inputs, imp)
	if err != nil {
		return methodModel{}, err
	}
	argNames := make([]string, len(params))
	for i, p := range params {
		argNames[i] = p.Name
	}

	output, err := outputShape(fn.Outputs, imp)
	if err != nil {
		return methodModel{}, err
	}

	m := methodModel{
		Doc:       cx.docFor(sig),
		Name:      cx.methodName(fn),
		Params:    params,
		Output:    output,
		Signature: sig,
		ArgNames:  argNames,
	}
	if fn.Const {
		m.Builder = "ViewMethod"
		m.BuilderFunc = "View"
	} else {
		m.Builder = "Method"
		m.BuilderFunc = "Tx"
	}
	return m, nil
}

// buildParams resolves names and maps types for an input list. Unnamed
// inputs get positional placeholders; a resolved name that repeats an
// earlier one in the same list falls back to the positional form too.
func buildParams(inputs []Param, imp *imports) ([]paramModel, error) {
	params := make([]paramModel, len(inputs))
	taken := make(map[string]bool, len(inputs))
	for i, in := range inputs {
		goType, err := mapType(in.Type)
		if err != nil {
			return nil, err
		}
		imp.markType(goType)
		name := resolveName(in.Name, i, ScopeParam)
		if taken[name] {
			name = resolveName("", i, ScopeParam)
		}
		taken[name] = true
		params[i] = paramModel{
			Name: name,
			Type: goType,
		}
	}
	return params, nil
}

// outputShape encodes a function's return arity as a single type
// expression: no outputs collapse to the unit struct, a single output
// is its mapped type, multiple outputs become an ordered runtime
// tuple.
func outputShape(outputs []Param, imp *imports) (string, error) {
	switch len(outputs) {
	case 0:
		return "struct{}", nil
	case 1:
		goType, err := mapType(outputs[0].Type)
		if err != nil {
			return "", err
		}
		imp.markType(goType)
		return goType, nil
	default:
		mapped := make([]string, len(outputs))
		for i, out := range outputs {
			goType, err := mapType(out.Type)
			if err != nil {
				return "", err
			}
			imp.markType(goType)
			mapped[i] = goType
		}
		return fmt.Sprintf("bind.Tuple%d[%s]", len(outputs), strings.Join(mapped, ", ")), nil
	}
}

// docFor returns the artifact documentation for a signature, falling
// back to a fixed marker line.
func (cx *Context) docFor(signature string) string {
	if doc, ok := cx.descriptor.Docs[signature]; ok {
		return doc
	}
	return defaultDoc
}
