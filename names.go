package bindgen

import (
	"fmt"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Scope selects the identifier convention a resolved name must follow.
type Scope uint8

const (
	// ScopeMethod names become exported PascalCase methods.
	ScopeMethod Scope = iota

	// ScopeField names become exported PascalCase struct fields.
	ScopeField

	// ScopeParam names become lowerCamel function parameters.
	ScopeParam
)

// goKeywords are identifiers that cannot be used verbatim in generated
// Go source. Resolved names that collide get a trailing underscore.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// resolveName converts a raw ABI name into a collision-free Go
// identifier for the given scope. Empty names fall back to the
// positional placeholder `p{index}`. The function is pure: identical
// inputs always yield the identical identifier.
func resolveName(raw string, index int, scope Scope) string {
	base := raw
	if base == "" {
		base = fmt.Sprintf("p%d", index)
	}

	var id string
	switch scope {
	case ScopeMethod, ScopeField:
		id = strcase.ToCamel(base)
	case ScopeParam:
		// ToLowerCamel keeps a leading capital when the raw name starts
		// with a separator ("_owner"); force the convention.
		id = strcase.ToLowerCamel(base)
		if r := []rune(id); len(r) > 0 && unicode.IsUpper(r[0]) {
			r[0] = unicode.ToLower(r[0])
			id = string(r)
		}
	default:
		panic(fmt.Sprintf("bindgen: unknown identifier scope %d", scope))
	}

	if goKeywords[id] {
		id += "_"
	}
	return id
}
