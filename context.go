package bindgen

import (
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iancoleman/strcase"
)

// DefaultRuntimeModule is the import path of the runtime library that
// generated bindings depend on, unless overridden with
// WithRuntimeModule.
const DefaultRuntimeModule = "github.com/branched-services/go-bindgen/bind"

// Option configures a generation pass.
type Option func(*config)

type config struct {
	pkgName     string
	typeName    string
	runtime     string
	aliases     map[string]string
	deployments []deployment
}

type deployment struct {
	network uint32
	address common.Address
}

// WithPackageName overrides the package name of the generated source
// unit. The default is the lowercased contract type name.
func WithPackageName(name string) Option {
	return func(c *config) {
		c.pkgName = name
	}
}

// WithContractName overrides the generated contract type name. The
// default is derived from the artifact's contract name; sources that
// carry no name (such as block explorer downloads) require this.
func WithContractName(name string) Option {
	return func(c *config) {
		c.typeName = name
	}
}

// WithRuntimeModule overrides the import path of the runtime library
// referenced by generated code. Useful when the runtime module is
// vendored or forked under another path.
func WithRuntimeModule(path string) Option {
	return func(c *config) {
		c.runtime = path
	}
}

// WithAlias forces the method generated for the function with the
// given canonical signature to use the given identifier instead of the
// derived name.
func WithAlias(signature, identifier string) Option {
	return func(c *config) {
		if c.aliases == nil {
			c.aliases = make(map[string]string)
		}
		c.aliases[signature] = identifier
	}
}

// WithDeployment records a manually known deployment address for a
// network id. Manual entries take precedence over addresses embedded
// in the artifact for the same network.
func WithDeployment(network uint32, address common.Address) Option {
	return func(c *config) {
		c.deployments = append(c.deployments, deployment{network: network, address: address})
	}
}

// Context aggregates the descriptor with the resolved generation
// configuration. It is immutable once built; generation is a pure
// function of the Context.
type Context struct {
	descriptor *Descriptor

	pkgName  string
	typeName string
	runtime  string

	// aliases maps canonical function signatures to forced method
	// identifiers. Validated against the descriptor at build time.
	aliases map[string]string

	// networks is the merged deployment map: artifact entries
	// overridden by manual ones.
	networks map[uint32]common.Address
}

// newContext builds and validates a generation context. All
// configuration errors (unknown alias signatures, duplicate manual
// networks, colliding method identifiers) are reported here, before
// any code is emitted.
func newContext(d *Descriptor, opts ...Option) (*Context, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	typeName := cfg.typeName
	if typeName == "" {
		typeName = strcase.ToCamel(d.Name)
	}
	if typeName == "" {
		typeName = "Contract"
	}
	pkgName := cfg.pkgName
	if pkgName == "" {
		pkgName = strings.ToLower(typeName)
	}
	runtime := cfg.runtime
	if runtime == "" {
		runtime = DefaultRuntimeModule
	}

	known := make(map[string]bool, len(d.Functions))
	for i := range d.Functions {
		known[d.Functions[i].Signature()] = true
	}
	aliased := make([]string, 0, len(cfg.aliases))
	for sig := range cfg.aliases {
		aliased = append(aliased, sig)
	}
	sort.Strings(aliased)
	for _, sig := range aliased {
		if !known[sig] {
			return nil, &UnknownAliasError{Signature: sig, Alias: cfg.aliases[sig]}
		}
	}

	networks := make(map[uint32]common.Address, len(d.Networks)+len(cfg.deployments))
	for id, addr := range d.Networks {
		networks[id] = addr
	}
	manual := make(map[uint32]bool, len(cfg.deployments))
	for _, dep := range cfg.deployments {
		if manual[dep.network] {
			return nil, &DuplicateNetworkError{NetworkID: dep.network}
		}
		manual[dep.network] = true
		networks[dep.network] = dep.address
	}

	cx := &Context{
		descriptor: d,
		pkgName:    pkgName,
		typeName:   typeName,
		runtime:    runtime,
		aliases:    cfg.aliases,
		networks:   networks,
	}
	if err := cx.checkMethodCollisions(); err != nil {
		return nil, err
	}
	return cx, nil
}

// methodName returns the generated identifier for a function: its
// manual alias when one is configured, otherwise the resolver's
// conversion of the raw name.
func (cx *Context) methodName(fn *Function) string {
	if alias, ok := cx.aliases[fn.Signature()]; ok {
		return alias
	}
	return resolveName(fn.RawName, 0, ScopeMethod)
}

// checkMethodCollisions rejects descriptors in which two different
// function signatures resolve to the same method identifier. The
// underlying ABI allows overloads; Go methods cannot be overloaded, so
// the collision must be resolved by an alias rather than silently
// shadowing one of the bindings.
func (cx *Context) checkMethodCollisions() error {
	byName := make(map[string][]string)
	for i := range cx.descriptor.Functions {
		fn := &cx.descriptor.Functions[i]
		name := cx.methodName(fn)
		byName[name] = append(byName[name], fn.Signature())
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if sigs := byName[name]; len(sigs) > 1 {
			return &DuplicateIdentifierError{Identifier: name, Signatures: sigs}
		}
	}
	return nil
}

// sortedNetworks returns the merged deployment entries ordered by
// ascending network id, for deterministic rendering.
func (cx *Context) sortedNetworks() []deployment {
	ids := make([]uint32, 0, len(cx.networks))
	for id := range cx.networks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]deployment, len(ids))
	for i, id := range ids {
		out[i] = deployment{network: id, address: cx.networks[id]}
	}
	return out
}
