// Package bindgen generates type-safe Go bindings for Ethereum smart
// contracts from truffle artifact JSON.
//
// The generator reads a contract artifact (ABI, bytecode, recorded
// deployments and documentation), normalizes it into a descriptor, and
// renders a single Go source file containing:
//   - A contract binding type with one method per ABI function,
//     returning typed call builders
//   - One record type per event, a sealed union interface over them,
//     and a decode dispatcher for raw logs
//   - Event filter builders for every non-anonymous event
//   - Deployment helpers, including bytecode library linking and
//     lookup of deployments recorded in the artifact
//
// # Basic Usage
//
// Load an artifact and generate bindings:
//
//	artifact, err := bindgen.LoadArtifact("build/contracts/ERC20.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	source, err := bindgen.Generate(artifact,
//	    bindgen.WithPackageName("erc20"),
//	    bindgen.WithAlias("transfer(address,uint256)", "TransferTokens"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("erc20/bindings.go", source, 0o644)
//
// The `bindgen` command wraps the same pipeline for build scripts and
// go:generate directives.
//
// # Determinism
//
// Generation is a pure function of the artifact and options: the same
// inputs always produce byte-identical output. Events are ordered by
// name, deployment networks by ascending network id, and bytecode
// library placeholders by first occurrence.
//
// # Naming
//
// ABI names are converted to Go conventions: CamelCase for methods and
// struct fields, lowerCamelCase for parameters. Unnamed parameters get
// positional placeholders; identifiers that collide with Go keywords
// get a trailing underscore. Derived method names that collide are
// reported as an error rather than silently shadowed; use WithAlias to
// disambiguate.
package bindgen
