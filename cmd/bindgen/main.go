// Command bindgen generates Go bindings for an Ethereum contract from
// a truffle artifact JSON file.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-bindgen"
)

type flags struct {
	pkgName     string
	typeName    string
	out         string
	runtime     string
	aliases     []string
	deployments []string
	verbose     bool
}

func main() {
	var f flags

	cmd := &cobra.Command{
		Use:   "bindgen <artifact.json>",
		Short: "Generate Go bindings for an Ethereum contract",
		Long: `Generate type-safe Go bindings from a truffle contract artifact.

The artifact's ABI, bytecode, recorded deployments and documentation
are compiled into a single Go source file: a binding type with one
method per contract function, event records with a decode dispatcher,
and deployment helpers.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&f, args[0])
		},
	}

	cmd.Flags().StringVar(&f.pkgName, "pkg", "", "package name of the generated source (default: lowercased contract name)")
	cmd.Flags().StringVar(&f.typeName, "type", "", "generated contract type name (default: derived from the artifact)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&f.runtime, "runtime", "", "import path of the runtime package referenced by generated code")
	cmd.Flags().StringArrayVar(&f.aliases, "alias", nil, "method alias, as signature=Identifier (repeatable)")
	cmd.Flags().StringArrayVar(&f.deployments, "deployment", nil, "known deployment, as networkID=0xaddress (repeatable)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	if err := cmd.Execute(); err != nil {
		logger := log(&f)
		logger.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}
}

func log(f *flags) zerolog.Logger {
	level := zerolog.WarnLevel
	if f.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func run(f *flags, path string) error {
	logger := log(f)

	opts, err := buildOptions(f)
	if err != nil {
		return err
	}

	artifact, err := bindgen.LoadArtifact(path)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("contract", artifact.Descriptor.Name).
		Int("functions", len(artifact.Descriptor.Functions)).
		Int("events", len(artifact.Descriptor.Events)).
		Msg("loaded artifact")

	source, err := bindgen.Generate(artifact, opts...)
	if err != nil {
		return err
	}

	if f.out == "" {
		_, err = os.Stdout.Write(source)
		return err
	}
	if err := os.WriteFile(f.out, source, 0o644); err != nil {
		return errors.Wrap(err, "writing bindings")
	}
	logger.Debug().Str("path", f.out).Int("bytes", len(source)).Msg("wrote bindings")
	return nil
}

func buildOptions(f *flags) ([]bindgen.Option, error) {
	var opts []bindgen.Option
	if f.pkgName != "" {
		opts = append(opts, bindgen.WithPackageName(f.pkgName))
	}
	if f.typeName != "" {
		opts = append(opts, bindgen.WithContractName(f.typeName))
	}
	if f.runtime != "" {
		opts = append(opts, bindgen.WithRuntimeModule(f.runtime))
	}
	for _, alias := range f.aliases {
		signature, identifier, ok := strings.Cut(alias, "=")
		if !ok {
			return nil, errors.Errorf("malformed --alias %q, want signature=Identifier", alias)
		}
		opts = append(opts, bindgen.WithAlias(signature, identifier))
	}
	for _, dep := range f.deployments {
		rawID, rawAddr, ok := strings.Cut(dep, "=")
		if !ok {
			return nil, errors.Errorf("malformed --deployment %q, want networkID=0xaddress", dep)
		}
		id, err := strconv.ParseUint(rawID, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed --deployment network id %q", rawID)
		}
		if !common.IsHexAddress(rawAddr) {
			return nil, errors.Errorf("malformed --deployment address %q", rawAddr)
		}
		opts = append(opts, bindgen.WithDeployment(uint32(id), common.HexToAddress(rawAddr)))
	}
	return opts, nil
}
