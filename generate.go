package bindgen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/pkg/errors"
)

//go:embed templates/*.gotmpl
var templateFS embed.FS

var templates = template.Must(template.New("bindgen").
	Funcs(template.FuncMap{
		"comment":  commentLines,
		"unexport": unexportIdent,
	}).
	ParseFS(templateFS, "templates/*.gotmpl"))

// imports tracks which import lines the generated source unit needs.
// The view model builders mark what they use; the final import block
// is assembled from the marks.
type imports struct {
	Context bool
	Big     bool
	Time    bool

	// Runtime is the import path the `bind` runtime package is
	// imported from.
	Runtime string
}

// markType flags the imports a rendered Go type expression pulls in.
func (imp *imports) markType(goType string) {
	if strings.Contains(goType, "*big.Int") {
		imp.Big = true
	}
}

func (imp *imports) write(out *bytes.Buffer) {
	out.WriteString("import (\n")
	if imp.Context {
		out.WriteString("\t\"context\"\n")
	}
	if imp.Big {
		out.WriteString("\t\"math/big\"\n")
	}
	out.WriteString("\t\"sync\"\n")
	if imp.Time {
		out.WriteString("\t\"time\"\n")
	}
	out.WriteString("\n\t\"github.com/ethereum/go-ethereum/common\"\n")
	fmt.Fprintf(out, "\n\tbind %q\n", imp.Runtime)
	out.WriteString(")\n")
}

// contractModel is the view model for the binding type itself and the
// embedded artifact.
type contractModel struct {
	TypeName    string
	Doc         string
	ArtifactLit string
}

// Generate renders Go bindings for the contract artifact. The output
// is a single gofmt-formatted source file containing the binding type,
// one method per contract function, event records with a decode
// dispatcher, and deployment helpers when the artifact carries
// bytecode.
//
// Generation is deterministic: the same artifact and options always
// produce byte-identical output.
func Generate(artifact *Artifact, opts ...Option) ([]byte, error) {
	cx, err := newContext(&artifact.Descriptor, opts...)
	if err != nil {
		return nil, err
	}

	imp := &imports{Runtime: cx.runtime}

	methods, err := buildMethods(cx, imp)
	if err != nil {
		return nil, err
	}
	events, err := buildEvents(cx, imp)
	if err != nil {
		return nil, err
	}
	deploy, err := buildDeployment(cx, imp)
	if err != nil {
		return nil, err
	}

	contract := contractModel{
		TypeName:    cx.typeName,
		Doc:         cx.contractDoc(),
		ArtifactLit: strconv.Quote(string(artifact.Source)),
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "contract.gotmpl", contract); err != nil {
		return nil, errors.Wrap(err, "rendering contract section")
	}
	if err := templates.ExecuteTemplate(&body, "methods.gotmpl", methods); err != nil {
		return nil, errors.Wrap(err, "rendering methods section")
	}
	if events != nil {
		if err := templates.ExecuteTemplate(&body, "events.gotmpl", events); err != nil {
			return nil, errors.Wrap(err, "rendering events section")
		}
	}
	if deploy != nil {
		if err := templates.ExecuteTemplate(&body, "deploy.gotmpl", deploy); err != nil {
			return nil, errors.Wrap(err, "rendering deployment section")
		}
	}

	var out bytes.Buffer
	out.WriteString("// Code generated by bindgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&out, "package %s\n\n", cx.pkgName)
	imp.write(&out)
	out.WriteByte('\n')
	out.Write(body.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "formatting generated bindings")
	}
	return formatted, nil
}

// contractDoc returns the doc comment for the generated binding type.
func (cx *Context) contractDoc() string {
	if cx.descriptor.Doc != "" {
		return cx.descriptor.Doc
	}
	return fmt.Sprintf("%s is a generated binding to an on-chain contract.", cx.typeName)
}

// commentLines renders a doc string as a Go comment block. Embedded
// newlines become separate comment lines.
func commentLines(doc string) string {
	lines := strings.Split(strings.TrimRight(doc, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight("// "+line, " ")
	}
	return strings.Join(lines, "\n")
}

// unexportIdent lowercases the leading runes of an identifier, keeping
// initialisms intact: "ERC20" becomes "erc20", "Token" becomes
// "token".
func unexportIdent(name string) string {
	runes := []rune(name)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			break
		}
		// Stop before the last upper rune of a leading initialism so
		// the next word keeps its case: "ERCToken" -> "ercToken".
		if i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			break
		}
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
