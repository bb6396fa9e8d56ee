package source

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"strings"
	"sync"
)

// Parser recovers the source text of check arguments from their call sites.
// Parsed files are cached; a file that fails to parse is not retried.
type Parser struct {
	mu    sync.Mutex
	files map[string]*parsedFile
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	err  error
}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{files: make(map[string]*parsedFile)}
}

// FindArgument returns the source text of the first argument of the first
// call to a method or function named method on the given line of file.
// The text is always a single line.
func (p *Parser) FindArgument(file string, line int, method string) (string, error) {
	pf := p.parse(file)
	if pf.err != nil {
		return "", pf.err
	}

	var found ast.Expr
	ast.Inspect(pf.file, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 || calleeName(call) != method {
			return true
		}
		if pf.fset.Position(call.Lparen).Line != line {
			return true
		}
		found = call.Args[0]
		return false
	})

	if found == nil {
		return "", fmt.Errorf("no call to %s at %s:%d", method, file, line)
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, pf.fset, found); err != nil {
		return "", fmt.Errorf("print argument at %s:%d: %w", file, line, err)
	}
	return singleLine(buf.String()), nil
}

// singleLine joins an argument written over several lines into one,
// dropping the indentation of continuation lines
func singleLine(s string) string {
	if !strings.Contains(s, "\n") {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, " ")
}

func (p *Parser) parse(file string) *parsedFile {
	p.mu.Lock()
	defer p.mu.Unlock()

	if pf, ok := p.files[file]; ok {
		return pf
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, nil, parser.SkipObjectResolution)
	pf := &parsedFile{fset: fset, file: f}
	if err != nil {
		pf.err = fmt.Errorf("error parsing file %s: %w", file, err)
	}
	p.files[file] = pf
	return pf
}

// calleeName returns the called function or method name, or "" for other calls
func calleeName(call *ast.CallExpr) string {
	switch fn := call.Fun.(type) {
	case *ast.SelectorExpr:
		return fn.Sel.Name
	case *ast.Ident:
		return fn.Name
	}
	return ""
}
