package platform

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Description is the inferred source text of an actual value.
type Description struct {
	// Expr is the source of the expression passed as the actual value.
	Expr string
	// HasCall reports whether Expr contains a function or method call,
	// which makes it worth showing as a "value of" fact.
	HasCall bool
}

type parsedFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

var sources sync.Map // filename -> *parsedFile

// InferDescription inspects the source line of the first frame and returns
// the expression passed to the assertion entry point on that line.
//
// The zero Description is returned when inference is disabled, the source
// is unavailable, or no entry-point call spans the line.
func InferDescription(frames []runtime.Frame) Description {
	if InferDescriptionDisabled() || len(frames) == 0 {
		return Description{}
	}
	top := frames[0]
	if top.File == "" || top.Line == 0 {
		return Description{}
	}
	pf := parse(top.File)
	if pf.err != nil {
		Logger().Debug("cannot infer description",
			zap.String("file", top.File), zap.Int("line", top.Line), zap.Error(pf.err))
		return Description{}
	}

	var best *ast.CallExpr
	bestLine := -1
	ast.Inspect(pf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		start := pf.fset.Position(call.Pos()).Line
		end := pf.fset.Position(call.End()).Line
		if start > top.Line || end < top.Line {
			return false
		}
		// When a chain is split across lines, only the outermost call
		// spans the failing line; the entry point sits further up.
		if entry := entryInChain(call); entry != nil {
			if line := pf.fset.Position(entry.Pos()).Line; line > bestLine {
				best, bestLine = entry, line
			}
		}
		return true
	})
	if best == nil {
		Logger().Debug("no assertion entry point on line",
			zap.String("file", top.File), zap.Int("line", top.Line))
		return Description{}
	}

	arg := best.Args[len(best.Args)-1]
	if isLiteral(arg) {
		return Description{}
	}
	from := pf.fset.Position(arg.Pos()).Offset
	to := pf.fset.Position(arg.End()).Offset
	if from < 0 || to > len(pf.src) || from >= to {
		return Description{}
	}
	d := Description{Expr: string(pf.src[from:to])}
	ast.Inspect(arg, func(n ast.Node) bool {
		if _, ok := n.(*ast.CallExpr); ok {
			d.HasCall = true
			return false
		}
		return !d.HasCall
	})
	return d
}

func parse(filename string) *parsedFile {
	if v, ok := sources.Load(filename); ok {
		return v.(*parsedFile)
	}
	pf := &parsedFile{fset: token.NewFileSet()}
	pf.src, pf.err = os.ReadFile(filename)
	if pf.err == nil {
		pf.file, pf.err = parser.ParseFile(pf.fset, filename, pf.src, parser.SkipObjectResolution)
	}
	v, _ := sources.LoadOrStore(filename, pf)
	return v.(*parsedFile)
}

// entryInChain walks the receivers of a method-call chain and returns the
// innermost call to an assertion entry point, if any.
func entryInChain(call *ast.CallExpr) *ast.CallExpr {
	var found *ast.CallExpr
	for call != nil {
		if isEntryPoint(call.Fun) && len(call.Args) > 0 {
			found = call
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			break
		}
		call, _ = sel.X.(*ast.CallExpr)
	}
	return found
}

// isEntryPoint reports whether fun names a function that receives the
// actual value: That, ThatString, AssertThat, About and the like.
func isEntryPoint(fun ast.Expr) bool {
	switch f := fun.(type) {
	case *ast.IndexExpr:
		return isEntryPoint(f.X)
	case *ast.IndexListExpr:
		return isEntryPoint(f.X)
	case *ast.SelectorExpr:
		return isEntryName(f.Sel.Name)
	case *ast.Ident:
		return isEntryName(f.Name)
	}
	return false
}

func isEntryName(name string) bool {
	if name == "About" {
		return true
	}
	for _, prefix := range [...]string{"That", "AssertThat", "ExpectThat"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// isLiteral reports whether e is a constant or composite literal, whose
// source says no more than its rendered value.
func isLiteral(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.BasicLit, *ast.CompositeLit:
		return true
	case *ast.UnaryExpr:
		return isLiteral(x.X)
	case *ast.ParenExpr:
		return isLiteral(x.X)
	}
	return false
}
