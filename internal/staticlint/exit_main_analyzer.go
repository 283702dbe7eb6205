package staticlint

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

const usingExitInMainWarn = "using os.Exit in main, end the process with logger.Fatal"

// ExitMainAnalyzer сообщает о прямом вызове os.Exit в функции main пакета main.
var ExitMainAnalyzer = &analysis.Analyzer{
	Name: "exitmain",
	Doc:  "check using os.Exit in main",
	Run:  runExitMain,
}

func runExitMain(pass *analysis.Pass) (interface{}, error) {
	const (
		mainPackageName = "main"
		mainFuncName    = "main"
	)

	if pass.Pkg.Name() != mainPackageName {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != mainFuncName || fn.Body == nil {
				continue
			}

			ast.Inspect(fn.Body, func(node ast.Node) bool {
				if _, ok := node.(*ast.FuncLit); ok {
					return false
				}
				call, ok := node.(*ast.CallExpr)
				if ok && isOSExit(pass.TypesInfo, call) {
					pass.Reportf(call.Pos(), usingExitInMainWarn)
				}
				return true
			})
		}
	}
	return nil, nil
}

func isOSExit(info *types.Info, call *ast.CallExpr) bool {
	var id *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		id = fun.Sel
	case *ast.Ident:
		id = fun
	default:
		return false
	}

	fn, ok := info.Uses[id].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
