package staticlint

import (
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"
)

const comparingWithSentinelWarn = "comparing with sentinel text %q, check Result.Status instead"

// sentinelTexts содержит тексты, которые сервис возвращает вместо URL.
var sentinelTexts = map[string]struct{}{
	"Invalid URL":       {},
	"Invalid short URL": {},
	"URL not found":     {},
}

// SentinelCompareAnalyzer сообщает о сравнении строк с текстами ошибок ввода.
var SentinelCompareAnalyzer = &analysis.Analyzer{
	Name: "sentinelcmp",
	Doc:  "check comparing strings with sentinel result texts",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			expr, ok := node.(*ast.BinaryExpr)
			if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
				return true
			}

			for _, operand := range []ast.Expr{expr.X, expr.Y} {
				if text, ok := sentinelLiteral(operand); ok {
					pass.Reportf(expr.Pos(), comparingWithSentinelWarn, text)
					break
				}
			}
			return true
		})
	}
	var res interface{} = nil
	return res, nil
}

func sentinelLiteral(expr ast.Expr) (string, bool) {
	lit, ok := expr.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}

	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}

	_, ok = sentinelTexts[text]
	return text, ok
}
