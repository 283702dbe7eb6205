// Staticlint запускает набор статических анализаторов проекта.
//
// В набор входят:
//   - стандартные анализаторы golang.org/x/tools: printf, shadow, shift, structtag,
//     unreachable, unusedresult;
//   - все анализаторы SA (staticcheck), S (simple) и ST (stylecheck)
//     из honnef.co/go/tools;
//   - gocritic из github.com/go-critic/go-critic;
//   - bodyclose из github.com/timakin/bodyclose;
//   - exitmain, который запрещает прямой вызов os.Exit в функции main;
//   - sentinelcmp, который сообщает о сравнении строк с текстами результатов
//     "Invalid URL", "Invalid short URL" и "URL not found".
//
// Запуск:
//
//	staticlint ./...
package main

import (
	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/nestjam/url-shortener/internal/staticlint"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		shift.Analyzer,
		structtag.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
		analyzer.Analyzer,
		bodyclose.Analyzer,
		staticlint.ExitMainAnalyzer,
		staticlint.SentinelCompareAnalyzer,
	}

	for _, v := range staticcheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	for _, v := range simple.Analyzers {
		checks = append(checks, v.Analyzer)
	}
	for _, v := range stylecheck.Analyzers {
		checks = append(checks, v.Analyzer)
	}

	return checks
}
