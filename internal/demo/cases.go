package demo

import (
	"math"
	"sort"

	"github.com/katalvlaran/dualnum/dual"
)

type num = dual.Number[float64]

// Case pairs a dual-number function with its hand-derived derivative.
type Case struct {
	Expr string                  // human-readable f(x)
	F    dual.Func[float64]      // f over dual numbers
	DF   func(x float64) float64 // closed-form f'(x)
}

// cases is the registry selectable with -case / DUALNUM_CASE.
var cases = map[string]Case{
	"product": {
		Expr: "x*(x+1)",
		F:    func(x num) num { return x.Mul(x.AddScalar(1)) },
		DF:   func(x float64) float64 { return 2*x + 1 },
	},
	"mixed": {
		Expr: "log(2|x|) + exp(x) + sin(x^3)",
		F: func(x num) num {
			return dual.Log(dual.Abs(x).MulScalar(2)).
				Add(dual.Exp(x)).
				Add(dual.Sin(dual.Pow(x, 3)))
		},
		DF: func(x float64) float64 {
			return 1.0/x + math.Exp(x) + (math.Pow(x, 2)*3.0)*math.Cos(math.Pow(x, 3))
		},
	},
	"reciprocal": {
		Expr: "1/x",
		F:    func(x num) num { return dual.ScalarDiv(1, x) },
		DF:   func(x float64) float64 { return -1 / (x * x) },
	},
	"chain": {
		Expr: "sin(x^3)",
		F:    func(x num) num { return dual.Sin(dual.Pow(x, 3)) },
		DF:   func(x float64) float64 { return 3 * x * x * math.Cos(x*x*x) },
	},
}

// Lookup returns the named case.
func Lookup(name string) (Case, bool) {
	c, ok := cases[name]
	return c, ok
}

// CaseNames lists registered cases in sorted order.
func CaseNames() []string {
	names := make([]string, 0, len(cases))
	for n := range cases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
