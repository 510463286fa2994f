package calc

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

const (
	// significantDigits matches the precision inexact results are printed with
	significantDigits = 15
	// fixed notation is used for decimal exponents in (minFixedExp, significantDigits)
	minFixedExp = -5
	// maxExponent bounds the exponent of an exact power
	maxExponent = 4096
	// maxPowerBits bounds the numerator and denominator size of an exact power
	maxPowerBits = 1 << 16
	// literalPrefix names the placeholders for integer literals too large for the parser
	literalPrefix = "__int"
)

var (
	ErrEmptyExpression  = errors.New("empty expression")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrExponentTooLarge = errors.New("exponent too large")
	ErrNotReal          = errors.New("result is not a real number")
	ErrOverflow         = errors.New("result overflows")
)

// ExpressionError reports an expression that could not be evaluated.
// Its message is shown to the user as "Error: <message>".
type ExpressionError struct {
	Expression string
	Err        error
}

func (e *ExpressionError) Error() string {
	return e.Err.Error()
}

func (e *ExpressionError) Unwrap() error {
	return e.Err
}

// value is either an exact rational or an inexact float
type value struct {
	exact *big.Rat
	float float64
}

func exactValue(r *big.Rat) value {
	return value{exact: r}
}

func floatValue(f float64) value {
	return value{float: f}
}

func (v value) isExact() bool {
	return v.exact != nil
}

func (v value) toFloat() float64 {
	if v.exact != nil {
		f, _ := v.exact.Float64()
		return f
	}
	return v.float
}

func (v value) String() string {
	if v.exact != nil {
		return v.exact.RatString()
	}
	return formatFloat(v.float)
}

// Evaluate parses and evaluates an arithmetic expression and returns the
// canonical string form of the result: "4", "-7/2" or "3.50000000000000".
func Evaluate(expression string) (string, error) {
	if strings.TrimSpace(expression) == "" {
		return "", &ExpressionError{Expression: expression, Err: ErrEmptyExpression}
	}

	source, literals := extractBigLiterals(expression)

	tree, err := parser.Parse(source)
	if err != nil {
		return "", &ExpressionError{Expression: expression, Err: errors.New(firstLine(err.Error()))}
	}

	ev := evaluator{literals: literals}
	result, err := ev.eval(tree.Node)
	if err != nil {
		return "", &ExpressionError{Expression: expression, Err: err}
	}

	return result.String(), nil
}

// extractBigLiterals swaps integer literals that overflow int64 for
// placeholder identifiers, since the parser only reads machine-sized integers.
// Digit runs that belong to floats, hex literals or identifiers are left alone.
func extractBigLiterals(expression string) (string, map[string]*big.Int) {
	var (
		b        strings.Builder
		literals map[string]*big.Int
	)

	for i := 0; i < len(expression); {
		if !isDigit(expression[i]) || (i > 0 && isWordByte(expression[i-1])) {
			b.WriteByte(expression[i])
			i++
			continue
		}

		j := i
		for j < len(expression) && isDigit(expression[j]) {
			j++
		}
		digits := expression[i:j]

		if j < len(expression) && isWordByte(expression[j]) {
			b.WriteString(digits)
			i = j
			continue
		}

		n, ok := new(big.Int).SetString(digits, 10)
		if !ok || n.IsInt64() {
			b.WriteString(digits)
			i = j
			continue
		}

		if literals == nil {
			literals = make(map[string]*big.Int)
		}
		name := literalPrefix + strconv.Itoa(len(literals))
		literals[name] = n
		b.WriteString(name)
		i = j
	}

	return b.String(), literals
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWordByte reports bytes that glue a digit run to a neighbouring token
func isWordByte(c byte) bool {
	return isDigit(c) || c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type evaluator struct {
	literals map[string]*big.Int
}

func (ev evaluator) eval(node ast.Node) (value, error) {
	switch n := node.(type) {
	case *ast.IntegerNode:
		return exactValue(new(big.Rat).SetInt64(int64(n.Value))), nil
	case *ast.FloatNode:
		return floatValue(n.Value), nil
	case *ast.UnaryNode:
		operand, err := ev.eval(n.Node)
		if err != nil {
			return value{}, err
		}
		switch n.Operator {
		case "+":
			return operand, nil
		case "-":
			if operand.isExact() {
				return exactValue(new(big.Rat).Neg(operand.exact)), nil
			}
			return floatValue(-operand.float), nil
		}
		return value{}, fmt.Errorf("unsupported operator %q", n.Operator)
	case *ast.BinaryNode:
		left, err := ev.eval(n.Left)
		if err != nil {
			return value{}, err
		}
		right, err := ev.eval(n.Right)
		if err != nil {
			return value{}, err
		}
		return apply(n.Operator, left, right)
	case *ast.IdentifierNode:
		if lit, ok := ev.literals[n.Value]; ok {
			return exactValue(new(big.Rat).SetInt(lit)), nil
		}
		return value{}, fmt.Errorf("unknown symbol %q", n.Value)
	}
	return value{}, fmt.Errorf("unsupported expression %q", node.String())
}

func apply(op string, a, b value) (value, error) {
	if a.isExact() && b.isExact() {
		return applyExact(op, a.exact, b.exact)
	}
	return applyFloat(op, a.toFloat(), b.toFloat())
}

func applyExact(op string, a, b *big.Rat) (value, error) {
	switch op {
	case "+":
		return exactValue(new(big.Rat).Add(a, b)), nil
	case "-":
		return exactValue(new(big.Rat).Sub(a, b)), nil
	case "*":
		return exactValue(new(big.Rat).Mul(a, b)), nil
	case "/":
		if b.Sign() == 0 {
			return value{}, ErrDivisionByZero
		}
		return exactValue(new(big.Rat).Quo(a, b)), nil
	case "%":
		if b.Sign() == 0 {
			return value{}, ErrDivisionByZero
		}
		// a - b*floor(a/b), the result takes the sign of b
		q := new(big.Rat).Quo(a, b)
		floor := new(big.Int).Div(q.Num(), q.Denom())
		prod := new(big.Rat).Mul(b, new(big.Rat).SetInt(floor))
		return exactValue(new(big.Rat).Sub(a, prod)), nil
	case "**", "^":
		return powExact(a, b)
	}
	return value{}, fmt.Errorf("unsupported operator %q", op)
}

func powExact(base, exp *big.Rat) (value, error) {
	if !exp.IsInt() {
		return applyFloat("**", toFloat(base), toFloat(exp))
	}
	if !exp.Num().IsInt64() || abs(exp.Num().Int64()) > maxExponent {
		return value{}, ErrExponentTooLarge
	}
	n := exp.Num().Int64()
	if n < 0 && base.Sign() == 0 {
		return value{}, ErrDivisionByZero
	}
	if bits := max(base.Num().BitLen(), base.Denom().BitLen()); int64(bits)*abs(n) > maxPowerBits {
		return value{}, ErrExponentTooLarge
	}

	e := big.NewInt(abs(n))
	num := new(big.Int).Exp(base.Num(), e, nil)
	den := new(big.Int).Exp(base.Denom(), e, nil)
	if n < 0 {
		num, den = den, num
	}
	return exactValue(new(big.Rat).SetFrac(num, den)), nil
}

func applyFloat(op string, a, b float64) (value, error) {
	var r float64
	switch op {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*":
		r = a * b
	case "/":
		if b == 0 {
			return value{}, ErrDivisionByZero
		}
		r = a / b
	case "%":
		if b == 0 {
			return value{}, ErrDivisionByZero
		}
		r = a - b*math.Floor(a/b)
	case "**", "^":
		r = math.Pow(a, b)
	default:
		return value{}, fmt.Errorf("unsupported operator %q", op)
	}

	if math.IsNaN(r) {
		return value{}, ErrNotReal
	}
	if math.IsInf(r, 0) {
		return value{}, ErrOverflow
	}
	return floatValue(r), nil
}

// formatFloat prints f with a fixed number of significant digits. Fixed
// notation is used when the rounded decimal exponent lies in
// (minFixedExp, significantDigits), exponent notation otherwise:
// "3.50000000000000", "123456789012345." or "1.00000000000000e-17".
func formatFloat(f float64) string {
	if f == 0 {
		return "0.0"
	}

	// 'e' formatting rounds first, so the exponent reflects a carry such as 9.99..e14 -> 1.00..e15
	sci := strconv.FormatFloat(f, 'e', significantDigits-1, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expText)

	if minFixedExp < exp && exp < significantDigits {
		fixed := strconv.FormatFloat(f, 'f', significantDigits-1-exp, 64)
		if !strings.Contains(fixed, ".") {
			fixed += "."
		}
		return fixed
	}

	if exp >= 0 {
		return mantissa + "e+" + strconv.Itoa(exp)
	}
	return mantissa + "e" + strconv.Itoa(exp)
}

func toFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
