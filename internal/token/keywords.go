package token

// Qualifier is a trailing cv-qualifier on a member function declarator.
type Qualifier uint8

const (
	QualConst Qualifier = iota + 1
	QualVolatile
)

var qualifiers = map[string]Qualifier{
	"const":    QualConst,
	"volatile": QualVolatile,
}

// LookupQualifier возвращает квалификатор и bool если это const/volatile.
// Регистрозависимо, как и в C++.
func LookupQualifier(ident string) (Qualifier, bool) {
	q, ok := qualifiers[ident]
	return q, ok
}

// OperatorKeyword is the identifier that introduces an operator overload.
const OperatorKeyword = "operator"

// operatorSymbols is the catalog of overloadable operator spellings.
// Sorted longest-first so that a prefix never wins over a longer symbol.
var operatorSymbols = []string{
	"<<=", ">>=",
	"++", "--", "<=", ">=", "==", "!=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"<<", ">>", "&&", "||", "->", "[]", "()",
	"+", "-", "*", "/", "%", "<", ">", "&", "^", "~", "|", "!", "=", ",",
}

// OperatorSymbols returns the operator catalog in match order.
func OperatorSymbols() []string {
	out := make([]string, len(operatorSymbols))
	copy(out, operatorSymbols)
	return out
}
