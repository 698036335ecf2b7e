package token

// Kind represents the category of a declarator token.
type Kind uint8

const (
	// Invalid is the zero value; the lexer never emits it.
	Invalid Kind = iota
	// Whitespace is a run of spaces, tabs or newlines.
	Whitespace
	// Scope is the '::' qualifier.
	Scope // ::
	// TemplateStart opens a template argument list.
	TemplateStart // <
	// TemplateEnd closes a template argument list.
	TemplateEnd // >
	// ParenStart opens a call argument list.
	ParenStart // (
	// ParenEnd closes a call argument list.
	ParenEnd // )
	// Pointer is the '*' declarator.
	Pointer // *
	// Reference is the '&' declarator.
	Reference // &
	// Separator splits call arguments.
	Separator // ,
	// Member is an identifier.
	Member
	// Operator is an operator-overload name such as operator[].
	Operator
)

var kindNames = [...]string{
	Invalid:       "INVALID",
	Whitespace:    "WHITESPACE",
	Scope:         "SCOPE",
	TemplateStart: "TEMPLATE_START",
	TemplateEnd:   "TEMPLATE_END",
	ParenStart:    "PARENTHESIS_START",
	ParenEnd:      "PARENTHESIS_END",
	Pointer:       "POINTER",
	Reference:     "REFERENCE",
	Separator:     "SEPARATOR",
	Member:        "MEMBER",
	Operator:      "OPERATOR",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// LookupKind returns the kind with the given upper-case name.
func LookupKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if k == int(Invalid) {
			continue
		}
		if n == name {
			return Kind(k), true
		}
	}
	return Invalid, false
}

// Kinds lists every kind the lexer can emit, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := Whitespace; k <= Operator; k++ {
		out = append(out, k)
	}
	return out
}
