package decl

import "fmt"

// CallForm tells apart "no parenthesis group" from "()" and "(args...)".
type CallForm uint8

const (
	// NoCall: the declarator has no trailing parenthesis group.
	NoCall CallForm = iota
	// EmptyCall: the declarator ends in "()".
	EmptyCall
	// ArgsCall: the declarator has at least one argument.
	ArgsCall
)

var callNames = [...]string{
	NoCall:    "none",
	EmptyCall: "empty",
	ArgsCall:  "args",
}

func (c CallForm) String() string {
	if int(c) < len(callNames) {
		return callNames[c]
	}
	return fmt.Sprintf("CallForm(%d)", c)
}

// LookupCallForm maps the serialised name back to a CallForm.
func LookupCallForm(name string) (CallForm, bool) {
	for i, n := range callNames {
		if n == name {
			return CallForm(i), true
		}
	}
	return NoCall, false
}
