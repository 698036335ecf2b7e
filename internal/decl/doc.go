// Package decl holds the result of parsing one C++ declarator.
//
// Values are built once by the parser and handed to the caller; nothing in
// the package mutates them afterwards. ToMap/FromMap give the nested
// primitive form used by golden fixtures.
package decl
