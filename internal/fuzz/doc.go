// Package fuzztests houses Go fuzz harnesses for the declarator pipeline
// (input -> lexer -> parser). They guard against panics and hangs on
// arbitrary inputs and check structural invariants of every success.
//
// Назначение: прогонять произвольные байты через лексер и парсер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/parser, internal/fixture,
// internal/testkit.
package fuzztests
