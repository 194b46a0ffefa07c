// Package fuzztests houses Go fuzz harnesses for the nyanfmt pipeline
// (source -> lexer -> parser -> printer).
//
// Назначение: прогонять произвольные байты через лексер и форматтер и
// проверять, что ничего не паникует, не зависает и что форматирование
// идемпотентно.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/parser,
// internal/format, internal/testkit.
package fuzztests
