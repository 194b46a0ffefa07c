// Package format prints a syntax tree in canonical form and wires the whole
// pipeline: text → tokens → tree → text.
//
// Правила вывода:
//   - слова предложения разделяются одним пробелом;
//   - абзац: комментарии по одному на строку, затем предложения по одному на строку;
//   - ведущие предложения, абзацы и хвостовые комментарии отделяются одной пустой строкой;
//   - непустой результат заканчивается ровно одним '\n'.
//
// The output re-parses to the same tree, so formatting is idempotent.
package format
