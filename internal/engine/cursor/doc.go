// Package cursor provides selections and multi-caret sets.
//
// A Selection is an anchor/head pair of byte offsets; when they coincide
// it is just a caret. A CaretSet holds the primary caret plus any
// secondary carets a view has, along with each caret's sticky visual
// column, the remembered display column that keeps vertical motions
// aligned across lines of varying length.
package cursor
