// Package form answers the structural questions a renderer asks before
// building an editable form from a schema tree:
//
//   - IsObjectLike: can the schema render as a single object form?
//   - Choices: which union branches can be offered to the user?
//   - IsValidatable: can the generic engine render it at all?
//   - HasTitle: does the schema already describe itself?
//   - InferFallback / GetFallback: what initial value should a field get?
//
// All functions are pure, never mutate the tree and are safe for concurrent
// use. They recurse once per nesting level. Unknown kinds take the
// conservative answer (not object-like, not validatable, untitled, no
// fallback) instead of failing.
package form
