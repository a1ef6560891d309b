// Package serialize implements spec §4.H's durable serialization: JSON and
// a compact tagged binary encoding, both lossless round-trips of a Graph's
// nodes, edges, both attribute maps, and meta.
//
// It additionally carries a supplemented feature absent from spec.md's
// distillation but present in the original implementation:
// AttachEmbeddingsFromMeta, which propagates embeddings stored in graph
// meta onto their matching nodes' attr["embeddings"] list.
package serialize
