// File: embeddings.go
// Role: [SUPPLEMENTED FEATURE] attaches node embeddings stored in graph
// meta onto their matching nodes, adapted from original_source's
// embedding_utils.py (not excluded by any Non-goal).
package serialize

import (
	"fmt"

	"github.com/nodeweave/nodeweave/graph"
	"github.com/nodeweave/nodeweave/nwerrors"
)

// AttachEmbeddingsFromMeta reads g.Meta()["embedding"] (List<List<Float>>)
// and g.Meta()["embedding_ids"] (List<String>), and appends each embedding
// onto the matching node's attr["embeddings"] list via AttrListAppend.
// Fails with ErrTypeMismatch if either entry is missing, not a list, or the
// two lists have different lengths.
func AttachEmbeddingsFromMeta(g *graph.Graph) error {
	embeddingsV, ok := g.Meta().Get("embedding")
	if !ok {
		return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: missing meta[embedding]: %w", nwerrors.ErrTypeMismatch)
	}
	idsV, ok := g.Meta().Get("embedding_ids")
	if !ok {
		return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: missing meta[embedding_ids]: %w", nwerrors.ErrTypeMismatch)
	}

	embeddings, ok := embeddingsV.AsList()
	if !ok {
		return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: meta[embedding] is %s, not list: %w", embeddingsV.Kind(), nwerrors.ErrTypeMismatch)
	}
	ids, ok := idsV.AsList()
	if !ok {
		return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: meta[embedding_ids] is %s, not list: %w", idsV.Kind(), nwerrors.ErrTypeMismatch)
	}
	if len(embeddings) != len(ids) {
		return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: %d embeddings vs %d ids: %w", len(embeddings), len(ids), nwerrors.ErrTypeMismatch)
	}

	for i, idVal := range ids {
		id, ok := idVal.AsString()
		if !ok {
			return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: embedding_ids[%d] is %s, not string: %w", i, idVal.Kind(), nwerrors.ErrTypeMismatch)
		}
		n, err := g.GetNode(id)
		if err != nil {
			return fmt.Errorf("serialize.AttachEmbeddingsFromMeta: %w", nwerrors.ErrUnknownNode)
		}
		if err := n.AttrListAppend("embeddings", embeddings[i]); err != nil {
			return err
		}
	}
	return nil
}
