package folders

import (
	"github.com/adrienb/vocabflash/internal/models"
)

const (
	// DefaultMaxDepth bounds subtree walks so a corrupted parent chain
	// cannot stall a request.
	DefaultMaxDepth = 32

	// maxPathLength bounds ancestor chains the same way.
	maxPathLength = 10
)

// Subtree returns the ids of the folder rooted at rootID plus all of its
// descendants, walking breadth first over the given folder set. The walk
// stops at maxDepth levels (DefaultMaxDepth when maxDepth <= 0) and returns
// whatever it has collected so far; a cycle or an over-deep tree degrades to
// a partial scope instead of an error. The root id is always included, even
// when it does not appear in the folder set.
func Subtree(all []models.Folder, rootID string, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	children := make(map[string][]string, len(all))
	for _, f := range all {
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}

	ids := []string{rootID}
	seen := map[string]bool{rootID: true}
	frontier := []string{rootID}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, child := range children[id] {
				if seen[child] {
					continue
				}
				seen[child] = true
				ids = append(ids, child)
				next = append(next, child)
			}
		}
		frontier = next
	}
	return ids
}

// Path returns the ancestor chain for a folder, root first, ending with the
// folder itself. Chains are truncated at a fixed bound so a cyclic parent
// reference cannot loop forever. An unknown id yields an empty chain.
func Path(all []models.Folder, id string) []models.Folder {
	byID := make(map[string]models.Folder, len(all))
	for _, f := range all {
		byID[f.ID] = f
	}

	var chain []models.Folder
	cur, ok := byID[id]
	for ok {
		chain = append(chain, cur)
		if len(chain) > maxPathLength {
			break
		}
		if cur.ParentID == nil {
			break
		}
		cur, ok = byID[*cur.ParentID]
	}

	// Reverse into root-first order.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
