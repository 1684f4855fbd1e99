package index

import (
	"encoding/json"
	"fmt"

	"github.com/oxhq/browscap/internal/glob"
	"github.com/oxhq/browscap/internal/kv"
)

// Search walks the persisted index for the best-matching pattern for ua:
// a case-sensitive pass first, falling back to a case-insensitive pass only
// if the first found nothing. It returns ok=false if neither pass matched
// anything.
func Search(store kv.Store, ua string) (pattern string, ok bool, err error) {
	pattern, err = searchPass(store, ua, false)
	if err != nil {
		return "", false, err
	}
	if pattern != "" {
		return pattern, true, nil
	}

	pattern, err = searchPass(store, ua, true)
	if err != nil {
		return "", false, err
	}
	return pattern, pattern != "", nil
}

// searchCtx carries per-call search state by reference, never a
// process-wide mutable singleton, so concurrent searches against the same
// Store never interfere with each other.
type searchCtx struct {
	store      kv.Store
	ua         string
	ignoreCase bool

	bestPattern string
	bestScore   int
}

func searchPass(store kv.Store, ua string, ignoreCase bool) (string, error) {
	ctx := &searchCtx{store: store, ua: ua, ignoreCase: ignoreCase}

	root, err := loadNode(store, RootKey)
	if err != nil {
		return "", err
	}
	if err := ctx.descend(root, "", 0); err != nil {
		return "", err
	}
	return ctx.bestPattern, nil
}

// descend implements the single-pass index walk. node's children are sorted
// by max_length descending; the prune condition compares a child's
// max_length against accLen, not against the running best score. That
// asymmetry is intentional and must not be "fixed" to compare against
// bestScore instead.
func (c *searchCtx) descend(node Node, accPattern string, accLen int) error {
	for _, child := range node.Children {
		if int(child.MaxLength) < accLen {
			break
		}

		childPattern := accPattern + child.Suffix
		probe := childPattern
		if len(probe) == 0 || probe[len(probe)-1] != '*' {
			probe += "*"
		}
		if !glob.Match(probe, c.ua, c.ignoreCase) {
			continue
		}

		loaded, err := loadNode(c.store, childPattern)
		if err != nil {
			return err
		}
		childLen := accLen + glob.SignificantLength(child.Suffix)

		if loaded.IsFull {
			endsStar := len(childPattern) > 0 && childPattern[len(childPattern)-1] == '*'
			if endsStar || glob.Match(childPattern, c.ua, c.ignoreCase) {
				if childLen > c.bestScore {
					c.bestPattern = childPattern
					c.bestScore = childLen
				}
			}
		}

		if len(loaded.Children) > 0 {
			if err := c.descend(loaded, childPattern, childLen); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadNode(store kv.Store, pattern string) (Node, error) {
	key := IndexKey(pattern)
	raw, ok, err := store.Get(key)
	if err != nil {
		return Node{}, fmt.Errorf("index: get %q: %w", string(key), err)
	}
	if !ok {
		return Node{}, &CorruptError{Key: string(key)}
	}
	var n Node
	if err := json.Unmarshal(raw, &n); err != nil {
		return Node{}, &CorruptError{Key: string(key), Err: err}
	}
	return n, nil
}
