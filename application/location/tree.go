package location

import (
	"sort"

	"github.com/muhammadheryan/item-location/constant"
	"github.com/muhammadheryan/item-location/model"
	"github.com/muhammadheryan/item-location/utils/logger"
	"go.uber.org/zap"
)

// Tree is the location hierarchy rebuilt from the flat warehouse_location list.
type Tree struct {
	nodes map[uint64]*model.LocationNode
	roots []uint64
}

// BuildTree reconstructs parent/child links and path strings. A parent id
// that does not exist makes the node a root. Cycles are broken at their
// lowest id, which then becomes a root.
func BuildTree(locations []model.WarehouseLocation) *Tree {
	t := &Tree{nodes: make(map[uint64]*model.LocationNode, len(locations))}
	for _, loc := range locations {
		t.nodes[loc.ID] = &model.LocationNode{WarehouseLocation: loc}
	}

	ids := make([]uint64, 0, len(t.nodes))
	for id := range t.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parentOf := make(map[uint64]uint64, len(ids))
	roots := make([]uint64, 0)
	for _, id := range ids {
		n := t.nodes[id]
		if n.ParentID == nil || *n.ParentID == id {
			roots = append(roots, id)
			continue
		}
		if _, ok := t.nodes[*n.ParentID]; !ok {
			logger.Warn("[BuildTree] unknown parent, treating as root", zap.Uint64("location_id", id), zap.Uint64("parent_id", *n.ParentID))
			roots = append(roots, id)
			continue
		}
		parentOf[id] = *n.ParentID
		parent := t.nodes[*n.ParentID]
		parent.Children = append(parent.Children, id)
	}
	for _, n := range t.nodes {
		t.sortChildren(n)
	}

	visited := make(map[uint64]bool, len(ids))
	for _, id := range roots {
		t.walk(id, "", 0, visited)
	}
	// whatever is left hangs off a cycle
	for _, id := range ids {
		if visited[id] {
			continue
		}
		entry := lowestOnCycle(id, parentOf)
		logger.Warn("[BuildTree] location cycle detected, breaking", zap.Uint64("location_id", entry))
		parent := t.nodes[parentOf[entry]]
		parent.Children = removeID(parent.Children, entry)
		roots = append(roots, entry)
		t.walk(entry, "", 0, visited)
	}

	sort.SliceStable(roots, func(i, j int) bool { return t.less(roots[i], roots[j]) })
	t.roots = roots
	return t
}

func (t *Tree) walk(id uint64, parentPath string, depth int, visited map[uint64]bool) {
	if visited[id] {
		return
	}
	visited[id] = true
	n := t.nodes[id]
	n.Depth = depth
	if parentPath == "" {
		n.Path = n.Name
	} else {
		n.Path = parentPath + constant.LocationPathSeparator + n.Name
	}
	kept := n.Children[:0]
	for _, c := range n.Children {
		if visited[c] {
			continue
		}
		kept = append(kept, c)
		t.walk(c, n.Path, depth+1, visited)
	}
	n.Children = kept
}

func (t *Tree) less(a, b uint64) bool {
	na, nb := t.nodes[a], t.nodes[b]
	if na.Name != nb.Name {
		return na.Name < nb.Name
	}
	return a < b
}

func (t *Tree) sortChildren(n *model.LocationNode) {
	sort.SliceStable(n.Children, func(i, j int) bool { return t.less(n.Children[i], n.Children[j]) })
}

// lowestOnCycle follows parent links from id until a node repeats and
// returns the smallest id on that cycle. Every unvisited node has a parent.
func lowestOnCycle(id uint64, parentOf map[uint64]uint64) uint64 {
	seen := make(map[uint64]bool)
	cur := id
	for !seen[cur] {
		seen[cur] = true
		cur = parentOf[cur]
	}
	lowest := cur
	for next := parentOf[cur]; next != cur; next = parentOf[next] {
		if next < lowest {
			lowest = next
		}
	}
	return lowest
}

func removeID(ids []uint64, id uint64) []uint64 {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (t *Tree) Node(id uint64) (*model.LocationNode, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

func (t *Tree) Roots() []uint64 {
	return append([]uint64(nil), t.roots...)
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Path returns the " > " joined path of id, or "" when id is unknown.
func (t *Tree) Path(id uint64) string {
	if n, ok := t.nodes[id]; ok {
		return n.Path
	}
	return ""
}

// Descendants returns every location below id in depth-first order. id itself is excluded.
func (t *Tree) Descendants(id uint64) []uint64 {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	out := make([]uint64, 0)
	stack := append([]uint64(nil), n.Children...)
	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		children := t.nodes[cur].Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return out
}

// DescendantSet is Descendants as a set.
func (t *Tree) DescendantSet(id uint64) map[uint64]struct{} {
	ds := t.Descendants(id)
	set := make(map[uint64]struct{}, len(ds))
	for _, d := range ds {
		set[d] = struct{}{}
	}
	return set
}

// Leaves returns the descendants of id that have no children, in path order.
// A childless id is its own single leaf.
func (t *Tree) Leaves(id uint64) []uint64 {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	if len(n.Children) == 0 {
		return []uint64{id}
	}
	leaves := make([]uint64, 0)
	for _, d := range t.Descendants(id) {
		if len(t.nodes[d].Children) == 0 {
			leaves = append(leaves, d)
		}
	}
	return leaves
}

func (t *Tree) Response() *model.LocationTreeResponse {
	return &model.LocationTreeResponse{Roots: t.Roots(), Nodes: t.nodes}
}
