package service

import (
	"prokontra/internal/core/rank"
	"prokontra/internal/services/api/reasons/domain"
	"prokontra/internal/services/api/reasons/repo"
	votesdom "prokontra/internal/services/api/votes/domain"
)

// assemble builds the per-side reply trees. Children are attached only when
// reachable from a root, so replies whose parent is gone (or caught in a
// bad parent cycle) drop out instead of dangling.
func assemble(rows []repo.RowReason, scores map[string]votesdom.Score, mine map[string]int) (pro, con []*domain.Node) {
	nodes := make(map[string]*domain.Node, len(rows))
	children := make(map[string][]*domain.Node)

	for _, r := range rows {
		n := &domain.Node{
			ID:         r.ID,
			Side:       r.Side,
			Body:       r.Body,
			IsFeatured: r.IsFeatured,
			CreatedAt:  r.CreatedAt,
		}
		if r.ParentID != nil {
			n.ParentID = *r.ParentID
		}
		if sc, ok := scores[r.ID]; ok {
			n.Score, n.Up, n.Neutral, n.Down = sc.Score, sc.Up, sc.Neutral, sc.Down
		}
		if v, ok := mine[r.ID]; ok {
			vv := v
			n.YourVote = &vv
		}
		nodes[r.ID] = n
		if n.ParentID != "" {
			children[n.ParentID] = append(children[n.ParentID], n)
		}
	}

	var roots []*domain.Node
	for _, n := range nodes {
		if n.ParentID == "" {
			roots = append(roots, n)
		}
	}

	// walk down from the roots, ordering every sibling level
	queue := append([]*domain.Node(nil), roots...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		kids := children[n.ID]
		if len(kids) == 0 {
			continue
		}
		sortNodes(kids)
		n.Children = kids
		queue = append(queue, kids...)
	}

	sortNodes(roots)
	for _, n := range roots {
		switch n.Side {
		case domain.SidePro:
			pro = append(pro, n)
		default:
			con = append(con, n)
		}
	}
	return pro, con
}

func sortNodes(ns []*domain.Node) {
	rank.Sort(ns, func(n *domain.Node) rank.Key {
		return rank.Key{
			Featured:  n.IsFeatured,
			Score:     n.Score,
			CreatedAt: n.CreatedAt,
			ID:        n.ID,
		}
	})
}
