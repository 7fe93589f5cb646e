package cascade

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// batchSize bounds the number of bind variables in a single IN clause.
const batchSize = 500

// StepKind says what a Step does to its rows.
type StepKind int

const (
	StepDelete StepKind = iota + 1
	StepDetach
	StepDeleteRoot
)

func (k StepKind) String() string {
	switch k {
	case StepDelete:
		return "delete"
	case StepDetach:
		return "detach"
	case StepDeleteRoot:
		return "delete root"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

// Step is a single bulk statement of a plan.
type Step struct {
	Kind   StepKind
	Entity Entity
	// Field is the column nulled by a detach step.
	Field    string
	IDs      []uuid.UUID
	Category string
}

// Plan is the ordered, deduplicated work of one cascade: deletes deepest
// first, then detaches, then the root. Building it mutates nothing.
type Plan struct {
	Root       Entity
	RootID     uuid.UUID
	Snapshot   any
	Steps      []Step
	Categories []string
}

// Planner walks a Graph from a root row and collects the rows to delete or detach.
type Planner struct {
	graph *Graph
}

// NewPlanner returns a Planner over graph.
func NewPlanner(graph *Graph) *Planner {
	return &Planner{graph: graph}
}

// Plan loads the root row and computes the cascade for it. db may be a
// transaction; only reads are issued.
func (p *Planner) Plan(db *gorm.DB, root Entity, id uuid.UUID) (*Plan, error) {
	snapshot, err := p.loadRoot(db, root, id)
	if err != nil {
		return nil, err
	}

	deletes := make(map[Entity]*idSet)
	detaches := make(map[int]*idSet)

	type frontier struct {
		entity Entity
		ids    []uuid.UUID
	}
	queue := []frontier{{entity: root, ids: []uuid.UUID{id}}}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		for _, idx := range p.graph.byParent[f.entity] {
			rel := p.graph.relations[idx]

			childIDs, err := p.children(db, rel, f.ids)
			if err != nil {
				return nil, err
			}

			if rel.Policy == Cascade {
				set := deletes[rel.Child]
				if set == nil {
					set = newIDSet()
					deletes[rel.Child] = set
				}
				// Rows reachable along several paths are queued only once.
				if fresh := set.add(childIDs); len(fresh) > 0 {
					queue = append(queue, frontier{entity: rel.Child, ids: fresh})
				}
				continue
			}

			set := detaches[idx]
			if set == nil {
				set = newIDSet()
				detaches[idx] = set
			}
			set.add(childIDs)
		}
	}

	plan := &Plan{
		Root:       root,
		RootID:     id,
		Snapshot:   snapshot,
		Categories: p.graph.categories(root),
	}

	depth := p.graph.depths(root)
	cascaded := make([]Entity, 0, len(depth))
	for e := range depth {
		if e != root {
			cascaded = append(cascaded, e)
		}
	}
	sort.Slice(cascaded, func(i, j int) bool {
		a, b := cascaded[i], cascaded[j]
		if depth[a] != depth[b] {
			return depth[a] > depth[b]
		}
		return p.graph.order[a] < p.graph.order[b]
	})

	for _, e := range cascaded {
		var ids []uuid.UUID
		if set := deletes[e]; set != nil {
			ids = set.ids
		}
		plan.Steps = append(plan.Steps, Step{
			Kind:     StepDelete,
			Entity:   e,
			IDs:      ids,
			Category: DeletedCategory(e),
		})
	}

	for idx, rel := range p.graph.relations {
		if rel.Policy == Cascade {
			continue
		}
		if _, reached := depth[rel.Parent]; !reached {
			continue
		}

		var ids []uuid.UUID
		if set := detaches[idx]; set != nil {
			for _, childID := range set.ids {
				// A row deleted in this cascade is not detached first.
				if gone := deletes[rel.Child]; gone != nil && gone.has(childID) {
					continue
				}
				if rel.Child == root && childID == id {
					continue
				}
				ids = append(ids, childID)
			}
		}
		plan.Steps = append(plan.Steps, Step{
			Kind:     StepDetach,
			Entity:   rel.Child,
			Field:    rel.ForeignKey,
			IDs:      ids,
			Category: rel.Category,
		})
	}

	plan.Steps = append(plan.Steps, Step{
		Kind:   StepDeleteRoot,
		Entity: root,
		IDs:    []uuid.UUID{id},
	})

	return plan, nil
}

func (p *Planner) loadRoot(db *gorm.DB, root Entity, id uuid.UUID) (any, error) {
	if !p.graph.Has(root) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, root)
	}

	snapshot := p.graph.newModel(root)
	if err := db.Where("id = ?", id).Take(snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: root, ID: id}
		}
		return nil, newStoreError("load", root, err)
	}
	return snapshot, nil
}

// children returns the ids of rel.Child rows referencing any of parentIDs.
func (p *Planner) children(db *gorm.DB, rel Relation, parentIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, batch := range chunk(parentIDs, batchSize) {
		var ids []uuid.UUID
		err := db.Model(p.graph.newModel(rel.Child)).
			Where(rel.ForeignKey+" IN ?", batch).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, newStoreError("plan", rel.Child, err)
		}
		out = append(out, ids...)
	}
	return out, nil
}

// idSet is an insertion-ordered set of ids.
type idSet struct {
	seen map[uuid.UUID]struct{}
	ids  []uuid.UUID
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uuid.UUID]struct{})}
}

// add inserts ids and returns the ones that were not present yet.
func (s *idSet) add(ids []uuid.UUID) []uuid.UUID {
	var fresh []uuid.UUID
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
		fresh = append(fresh, id)
	}
	return fresh
}

func (s *idSet) has(id uuid.UUID) bool {
	_, ok := s.seen[id]
	return ok
}

func chunk(ids []uuid.UUID, size int) [][]uuid.UUID {
	var out [][]uuid.UUID
	for len(ids) > size {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		out = append(out, ids)
	}
	return out
}
