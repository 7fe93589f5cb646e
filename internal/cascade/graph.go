package cascade

import (
	"errors"
	"fmt"

	"github.com/Lucassfers/My-task-back-end/internal/models"
)

// Entity identifies a table that takes part in cascades.
type Entity string

const (
	EntityAdmin   Entity = "admins"
	EntityUser    Entity = "users"
	EntityBoard   Entity = "boards"
	EntityList    Entity = "lists"
	EntityTask    Entity = "tasks"
	EntityComment Entity = "comments"
	EntityLog     Entity = "logs"
)

// Policy says what happens to a child row when its parent is deleted.
type Policy int

const (
	// Cascade deletes the child and continues through the child's own relations.
	Cascade Policy = iota + 1
	// Detach sets the child's reference to NULL and keeps the row.
	Detach
	// Anonymize is a Detach on an authorship field.
	Anonymize
)

func (p Policy) String() string {
	switch p {
	case Cascade:
		return "cascade"
	case Detach:
		return "detach"
	case Anonymize:
		return "anonymize"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Relation is one foreign key edge from Child.ForeignKey to Parent.id.
type Relation struct {
	Child      Entity
	Parent     Entity
	ForeignKey string
	Policy     Policy
	// Category is the report key the affected rows are counted under.
	// Cascade relations always count under DeletedCategory(Child).
	Category string
}

// EntityDef registers a table and a constructor for its GORM model.
type EntityDef struct {
	Entity   Entity
	NewModel func() any
}

// DeletedCategory is the report key for rows of e removed by a cascade.
func DeletedCategory(e Entity) string {
	return string(e) + "_deleted"
}

var (
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrInvalidRelation = errors.New("invalid relation")
	ErrCascadeCycle    = errors.New("cascade relations form a cycle")
)

// Graph is the static, validated set of relations between entities.
type Graph struct {
	entities  map[Entity]EntityDef
	order     map[Entity]int
	relations []Relation
	byParent  map[Entity][]int
}

// NewGraph validates the definitions and builds a Graph. Cascade edges must
// be acyclic so that every cascade terminates and has a children-first order.
func NewGraph(entities []EntityDef, relations []Relation) (*Graph, error) {
	g := &Graph{
		entities: make(map[Entity]EntityDef, len(entities)),
		order:    make(map[Entity]int, len(entities)),
		byParent: make(map[Entity][]int),
	}

	for i, def := range entities {
		if def.Entity == "" || def.NewModel == nil {
			return nil, fmt.Errorf("%w: entity #%d is incomplete", ErrInvalidRelation, i)
		}
		if _, dup := g.entities[def.Entity]; dup {
			return nil, fmt.Errorf("%w: entity %s registered twice", ErrInvalidRelation, def.Entity)
		}
		g.entities[def.Entity] = def
		g.order[def.Entity] = i
	}

	for _, rel := range relations {
		if _, ok := g.entities[rel.Child]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, rel.Child)
		}
		if _, ok := g.entities[rel.Parent]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntity, rel.Parent)
		}
		if rel.ForeignKey == "" {
			return nil, fmt.Errorf("%w: %s -> %s has no foreign key", ErrInvalidRelation, rel.Child, rel.Parent)
		}

		switch rel.Policy {
		case Cascade:
			want := DeletedCategory(rel.Child)
			if rel.Category == "" {
				rel.Category = want
			} else if rel.Category != want {
				return nil, fmt.Errorf("%w: cascade %s.%s must count under %q", ErrInvalidRelation, rel.Child, rel.ForeignKey, want)
			}
		case Detach, Anonymize:
			if rel.Category == "" {
				return nil, fmt.Errorf("%w: %s.%s has no category", ErrInvalidRelation, rel.Child, rel.ForeignKey)
			}
		default:
			return nil, fmt.Errorf("%w: %s.%s has %s", ErrInvalidRelation, rel.Child, rel.ForeignKey, rel.Policy)
		}

		g.byParent[rel.Parent] = append(g.byParent[rel.Parent], len(g.relations))
		g.relations = append(g.relations, rel)
	}

	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}

	return g, nil
}

// MustGraph is NewGraph for static definitions; an invalid graph is a programming error.
func MustGraph(entities []EntityDef, relations []Relation) *Graph {
	g, err := NewGraph(entities, relations)
	if err != nil {
		panic(fmt.Sprintf("cascade: invalid relation graph: %v", err))
	}
	return g
}

// DefaultGraph returns the relations of the task board schema.
func DefaultGraph() *Graph {
	return MustGraph(defaultEntities, defaultRelations)
}

var defaultEntities = []EntityDef{
	{Entity: EntityAdmin, NewModel: func() any { return &models.Admin{} }},
	{Entity: EntityUser, NewModel: func() any { return &models.User{} }},
	{Entity: EntityBoard, NewModel: func() any { return &models.Board{} }},
	{Entity: EntityList, NewModel: func() any { return &models.List{} }},
	{Entity: EntityTask, NewModel: func() any { return &models.Task{} }},
	{Entity: EntityComment, NewModel: func() any { return &models.Comment{} }},
	{Entity: EntityLog, NewModel: func() any { return &models.Log{} }},
}

var defaultRelations = []Relation{
	// Admin references are supervisory only
	{Child: EntityBoard, Parent: EntityAdmin, ForeignKey: "admin_id", Policy: Detach, Category: "boards_detached"},
	{Child: EntityUser, Parent: EntityAdmin, ForeignKey: "admin_id", Policy: Detach, Category: "users_detached"},
	{Child: EntityLog, Parent: EntityAdmin, ForeignKey: "admin_id", Policy: Detach, Category: "logs_detached"},

	{Child: EntityBoard, Parent: EntityUser, ForeignKey: "user_id", Policy: Cascade},
	{Child: EntityLog, Parent: EntityUser, ForeignKey: "user_id", Policy: Detach, Category: "logs_detached"},
	{Child: EntityTask, Parent: EntityUser, ForeignKey: "assignee_id", Policy: Cascade},
	{Child: EntityComment, Parent: EntityUser, ForeignKey: "author_id", Policy: Anonymize, Category: "comments_anonymized"},

	{Child: EntityList, Parent: EntityBoard, ForeignKey: "board_id", Policy: Cascade},
	{Child: EntityTask, Parent: EntityList, ForeignKey: "list_id", Policy: Cascade},
	{Child: EntityComment, Parent: EntityTask, ForeignKey: "task_id", Policy: Cascade},
}

// Relations returns a copy of the graph's relations in declaration order.
func (g *Graph) Relations() []Relation {
	out := make([]Relation, len(g.relations))
	copy(out, g.relations)
	return out
}

// Has reports whether e is registered.
func (g *Graph) Has(e Entity) bool {
	_, ok := g.entities[e]
	return ok
}

func (g *Graph) newModel(e Entity) any {
	return g.entities[e].NewModel()
}

func (g *Graph) checkAcyclic() error {
	const (
		unvisited = iota
		active
		done
	)
	state := make(map[Entity]int, len(g.entities))

	var visit func(e Entity) error
	visit = func(e Entity) error {
		switch state[e] {
		case active:
			return fmt.Errorf("%w: through %s", ErrCascadeCycle, e)
		case done:
			return nil
		}
		state[e] = active
		for _, idx := range g.byParent[e] {
			rel := g.relations[idx]
			if rel.Policy != Cascade {
				continue
			}
			if err := visit(rel.Child); err != nil {
				return err
			}
		}
		state[e] = done
		return nil
	}

	for e := range g.entities {
		if err := visit(e); err != nil {
			return err
		}
	}
	return nil
}

// depths returns, for every entity reachable from root over cascade edges,
// the length of the longest cascade path from root. Deleting in decreasing
// depth removes every child before any of its parents.
func (g *Graph) depths(root Entity) map[Entity]int {
	depth := map[Entity]int{root: 0}
	for range g.entities {
		changed := false
		for _, rel := range g.relations {
			if rel.Policy != Cascade {
				continue
			}
			d, ok := depth[rel.Parent]
			if !ok {
				continue
			}
			if cur, seen := depth[rel.Child]; !seen || cur < d+1 {
				depth[rel.Child] = d + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return depth
}

// categories lists every report key a cascade from root can touch, in
// relation declaration order.
func (g *Graph) categories(root Entity) []string {
	reached := g.depths(root)
	seen := make(map[string]bool)
	var out []string
	for _, rel := range g.relations {
		if _, ok := reached[rel.Parent]; !ok {
			continue
		}
		if !seen[rel.Category] {
			seen[rel.Category] = true
			out = append(out, rel.Category)
		}
	}
	return out
}
