package tableau

import (
	"errors"
	"slices"
	"testing"
)

func addEntities(t *testing.T, scene *Scene, count int, components ...Component) {
	t.Helper()
	for range count {
		e, err := scene.AddEntity("")
		if err != nil {
			t.Fatalf("AddEntity() error = %v", err)
		}
		for _, comp := range components {
			var err error
			switch comp.(type) {
			case AccessibleComponent[Position]:
				err = AddComponent(scene, e, Position{})
			case AccessibleComponent[Velocity]:
				err = AddComponent(scene, e, Velocity{})
			case AccessibleComponent[Health]:
				err = AddComponent(scene, e, Health{})
			default:
				t.Fatalf("unsupported test component %v", comp)
			}
			if err != nil {
				t.Fatalf("AddComponent(%v) error = %v", comp, err)
			}
		}
	}
}

// TestQueryFiltering tests the basic query filtering capabilities
func TestQueryFiltering(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()
	healthComp := FactoryNewComponent[Health]()

	type entitySetup struct {
		components []Component
		count      int
	}

	tests := []struct {
		name            string
		entitySetups    []entitySetup
		queryType       string // "and", "or", "not", "complex"
		queryComponents []Component
		expectedMatches int
	}{
		{
			name: "And query matches exact",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			queryType:       "and",
			queryComponents: []Component{posComp, velComp},
			expectedMatches: 5,
		},
		{
			name: "Or query matches either",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
			},
			queryType:       "or",
			queryComponents: []Component{posComp, velComp},
			expectedMatches: 30,
		},
		{
			name: "Not query excludes",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp}, 5},
				{[]Component{posComp}, 10},
				{[]Component{velComp}, 15},
				{[]Component{healthComp}, 20},
			},
			queryType:       "not",
			queryComponents: []Component{velComp},
			expectedMatches: 30,
		},
		{
			name: "Complex query",
			entitySetups: []entitySetup{
				{[]Component{posComp, velComp, healthComp}, 5},
				{[]Component{posComp, velComp}, 10},
				{[]Component{posComp, healthComp}, 15},
				{[]Component{velComp, healthComp}, 20},
				{[]Component{posComp}, 25},
			},
			queryType:       "complex",
			queryComponents: []Component{posComp, velComp, healthComp},
			expectedMatches: 30, // (P AND V) OR (P AND H)
		},
		{
			name: "And over unregistered component",
			entitySetups: []entitySetup{
				{[]Component{posComp}, 5},
			},
			queryType:       "and",
			queryComponents: []Component{posComp, healthComp},
			expectedMatches: 0,
		},
		{
			name: "Not over unregistered component",
			entitySetups: []entitySetup{
				{[]Component{posComp}, 5},
			},
			queryType:       "not",
			queryComponents: []Component{healthComp},
			expectedMatches: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := Factory.NewScene()
			for _, setup := range tt.entitySetups {
				addEntities(t, scene, setup.count, setup.components...)
			}

			query := Factory.NewQuery()
			var node QueryNode
			switch tt.queryType {
			case "and":
				node = query.And(tt.queryComponents)
			case "or":
				node = query.Or(tt.queryComponents)
			case "not":
				node = query.Not(tt.queryComponents)
			case "complex":
				p, v, h := tt.queryComponents[0], tt.queryComponents[1], tt.queryComponents[2]
				node = query.Or(Factory.NewQuery().And(p, v), Factory.NewQuery().And(p, h))
			}

			cursor := Factory.NewCursor(node, scene)
			if got := cursor.TotalMatched(); got != tt.expectedMatches {
				t.Errorf("TotalMatched() = %d, want %d", got, tt.expectedMatches)
			}
			count := 0
			for cursor.Next() {
				count++
			}
			if count != tt.expectedMatches {
				t.Errorf("iterated %d entities, want %d", count, tt.expectedMatches)
			}
			if scene.Locked() {
				t.Error("scene still locked after iteration")
			}
		})
	}
}

func TestCursorComponentAccess(t *testing.T) {
	scene := Factory.NewScene()
	position := FactoryNewComponent[Position]()
	velocity := FactoryNewComponent[Velocity]()

	for i := range 4 {
		e, _ := scene.AddEntity("")
		position.Add(scene, e, Position{X: float64(i)})
		if i%2 == 0 {
			velocity.Add(scene, e, Velocity{X: 1, Y: 1})
		}
	}

	cursor := Factory.NewCursor(Factory.NewQuery().And(position, velocity), scene)
	for cursor.Next() {
		if !velocity.CheckCursor(cursor) {
			t.Fatalf("entity %d matched without velocity", cursor.Entity())
		}
		pos, err := position.GetFromCursor(cursor)
		if err != nil {
			t.Fatalf("GetFromCursor() error = %v", err)
		}
		vel, _ := velocity.GetFromCursor(cursor)
		pos.X += vel.X
	}

	for i, want := range []float64{1, 1, 3, 3} {
		pos, _ := position.GetFromEntity(scene, Entity(i))
		if pos.X != want {
			t.Errorf("Position(%d).X = %v, want %v", i, pos.X, want)
		}
	}
}

func TestCursorDefersMutation(t *testing.T) {
	scene := Factory.NewScene()
	position := FactoryNewComponent[Position]()
	addEntities(t, scene, 6, position)

	cursor := Factory.NewCursor(Factory.NewQuery().And(position), scene)
	visited := 0
	for e := range cursor.Entities() {
		visited++
		if !scene.Locked() {
			t.Fatal("scene not locked during iteration")
		}
		var locked LockedSceneError
		if err := position.Remove(scene, e); !errors.As(err, &locked) {
			t.Fatalf("direct removal during iteration error = %v, want LockedSceneError", err)
		}
		if err := EnqueueRemoveComponent[Position](scene, e); err != nil {
			t.Fatalf("EnqueueRemoveComponent() error = %v", err)
		}
		if e%2 == 1 {
			if err := scene.EnqueueRemoveEntity(e); err != nil {
				t.Fatalf("EnqueueRemoveEntity() error = %v", err)
			}
		}
	}

	if err := cursor.Err(); err != nil {
		t.Fatalf("cursor.Err() = %v", err)
	}
	if visited != 6 {
		t.Errorf("visited %d entities, want 6", visited)
	}
	if scene.Len() != 3 {
		t.Errorf("Len() = %d, want 3", scene.Len())
	}
	if got := position.Entities(scene); len(got) != 0 {
		t.Errorf("Position entities = %v, want none", got)
	}
	checkInvariants(t, scene)
}

func TestCursorCollectAndBreak(t *testing.T) {
	scene := Factory.NewScene()
	health := FactoryNewComponent[Health]()
	addEntities(t, scene, 3, health)
	addEntities(t, scene, 2)

	cursor := Factory.NewCursor(Factory.NewQuery().And(health), scene)
	if got := cursor.Collect(); !slices.Equal(got, []Entity{0, 1, 2}) {
		t.Errorf("Collect() = %v, want [0 1 2]", got)
	}

	for range cursor.Entities() {
		break
	}
	if scene.Locked() {
		t.Error("scene still locked after breaking out of Entities()")
	}
}

func TestCursorAccessOutsideIteration(t *testing.T) {
	scene := Factory.NewScene()
	position := FactoryNewComponent[Position]()
	addEntities(t, scene, 2, position)

	cursor := Factory.NewCursor(Factory.NewQuery().And(position), scene)

	check := func(when string) {
		t.Helper()
		var inactive InactiveCursorError
		if _, err := position.GetFromCursor(cursor); !errors.As(err, &inactive) {
			t.Errorf("GetFromCursor() %s error = %v, want InactiveCursorError", when, err)
		}
		if position.CheckCursor(cursor) {
			t.Errorf("CheckCursor() %s = true, want false", when)
		}
	}

	check("before Next")
	for cursor.Next() {
		if _, err := position.GetFromCursor(cursor); err != nil {
			t.Fatalf("GetFromCursor() during iteration error = %v", err)
		}
	}
	check("after iteration")

	cursor.Next()
	cursor.Reset()
	check("after Reset")
}
