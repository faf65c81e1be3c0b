package ecs

import (
	"testing"

	"github.com/phanxgames/ldtk"

	"github.com/yohamta/donburi"
)

// Two-layer level: an entity layer on top of a 2x2 int-grid layer. The
// level is 320px tall so entity translations flip against that extent.
func testLevel() *ldtk.Level {
	return &ldtk.Level{
		Identifier: "Level_0",
		Iid:        "iid-level-0",
		PxWid:      320,
		PxHei:      320,
		LayerInstances: []ldtk.LayerInstance{
			{
				Identifier: "Actors",
				Type:       ldtk.LayerTypeEntities,
				EntityInstances: []ldtk.EntityInstance{
					{
						Identifier: "Player",
						Iid:        "iid-player",
						DefUid:     10,
						Px:         [2]int{256, 256},
						Width:      32,
						Height:     32,
						Pivot:      [2]float64{0, 0},
					},
					{
						Identifier: "Chest",
						Iid:        "iid-chest",
						DefUid:     11,
						Px:         [2]int{0, 320},
						Width:      16,
						Height:     16,
						Pivot:      [2]float64{0, 1},
					},
				},
			},
			{
				Identifier: "Collision",
				Type:       ldtk.LayerTypeIntGrid,
				CWid:       2,
				CHei:       2,
				GridSize:   16,
				IntGridCSV: []int{1, 0, 0, 2},
			},
		},
	}
}

func testDefs() ldtk.EntityDefinitionMap {
	return ldtk.NewEntityDefinitionMap([]ldtk.EntityDefinition{
		{Uid: 10, Identifier: "Player", Width: 32, Height: 32},
		{Uid: 11, Identifier: "Chest", Width: 16, Height: 16},
	})
}

func TestRegistry_SpawnLevel_Entities(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistry()

	var got []EntitySpawn
	reg.RegisterEntity(ldtk.Ptr("Player"), nil, func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn) {
		got = append(got, spawn)
	})

	entries, err := reg.SpawnLevel(world, testLevel(), testDefs())
	if err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}
	if len(entries) != 1 || len(got) != 1 {
		t.Fatalf("expected 1 spawn, got %d entries and %d calls", len(entries), len(got))
	}

	if got[0].Instance.Identifier != "Player" || got[0].Layer.Identifier != "Actors" {
		t.Errorf("spawn context: %+v", got[0])
	}

	// Entity layer sits on top of the int-grid layer, so it spawns at z=1.
	want := ldtk.Transform{X: 272, Y: 47, Z: 1, ScaleX: 1, ScaleY: 1}
	if got[0].Transform != want {
		t.Errorf("transform = %+v, want %+v", got[0].Transform, want)
	}
	if stored := donburi.Get[ldtk.Transform](entries[0], WorldTransform); *stored != want {
		t.Errorf("WorldTransform component = %+v, want %+v", *stored, want)
	}
}

func TestRegistry_SpawnLevel_IntCells(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistry()

	var got []IntCellSpawn
	reg.RegisterIntCell(ldtk.Ptr(1), ldtk.Ptr("Collision"), func(w donburi.World, entry *donburi.Entry, spawn IntCellSpawn) {
		got = append(got, spawn)
	})

	entries, err := reg.SpawnLevel(world, testLevel(), testDefs())
	if err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}
	// Value 2 has no registration and must be skipped.
	if len(entries) != 1 || len(got) != 1 {
		t.Fatalf("expected 1 spawn, got %d entries and %d calls", len(entries), len(got))
	}

	if got[0].Value != 1 {
		t.Errorf("value = %d, want 1", got[0].Value)
	}
	if want := (ldtk.GridCoord{X: 0, Y: 1}); got[0].Cell != want {
		t.Errorf("cell = %+v, want %+v", got[0].Cell, want)
	}
	want := ldtk.Transform{X: 8, Y: 24, Z: 0, ScaleX: 1, ScaleY: 1}
	if got[0].Transform != want {
		t.Errorf("transform = %+v, want %+v", got[0].Transform, want)
	}
}

func TestRegistry_SpawnLevel_SpecificityOverGeneric(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistry()

	var exact, generic int
	reg.RegisterEntity(ldtk.Ptr("Player"), ldtk.Ptr("Actors"), func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn) {
		exact++
	})
	reg.RegisterEntity(nil, nil, func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn) {
		generic++
	})

	if _, err := reg.SpawnLevel(world, testLevel(), testDefs()); err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}
	if exact != 1 {
		t.Errorf("exact registration called %d times, want 1", exact)
	}
	// The fully generic registration picks up the remaining Chest instance.
	if generic != 1 {
		t.Errorf("generic registration called %d times, want 1", generic)
	}
}

func TestRegistry_SpawnLevel_DefaultSpawners(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistry()

	var entities, cells int
	reg.SetDefaultEntitySpawner(func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn) {
		entities++
	})
	reg.SetDefaultIntCellSpawner(func(w donburi.World, entry *donburi.Entry, spawn IntCellSpawn) {
		cells++
	})

	entries, err := reg.SpawnLevel(world, testLevel(), testDefs())
	if err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}
	if entities != 2 || cells != 2 {
		t.Errorf("defaults called %d entity / %d cell times, want 2 / 2", entities, cells)
	}
	if len(entries) != 4 {
		t.Errorf("got %d entries, want 4", len(entries))
	}
}

func TestRegistry_SpawnLevel_EmptyRegistrySpawnsNothing(t *testing.T) {
	world := donburi.NewWorld()

	entries, err := NewRegistry().SpawnLevel(world, testLevel(), testDefs())
	if err != nil {
		t.Fatalf("SpawnLevel: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestRegistry_SpawnLevel_UnknownDefinition(t *testing.T) {
	world := donburi.NewWorld()
	reg := NewRegistry()
	reg.SetDefaultEntitySpawner(func(w donburi.World, entry *donburi.Entry, spawn EntitySpawn) {})

	// Definition table missing the Chest uid.
	defs := ldtk.NewEntityDefinitionMap([]ldtk.EntityDefinition{
		{Uid: 10, Identifier: "Player", Width: 32, Height: 32},
	})
	if _, err := reg.SpawnLevel(world, testLevel(), defs); err == nil {
		t.Fatal("expected error for unknown entity definition")
	}
}
