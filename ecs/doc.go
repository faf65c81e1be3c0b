// Package ecs spawns LDtk level content into a [Donburi] world.
//
// A [Registry] maps entity identifiers and int-grid values to spawn
// functions, optionally scoped to a layer. [Registry.SpawnLevel] walks a
// level's layers and creates one donburi entry per match, carrying the
// computed [WorldTransform]; the spawn function adds whatever components
// the game needs on top.
//
// Usage:
//
//	reg := ecs.NewRegistry()
//	reg.RegisterEntity(ldtk.Ptr("Player"), nil, spawnPlayer)
//	reg.RegisterIntCell(ldtk.Ptr(1), ldtk.Ptr("Collision"), spawnWall)
//	entries, err := reg.SpawnLevel(world, level, project.EntityDefinitions())
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
