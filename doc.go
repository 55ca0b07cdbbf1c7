/*
Package tableau provides the entity-component store behind a real-time scene editor.

Tableau keeps every component type in its own dense array and lets several entities
reference the same component value. Removal is O(1): the last element of an array is
swapped into the hole and every reference to the moved element is corrected in the
same call.

Core Concepts:

  - Entity: An integer handle that is also the entity's row in the scene. Removing an
    entity hands its id to the entity that was last.
  - Component: Any Go value type. Each scene assigns a type a small id on first use,
    at most MaxComponentTypes of them.
  - Sharing: ShareComponent points a second entity at an existing component value
    instead of copying it. The value lives until its last entity lets go.
  - Query: A way to find entities with specific component combinations.

Basic Usage:

	scene := tableau.Factory.NewScene()

	box, _ := scene.AddEntity("Wooden box")
	tableau.AddComponent(scene, box, tableau.NewRendering()) // also attaches a Transform

	lamp, _ := scene.AddEntity("Lamp")
	tableau.ShareComponent[tableau.Rendering](scene, box, lamp)

	for _, e := range tableau.ComponentEntities[tableau.Rendering](scene) {
		rendering, _ := tableau.GetComponent[tableau.Rendering](scene, e)
		transform, _ := tableau.GetComponent[tableau.Transform](scene, e)
		draw(rendering, transform.Matrix())
	}

Mutating a scene invalidates component pointers and entity lists obtained from it.
Iterate with a Cursor to keep the scene locked and defer mutations made through the
Enqueue functions until iteration ends:

	rendering := tableau.FactoryNewComponent[tableau.Rendering]()
	cursor := tableau.Factory.NewCursor(tableau.Factory.NewQuery().And(rendering), scene)
	for cursor.Next() {
		tableau.EnqueueRemoveComponent[tableau.Rendering](scene, cursor.Entity())
	}
*/
package tableau
