// Package realm is the spatial-tag engine behind map annotation: named,
// tagged 2-D regions on a bounded plane, with point, bounding-box, and
// tag-predicate queries fast enough for interactive use.
//
// # Overview
//
// A Store owns the regions of one logical scope, such as one scene or one
// exported document. Regions combine a geometry (polygon, rectangle, or
// circle), an open set of key:value tags, and lifecycle metadata:
//
//	reg := tags.NewRegistry()
//	store := realm.NewStore("scene-1", reg)
//
//	forest, _ := store.Create("Darkwood",
//	    geometry.Polygon(0, 0, 50, 0, 50, 50, 0, 50),
//	    []string{"biome:forest", "terrain:dense", "travel_speed:0.5"})
//
//	hits := store.QueryPoint(25, 25)          // -> [forest]
//	dense := store.QueryTags([]string{"terrain:dense"})
//	_ = store.Update(forest.ID, realm.Patch{AddTags: []string{"resources:game"}})
//
// Point queries reject candidates by bounding box before running the exact
// containment test, which keeps polygon-heavy stores interactive.
//
// # Tags
//
// Tag validation, autocomplete suggestion, and conflict detection live in
// realm/tags. Mutating operations validate through the store's Registry and
// fail atomically: one bad tag means nothing is applied. Single-valued
// namespaces (biome, climate, travel_speed, elevation) replace on add;
// multi-valued ones accumulate.
//
// # Persistence
//
// The engine performs no I/O. realm/codec turns a Store into a versioned
// JSON document and back, with replace, merge, and skip conflict policies;
// where that document lives is the host's concern.
//
// # Concurrency
//
// Everything here is single-threaded and synchronous. One Store belongs to
// one logical owner; wrap calls in your own mutex if you must share it.
package realm
