// Package ring provides the core model for IO pad ring construction: sides,
// corners, symbolic positions, component classes, process device catalogs
// and voltage domain resolution.
//
// # Overview
//
// A pad ring is the band of IO cells around the edge of a die: functional
// pads along the four sides, corner cells closing the loop, and filler or
// blank spacers keeping the supply rails continuous between them. This
// package models that ring symbolically. Components carry logical positions
// ("top_3", "bottom_left", "left_1_2") independent of geometry; the place,
// fill and check packages turn the symbolic ring into validated coordinates.
//
// # Basic Usage
//
// Create a config from a process preset, finalize it, and add components to
// a [Layout]:
//
//	cfg, _ := ring.DefaultConfig(ring.ProcessC180)
//	cfg.Counts = ring.SideCounts{Bottom: 3, Right: 3, Top: 3, Left: 3}
//	cfg, _ = cfg.Finalize()
//
//	l := ring.NewLayout(cfg)
//	l.Add(&ring.Component{Name: "pad_clk", Device: "PDIO",
//		Class: ring.ClassPad, Pos: ring.SidePosition(ring.SideBottom, 0)})
//
// # Logical and Physical Indices
//
// Side positions use logical indices that follow the ring traversal order.
// Clockwise rings number slots in physical order; counterclockwise rings
// mirror them, so logical index i on a side with n entries occupies physical
// slot n-1-i. [RealIndex] implements the mapping and [Layout.SideComponents]
// returns sides pre-sorted into physical order.
//
// # Component Classes
//
// Placement rules differ per [Class]:
//
//   - [ClassPad]: functional IO, power and ground pads on side slots
//   - [ClassCorner]: the four cells at fixed die corners
//   - [ClassFiller]: rail-continuity spacers between same-domain pads
//   - [ClassBlank]: isolation spacers between unrelated domains
//   - [ClassInnerPad]: second-row pads floating between two outer pads
//
// Classes are usually derived from the device name through the per-process
// catalogs ([Classify]); specs may state them explicitly.
//
// # Voltage Domains
//
// Whether two neighboring cells may share a filler (or need isolation)
// depends on their voltage domains. [ResolveDomain] resolves a component
// through three tiers: pin connections, explicit descriptors, then the
// device catalog, reporting which tier matched. [SameDomain] compares
// strictly; [Compatible] adds the generic analog corner exception.
//
// # Concurrency
//
// Layout is not safe for concurrent use. The placement pipeline owns a
// layout exclusively while it runs.
package ring
