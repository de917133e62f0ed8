// Package io reads ring spec files and writes resolved ring artifacts.
//
// # Overview
//
// A ring spec declares WHAT sits on the die boundary: the process preset,
// any overridden ring parameters and the named instances with their symbolic
// positions. The artifact is the resolved answer: every instance with die
// coordinates, rotation and voltage domain, in ring traversal order. Specs
// come in TOML or JSON; artifacts are always JSON.
//
// # Spec Format
//
// The [ring] table names the process and overrides preset fields. Every
// other table is one instance:
//
//	[ring]
//	process = "c180"
//	order = "ccw"
//
//	[ring.counts]
//	bottom = 2
//	right = 2
//	top = 2
//	left = 2
//
//	[instance.corner_bl]
//	device = "PCORNER"
//	position = "bottom_left"
//
//	[instance.vdd18]
//	device = "PDVDD"
//	position = "bottom_0"
//
//	[instance.sense]
//	device = "PAIO"
//	position = "bottom_1"
//	[instance.sense.pin_config]
//	AVDD33 = "AVDD33"
//	AVSS33 = "AVSS33"
//
// # Instance Fields
//
// Required:
//   - device: library cell name
//   - position: corner name, side_N slot or side_N1_N2 inner reference
//
// Optional:
//   - type: pad, corner, filler, blank or inner_pad; classified from the
//     device name when omitted
//   - domain: shorthand domain tag ("analog", "digital" or a full key)
//   - voltage_domain: explicit power/ground descriptor table
//   - pin_config / pin_connection: pin-to-net map driving domain resolution
//   - width, height: footprint overrides in um
//   - io_direction, io_type: informational IO attributes
//
// # Import
//
// Use [ImportSpec] to read a spec file, or [ReadSpec] to read from any
// io.Reader with an explicit [Format]:
//
//	l, err := io.ImportSpec("ring.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both validate names, devices, nets and position syntax and return
// structured errors naming the offending instance. Structural rules (corner
// coverage, slot collisions, side counts) are the check package's job.
//
// # Export
//
// [BuildArtifact] captures a resolved layout; [ExportArtifact] and
// [WriteArtifact] serialize it. [ImportArtifact] and [ReadArtifact] load it
// back for inspection, so a resolved ring round-trips losslessly.
package io
