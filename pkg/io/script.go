package io

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
)

// =============================================================================
// Placement Script Generation
// =============================================================================

// WriteScript emits the artifact as a SKILL placement script on w. Every
// instance becomes one dbCreateInstByMasterName call against the currently
// edited cellview, so replaying the script reproduces the ring without
// re-deriving a single coordinate. Instances keep their artifact order, the
// ring traversal from the bottom-left corner.
func WriteScript(a Artifact, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, ";; %s pad ring placement, %d instances\n", a.Process, len(a.Instances))
	fmt.Fprintf(&b, ";; die %g x %g um, %s traversal\n", a.DieWidth, a.DieHeight, a.Order)
	b.WriteString("cv = geGetEditCellView()\n")

	for _, inst := range a.Instances {
		fmt.Fprintf(&b, "dbCreateInstByMasterName(cv %q %q %q %q %s:%s %q)\n",
			a.Library, inst.Device, a.View, inst.Name,
			formatCoord(inst.Position[0]), formatCoord(inst.Position[1]),
			inst.Orientation)
	}

	b.WriteString("dbSave(cv)\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err, "write script")
	}
	return nil
}

// ExportScript writes the placement script to a file at path.
func ExportScript(a Artifact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteScript(a, f)
}

// formatCoord renders a die coordinate without trailing zeros.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
