package pipeline

import (
	"bytes"
	"os"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/ring"
)

// Decode reads the spec named by opts and builds the symbolic layout. The
// raw spec bytes are returned alongside the layout so callers can hash the
// content for cache keys.
func Decode(opts Options) ([]byte, *ring.Layout, error) {
	if err := opts.ValidateForDecode(); err != nil {
		return nil, nil, err
	}

	spec := opts.Spec
	if len(spec) == 0 {
		data, err := os.ReadFile(opts.SpecPath)
		if err != nil {
			return nil, nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err,
				"read spec %s", opts.SpecPath)
		}
		spec = data
	}

	l, err := padringio.ReadSpec(bytes.NewReader(spec), padringio.Format(opts.Format))
	if err != nil {
		return spec, nil, err
	}
	applyOverrides(l, opts)
	return spec, l, nil
}

// applyOverrides folds resolution overrides into the decoded config. Order
// values were validated before decoding.
func applyOverrides(l *ring.Layout, opts Options) {
	if opts.Order != "" {
		if o, err := ring.ParseOrder(opts.Order); err == nil {
			l.Config.Order = o
		}
	}
	if opts.NoFill {
		l.Config.AutoFill = false
	}
}
