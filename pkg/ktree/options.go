package ktree

import "github.com/hashicorp/go-hclog"

type options struct {
	logger      hclog.Logger
	lookupCache int
}

// Option configures a tree created by New.
type Option func(*options)

// WithLogger makes the tree report construction, growth and rejected edits
// to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(opt *options) {
		opt.logger = logger
	}
}

// WithLookupCache remembers up to size nodes found by index, sparing Get and
// Set the depth-first search on repeated access. Nodes keep their index for
// the life of the tree, so entries never go stale.
func WithLookupCache(size int) Option {
	return func(opt *options) {
		opt.lookupCache = size
	}
}

func flattenOptions(opts []Option) options {
	var flat options
	for _, opt := range opts {
		opt(&flat)
	}

	if flat.logger == nil {
		flat.logger = hclog.NewNullLogger()
	} else {
		flat.logger = flat.logger.Named("ktree")
	}
	return flat
}
