package parse

const (
	// DefaultMaxNodes is the node ceiling applied when no MaxNodes option
	// is given.
	DefaultMaxNodes = 50000
	// DefaultMaxDepth bounds container nesting.
	DefaultMaxDepth = 1024
)

type parseOpts struct {
	maxNodes int
	maxDepth int
	count    *int
}

type ParseOption func(*parseOpts)

// MaxNodes sets the node ceiling. A document producing more than n nodes
// fails with ErrCapacity. Values below 1 keep the default.
func MaxNodes(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxNodes = n
		}
	}
}

// MaxDepth sets the maximum container nesting depth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// NodeCount stores the number of nodes of a successful parse in *n.
func NodeCount(n *int) ParseOption {
	return func(o *parseOpts) { o.count = n }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		maxNodes: DefaultMaxNodes,
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

func (o *parseOpts) setCount(n int) {
	if o.count != nil {
		*o.count = n
	}
}
