package cases

// Option configures Enumerate.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	Topology Topology
	Order    Order
	Files    FileNames
}

// DefaultOptions returns Flat topology, Lexical order and A.txt/B.txt/C.txt.
func DefaultOptions() Options {
	return Options{
		Topology: Flat,
		Order:    Lexical,
		Files:    DefaultFileNames,
	}
}

// WithTopology selects the directory layout.
func WithTopology(t Topology) Option {
	return func(o *Options) { o.Topology = t }
}

// WithOrder selects how sibling names are sorted.
func WithOrder(ord Order) Option {
	return func(o *Options) { o.Order = ord }
}

// WithFileNames overrides the three required file names. Empty fields keep
// their defaults.
func WithFileNames(f FileNames) Option {
	return func(o *Options) {
		if f.A != "" {
			o.Files.A = f.A
		}
		if f.B != "" {
			o.Files.B = f.B
		}
		if f.C != "" {
			o.Files.C = f.C
		}
	}
}
