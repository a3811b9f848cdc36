package tags

// Registry holds the namespace table consulted for validation, suggestion,
// and conflict detection. Construct one explicitly and share it among the
// stores that should agree on vocabulary; there is no package-global
// instance.
type Registry struct {
	order []string
	byKey map[string]Namespace
}

// Option configures a Registry under construction.
type Option func(*Registry)

// WithNamespaces appends namespaces on top of the built-in table, overriding
// by key. Used for host-supplied namespace packs.
func WithNamespaces(extra ...Namespace) Option {
	return func(r *Registry) {
		for _, ns := range extra {
			r.add(ns)
		}
	}
}

// NewRegistry builds a Registry over the built-in namespace table plus any
// options.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{byKey: make(map[string]Namespace)}
	for _, ns := range BuiltinNamespaces() {
		r.add(ns)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) add(ns Namespace) {
	if _, exists := r.byKey[ns.Key]; !exists {
		r.order = append(r.order, ns.Key)
	}
	r.byKey[ns.Key] = ns
}

// Lookup returns the namespace registered for key.
func (r *Registry) Lookup(key string) (Namespace, bool) {
	ns, ok := r.byKey[key]
	return ns, ok
}

// IsMulti reports whether key may carry several tags on one region. Unknown
// keys are multi-valued: the vocabulary is open and nothing is known about
// their cardinality.
func (r *Registry) IsMulti(key string) bool {
	ns, ok := r.byKey[key]
	if !ok {
		return true
	}
	return ns.Multi
}

// Namespaces returns the table in registration order.
func (r *Registry) Namespaces() []Namespace {
	out := make([]Namespace, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byKey[key])
	}
	return out
}
