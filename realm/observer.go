package realm

// Action classifies a store mutation.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change describes one committed store mutation.
type Change struct {
	Action Action  `json:"action"`
	Region *Region `json:"region"`
}

// Observer receives change notifications from a Store. Dispatch is
// synchronous on the mutating call, after the store state is final, and in
// subscription order. Observers must not mutate the store reentrantly.
type Observer interface {
	OnChange(Change)
}

// Subscribe registers obs for change notifications.
func (s *Store) Subscribe(obs Observer) {
	s.observers = append(s.observers, obs)
}

// Unsubscribe removes a previously registered observer, compared by
// identity.
func (s *Store) Unsubscribe(obs Observer) {
	for i, o := range s.observers {
		if o == obs {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Store) notify(c Change) {
	for _, o := range s.observers {
		o.OnChange(c)
	}
}
