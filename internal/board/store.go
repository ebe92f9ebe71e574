package board

import "github.com/google/uuid"

// Listener receives an independent snapshot of the full project list after
// every committed mutation. Listeners derive their own filtered views; the
// store never filters for them.
type Listener func(projects []Project)

// Subscription is the handle returned by Subscribe. Cancel removes the
// registration; cancelling twice is harmless.
type Subscription struct {
	id    int
	store *Store
}

// Cancel removes the subscription from its store.
func (s Subscription) Cancel() {
	if s.store != nil {
		s.store.unsubscribe(s.id)
	}
}

type registration struct {
	id int
	fn Listener
}

// Store owns the authoritative project list. It is the only writer of
// project data: projects are created through AddProject and change status
// through MoveProject, nothing else.
//
// The store is single-goroutine by design and performs no I/O. Listeners
// must not call AddProject or MoveProject from inside their own callback;
// reentrant mutation is out of contract.
type Store struct {
	projects  []Project
	listeners []registration
	lastSubID int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// AddProject creates a project with a fresh unique id in the active lane,
// appends it, and notifies all subscribers. The created project is returned
// so callers can reference its id.
func (s *Store) AddProject(title, description string, people int) Project {
	p := Project{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      StatusActive,
	}
	s.projects = append(s.projects, p)
	s.notify()
	return p
}

// MoveProject sets the status of the project with the given id and notifies
// all subscribers. An unknown id or a move to the project's current status
// is a silent no-op: nothing mutates and nothing fires.
func (s *Store) MoveProject(id string, status Status) {
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		if s.projects[i].Status == status {
			return
		}
		s.projects[i].Status = status
		s.notify()
		return
	}
}

// Subscribe registers fn to run after every committed mutation. Listeners
// fire in registration order; registering the same function twice fires it
// twice per mutation.
func (s *Store) Subscribe(fn Listener) Subscription {
	s.lastSubID++
	s.listeners = append(s.listeners, registration{id: s.lastSubID, fn: fn})
	return Subscription{id: s.lastSubID, store: s}
}

// Projects returns a snapshot of the full project list. Mutating the
// returned slice never affects the store.
func (s *Store) Projects() []Project {
	return append([]Project(nil), s.projects...)
}

// Len reports how many projects the store holds.
func (s *Store) Len() int {
	return len(s.projects)
}

func (s *Store) unsubscribe(id int) {
	for i, reg := range s.listeners {
		if reg.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// notify hands every listener its own copy of the list, in registration
// order, before the mutating call returns. It ranges over a copy of the
// registrations so a listener cancelling a subscription mid-notification
// cannot shift its neighbours; such a cancel takes effect from the next
// notification.
func (s *Store) notify() {
	for _, reg := range append([]registration(nil), s.listeners...) {
		reg.fn(s.Projects())
	}
}
