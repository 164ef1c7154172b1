package filament

const DefaultWorkers = 1

// Registry holds the contact pairs registered for a simulation, in
// registration order.
//
// Order matters: the equilibrium repulsion term of the rod-rod and
// rod-cylinder kernels reads the force state accumulated by earlier pairs
// in the same step, so ApplyForces runs pairs strictly in registration
// order. ApplyForcesParallel relaxes that only between pairs that share no
// system, which cannot observe each other's writes anyway.
type Registry struct {
	Contacts []Contact
	Workers  int
}

// Register appends a contact pair. The same system may appear in any number
// of pairs.
func (reg *Registry) Register(contacts ...Contact) {
	reg.Contacts = append(reg.Contacts, contacts...)
}

// ApplyForces applies every registered contact once, sequentially and in
// registration order.
func (reg *Registry) ApplyForces() {
	for _, contact := range reg.Contacts {
		contact.ApplyForces()
	}
}

// ApplyForcesParallel applies every registered contact once, fanning
// independent contacts out over Workers goroutines.
//
// The force buffers are written additively with no synchronization, so two
// contacts touching the same rod or cylinder must never run concurrently.
// Contacts are greedily packed into batches of pairwise-disjoint system
// sets; batches run one after the other, each on the task worker pool, and
// within a batch relative registration order is kept per worker chunk.
func (reg *Registry) ApplyForcesParallel() {
	workers := max(DefaultWorkers, reg.Workers)
	if workers == 1 || len(reg.Contacts) < 2 {
		reg.ApplyForces()
		return
	}

	for _, batch := range reg.batches() {
		task(min(workers, len(batch)), batch, func(contact Contact) {
			contact.ApplyForces()
		})
	}
}

// batches greedily partitions the contacts into runs of contacts with
// pairwise-disjoint systems, preserving registration order: a contact whose
// system is already claimed in the current batch starts the next one, so a
// later batch never holds a contact registered before one in an earlier
// batch that it conflicts with.
func (reg *Registry) batches() [][]Contact {
	var batches [][]Contact
	claimed := make(map[any]int)

	for _, contact := range reg.Contacts {
		// The earliest batch this contact may join is one past the last
		// batch that claimed any of its systems.
		slot := 0
		for _, system := range contact.Systems() {
			if idx, ok := claimed[system]; ok && idx >= slot {
				slot = idx + 1
			}
		}
		if slot == len(batches) {
			batches = append(batches, nil)
		}
		batches[slot] = append(batches[slot], contact)
		for _, system := range contact.Systems() {
			claimed[system] = slot
		}
	}

	return batches
}
