package sdp

// registry maps in-flight message keys to their assemblers. A fragment for
// an unseen key creates a new assembler sized to the message length in the
// fragment's header; a completing assembler is retired immediately. Keys
// assemble fully independently, so arrival order across keys is irrelevant.
//
// An assembler that never completes is retained indefinitely unless
// maxPending is set, in which case the oldest incomplete assembler is
// evicted to make room (the eviction is reported through onEvict).
type registry struct {
	assemblers map[uint8]*assembler
	order      []uint8 // creation order, for eviction
	maxPending int     // 0 = unbounded

	onComplete func(key uint8, data []byte)
	onEvict    func(key uint8)
}

func newRegistry(maxPending int, onComplete func(key uint8, data []byte), onEvict func(key uint8)) *registry {
	return &registry{
		assemblers: make(map[uint8]*assembler),
		maxPending: maxPending,
		onComplete: onComplete,
		onEvict:    onEvict,
	}
}

// route inserts one decoded datagram into the assembler for its key,
// creating the assembler if this is the first fragment seen for the key.
func (r *registry) route(d Datagram) error {
	key := d.Header.Key
	a, ok := r.assemblers[key]
	if !ok {
		a = newAssembler(int(d.Header.MessageLength), func(data []byte) {
			r.onComplete(key, data)
		})
		r.evictIfFull()
		r.assemblers[key] = a
		r.order = append(r.order, key)
	}
	if err := a.insert(d.Payload, int(d.Header.Offset)); err != nil {
		return err
	}
	if a.complete() {
		r.remove(key)
	}
	return nil
}

// pending returns the number of in-flight assemblers.
func (r *registry) pending() int {
	return len(r.assemblers)
}

func (r *registry) remove(key uint8) {
	delete(r.assemblers, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *registry) evictIfFull() {
	if r.maxPending <= 0 || len(r.assemblers) < r.maxPending {
		return
	}
	oldest := r.order[0]
	r.remove(oldest)
	if r.onEvict != nil {
		r.onEvict(oldest)
	}
}
