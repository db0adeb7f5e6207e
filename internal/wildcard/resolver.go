package wildcard

import "sort"

// Value is the constraint for values stored in a Resolver: a pointer type
// that can absorb another value of the same type. Merge must be associative.
type Value[T any] interface {
	*T
	Merge(other *T)
}

// Factory creates an empty value. Values that embed resolvers of their own
// must build them on the given clock.
type Factory[T any] func(clock *Clock) *T

type wildSlot[T any] struct {
	pat Pattern
	val *T
}

type memoEntry[T any] struct {
	epoch uint64
	val   *T
}

// Resolver maps exact names and wildcard patterns to accumulating values.
type Resolver[T any, P Value[T]] struct {
	clock   *Clock
	factory Factory[T]

	literal map[string]*T
	wild    []wildSlot[T]
	wildIdx map[string]int

	memo map[string]memoEntry[T]

	// last access, will probably hit again
	lastName  string
	lastVal   *T
	lastEpoch uint64
	lastOK    bool
}

// NewResolver creates an empty resolver whose caches follow clock.
func NewResolver[T any, P Value[T]](clock *Clock, factory Factory[T]) *Resolver[T, P] {
	if clock == nil {
		panic("wildcard: NewResolver without clock")
	}
	if factory == nil {
		factory = func(*Clock) *T { return new(T) }
	}
	return &Resolver[T, P]{
		clock:   clock,
		factory: factory,
		literal: make(map[string]*T),
		wildIdx: make(map[string]int),
		memo:    make(map[string]memoEntry[T]),
	}
}

// Clock returns the clock the resolver's caches follow.
func (r *Resolver[T, P]) Clock() *Clock { return r.clock }

// Register returns the slot for pattern, creating it if needed. The caller is
// expected to mutate the slot, so the clock is advanced unconditionally.
func (r *Resolver[T, P]) Register(pattern string) *T {
	r.mustInit()
	r.clock.Tick()
	return r.slot(pattern)
}

func (r *Resolver[T, P]) slot(pattern string) *T {
	if !IsWildcard(pattern) {
		v, ok := r.literal[pattern]
		if !ok {
			v = r.factory(r.clock)
			r.literal[pattern] = v
		}
		return v
	}
	if i, ok := r.wildIdx[pattern]; ok {
		return r.wild[i].val
	}
	v := r.factory(r.clock)
	r.wildIdx[pattern] = len(r.wild)
	r.wild = append(r.wild, wildSlot[T]{pat: Compile(pattern), val: v})
	return v
}

// Resolve returns the union of every value whose pattern equals or matches
// name, or nil when nothing matches.
func (r *Resolver[T, P]) Resolve(name string) *T {
	r.mustInit()
	now := r.clock.Now()
	if r.lastOK && r.lastEpoch == now && r.lastName == name {
		return r.lastVal
	}
	var val *T
	if len(r.wild) == 0 {
		// Nothing to merge; the literal slot is the answer.
		val = r.literal[name]
	} else if e, ok := r.memo[name]; ok && e.epoch == now {
		val = e.val
	} else {
		val = r.materialize(name)
		r.memo[name] = memoEntry[T]{epoch: now, val: val}
	}
	r.lastName, r.lastVal, r.lastEpoch, r.lastOK = name, val, now, true
	return val
}

// materialize builds a detached value for name. Its nested resolvers run on a
// private clock: the value is never registered into, and it is discarded as a
// whole once the shared clock moves.
func (r *Resolver[T, P]) materialize(name string) *T {
	var out *T
	ensure := func() P {
		if out == nil {
			out = r.factory(NewClock())
		}
		return P(out)
	}
	if lit, ok := r.literal[name]; ok {
		ensure().Merge(lit)
	}
	for i := range r.wild {
		if r.wild[i].pat.Match(name) {
			ensure().Merge(r.wild[i].val)
		}
	}
	return out
}

// MergeFrom unions other into r: every literal and wildcard slot of other is
// merged into the slot with the same pattern in r. Wildcard order of r is
// kept; new patterns from other are appended in other's order.
func (r *Resolver[T, P]) MergeFrom(other *Resolver[T, P]) {
	r.mustInit()
	if other == nil {
		return
	}
	r.clock.Tick()
	for _, name := range other.literalNames() {
		P(r.slot(name)).Merge(other.literal[name])
	}
	for _, w := range other.wild {
		P(r.slot(w.pat.String())).Merge(w.val)
	}
}

// Len returns the number of registered patterns.
func (r *Resolver[T, P]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.literal) + len(r.wild)
}

// Each calls fn for every registered slot: literal names in sorted order,
// then wildcard patterns in registration order.
func (r *Resolver[T, P]) Each(fn func(pattern string, v *T)) {
	if r == nil {
		return
	}
	for _, name := range r.literalNames() {
		fn(name, r.literal[name])
	}
	for _, w := range r.wild {
		fn(w.pat.String(), w.val)
	}
}

// Patterns returns the registered patterns in Each order.
func (r *Resolver[T, P]) Patterns() []string {
	out := make([]string, 0, r.Len())
	r.Each(func(pattern string, _ *T) { out = append(out, pattern) })
	return out
}

func (r *Resolver[T, P]) literalNames() []string {
	names := make([]string, 0, len(r.literal))
	for name := range r.literal {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Resolver[T, P]) mustInit() {
	if r == nil || r.clock == nil || r.literal == nil {
		panic("wildcard: resolver used before NewResolver")
	}
}
