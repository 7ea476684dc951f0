package engine

import (
	"sync"

	"github.com/verigraph/verigraph/traversal"
)

// defaultCapacity is the simulated memory pool when WithCapacity is not
// given: 4 GiB, in line with the device classes the suite targets.
const defaultCapacity = 4 << 30

// wordSize is the byte width of every element the engine stores.
const wordSize = 4

// Option configures a Service at construction.
type Option func(*service)

// WithCapacity sets the simulated memory capacity in bytes.
// Values below one word are ignored.
func WithCapacity(bytes uint64) Option {
	return func(s *service) {
		if bytes >= wordSize {
			s.capacity = bytes
			s.free = bytes
		}
	}
}

// New builds an in-memory traversal service.
func New(opts ...Option) traversal.Service {
	s := &service{capacity: defaultCapacity, free: defaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// service tracks the shared memory pool; descriptors debit and credit it.
type service struct {
	mu       sync.Mutex
	capacity uint64
	free     uint64
	closed   bool
}

// CreateGraph hands out a fresh descriptor owned by this service.
func (s *service) CreateGraph() (traversal.GraphDescr, traversal.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, traversal.StatusInvalidValue
	}
	return &graphDescr{svc: s}, traversal.StatusSuccess
}

// MemoryInfo samples the pool. Balanced debit/credit across calls is what
// keeps the stability harness's monotonicity check satisfied.
func (s *service) MemoryInfo() (free, total uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.free, s.capacity
}

// Close tears the service down; descriptors become invalid.
func (s *service) Close() traversal.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return traversal.StatusInvalidValue
	}
	s.closed = true
	return traversal.StatusSuccess
}

// alloc debits the pool; false when capacity is exhausted.
func (s *service) alloc(bytes uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes > s.free {
		return false
	}
	s.free -= bytes
	return true
}

// release credits the pool, never above capacity.
func (s *service) release(bytes uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.free += bytes
	if s.free > s.capacity {
		s.free = s.capacity
	}
}
