package octree

import "sync"

// SyncTree guards a Tree with a single RWMutex. Lookups share the read lock;
// anything that links, unlinks or moves the root takes the write lock.
type SyncTree[T Number] struct {
	mu   sync.RWMutex
	tree *Tree[T]
}

// NewSync returns an empty SyncTree.
func NewSync[T Number]() *SyncTree[T] {
	return &SyncTree[T]{tree: New[T]()}
}

// Init bulk-loads points under the write lock; see Tree.Init.
func (s *SyncTree[T]) Init(points []Point[T], cmp Comparator[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Init(points, cmp)
}

// Insert adds p under the write lock.
func (s *SyncTree[T]) Insert(p Point[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Insert(p)
}

// Find searches under the read lock and returns the matched point by value,
// since the NodeID may be recycled once the lock is dropped.
func (s *SyncTree[T]) Find(q Point[T], tol T) (Point[T], int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ops := s.tree.Find(q, tol)
	p, ok := s.tree.Point(id)

	return p, ops, ok
}

// Count returns the number of live nodes under the read lock.
func (s *SyncTree[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Count()
}

// Release tears the tree down under the write lock.
func (s *SyncTree[T]) Release() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Release()
}

// Reset drops all nodes under the write lock.
func (s *SyncTree[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Reset()
}
