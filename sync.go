package nxncube

import "sync"

// SyncCube guards a Cube with a mutex so turns and queries from several
// goroutines are serialized. Each turn runs to completion under the lock.
type SyncCube struct {
	mu   sync.Mutex
	cube *Cube
}

// NewSyncCube wraps c. The caller must not use c directly afterwards.
func NewSyncCube(c *Cube) *SyncCube {
	return &SyncCube{cube: c}
}

// RotateSide runs Cube.RotateSide under the lock.
func (s *SyncCube) RotateSide(side Side, layer, degree int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cube.RotateSide(side, layer, degree)
}

// Apply runs Cube.Apply under the lock, so the whole sequence is atomic
// with respect to other callers.
func (s *SyncCube) Apply(turns ...Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cube.Apply(turns...)
}

// Stickers runs Cube.Stickers under the lock.
func (s *SyncCube) Stickers(layer, row, col int) map[Side]Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cube.Stickers(layer, row, col)
}

// Reset runs Cube.Reset under the lock.
func (s *SyncCube) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cube.Reset()
}

// Snapshot returns a deep copy taken under the lock.
func (s *SyncCube) Snapshot() *Cube {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cube.Clone()
}
