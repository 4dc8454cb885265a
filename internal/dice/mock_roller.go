package dice

import (
	"sync"

	"github.com/draftwright/charwizard/internal/errors"
)

// MockRoller implements Roller with predetermined die faces for testing
type MockRoller struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewMockRoller creates a new mock dice roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// SetFaces queues die faces to be consumed in order by subsequent rolls
func (m *MockRoller) SetFaces(faces []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = faces
	m.next = 0
}

// Reset clears all queued faces
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = nil
	m.next = 0
}

func (m *MockRoller) take(count int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.next+count > len(m.faces) {
		return nil, errors.Internalf("mock roller exhausted: need %d faces, have %d", count, len(m.faces)-m.next)
	}
	taken := m.faces[m.next : m.next+count]
	m.next += count
	return taken, nil
}

func (m *MockRoller) Roll(count, sides int) (*RollResult, error) {
	if err := validateRoll(count, sides); err != nil {
		return nil, err
	}

	faces, err := m.take(count)
	if err != nil {
		return nil, err
	}

	result := &RollResult{Rolls: make([]int, count)}
	copy(result.Rolls, faces)
	for _, die := range result.Rolls {
		result.Total += die
	}
	return result, nil
}

func (m *MockRoller) RollKeepHighest(count, sides, keep int) (*RollResult, error) {
	if keep <= 0 || keep > count {
		return nil, errors.InvalidArgumentf("keep must be in [1,%d], got %d", count, keep)
	}

	rolled, err := m.Roll(count, sides)
	if err != nil {
		return nil, err
	}
	return keepHighest(rolled.Rolls, keep), nil
}
