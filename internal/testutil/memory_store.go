// Package testutil provides in-memory collaborators for tests.
package testutil

import (
	"context"
	"sync"
)

type memCourse struct {
	credit   int64
	required bool
}

type memLink struct {
	studentID string
	targetID  string
}

// MemoryStore is an in-memory stand-in for the curriculum store. It answers
// the eligibility aggregate queries with the same join and counting rules as
// the SQL repositories: enrollments whose course is unknown are skipped, and
// duplicate rows are counted individually.
type MemoryStore struct {
	mu             sync.Mutex
	courses        map[string]memCourse
	enrollments    []memLink
	participations []memLink
	attendances    []memLink

	// Err, when set, is returned by every aggregate query.
	Err error
	// Calls counts aggregate queries served.
	Calls int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{courses: make(map[string]memCourse)}
}

// AddCourse registers (or replaces) a course.
func (m *MemoryStore) AddCourse(courseID string, credit int64, required bool) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courses[courseID] = memCourse{credit: credit, required: required}
	return m
}

// Enroll records a completed course for a student.
func (m *MemoryStore) Enroll(studentID, courseID string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enrollments = append(m.enrollments, memLink{studentID, courseID})
	return m
}

// Participate records one program participation for a student.
func (m *MemoryStore) Participate(studentID, programID string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.participations = append(m.participations, memLink{studentID, programID})
	return m
}

// Attend records one exchange attendance for a student.
func (m *MemoryStore) Attend(studentID, exchangeID string) *MemoryStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendances = append(m.attendances, memLink{studentID, exchangeID})
	return m
}

func (m *MemoryStore) SumCompletedCredit(_ context.Context, studentID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	var total int64
	for _, e := range m.enrollments {
		if c, ok := m.courses[e.targetID]; ok && e.studentID == studentID {
			total += c.credit
		}
	}
	return total, nil
}

func (m *MemoryStore) CountCompletedRequiredCourses(_ context.Context, studentID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, e := range m.enrollments {
		if c, ok := m.courses[e.targetID]; ok && c.required && e.studentID == studentID {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) CountProgramParticipations(_ context.Context, studentID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	return countFor(m.participations, studentID), nil
}

func (m *MemoryStore) CountExchangeAttendances(_ context.Context, studentID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	return countFor(m.attendances, studentID), nil
}

func countFor(links []memLink, studentID string) int64 {
	var n int64
	for _, l := range links {
		if l.studentID == studentID {
			n++
		}
	}
	return n
}
