// Package memory implements the domain repository ports with in-memory
// stores. The tracker is a single-session tool: no state outlives the
// process, so the repositories mirror the port surface of a database
// implementation without any driver behind it.
package memory

import (
	"context"
	"iter"
	"strconv"
	"sync"

	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

// firstStudentID is the identifier assigned to the first registration.
const firstStudentID = 10000

// StudentRepository is an in-memory implementation of student.Repository.
//
// It keeps students in registration order, maintains a unique-email
// index and owns the sequential identifier counter. The session is
// single-threaded; the mutex only guards against accidental concurrent
// use by future callers.
type StudentRepository struct {
	mu     sync.RWMutex
	byID   map[student.ID]*student.Student
	byMail map[student.Email]student.ID
	order  []student.ID // registration (insertion) order
	nextID int
}

// NewStudentRepository creates an empty repository with the identifier
// sequence starting at 10000.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		byID:   make(map[student.ID]*student.Student),
		byMail: make(map[student.Email]student.ID),
		order:  make([]student.ID, 0),
		nextID: firstStudentID,
	}
}

// Create registers the student and assigns the next sequential ID.
// Returns shared.ErrEmailTaken when the email already belongs to another
// student; a failed attempt does not consume an identifier.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byMail[s.Email]; taken {
		return shared.ErrEmailTaken
	}

	id := student.ID(strconv.Itoa(r.nextID))
	r.nextID++

	s.ID = id
	r.byID[id] = s
	r.byMail[s.Email] = id
	r.order = append(r.order, id)
	return nil
}

// GetByID returns the student with the given identifier.
// Non-numeric input and unknown identifiers both report
// shared.ErrStudentNotFound.
func (r *StudentRepository) GetByID(ctx context.Context, id student.ID) (*student.Student, error) {
	if !id.IsValid() {
		return nil, shared.ErrStudentNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrStudentNotFound
	}
	return s, nil
}

// All returns a lazy, restartable sequence of students in registration
// order. Each range over the sequence observes the repository state at
// the moment the iteration starts.
func (r *StudentRepository) All(ctx context.Context) iter.Seq[*student.Student] {
	return func(yield func(*student.Student) bool) {
		r.mu.RLock()
		ids := make([]student.ID, len(r.order))
		copy(ids, r.order)
		r.mu.RUnlock()

		for _, id := range ids {
			r.mu.RLock()
			s := r.byID[id]
			r.mu.RUnlock()
			if !yield(s) {
				return
			}
		}
	}
}

// Count returns the number of registered students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
