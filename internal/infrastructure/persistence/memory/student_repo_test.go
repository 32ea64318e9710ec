package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

func mustStudent(t *testing.T, email string) *student.Student {
	t.Helper()
	stud, err := student.New("John", "Doe", student.Email(email))
	require.NoError(t, err)
	return stud
}

func TestStudentRepository_SequentialIDs(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	first := mustStudent(t, "a@a.com")
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, student.ID("10000"), first.ID)

	second := mustStudent(t, "b@b.com")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, student.ID("10001"), second.ID)
}

func TestStudentRepository_DuplicateEmail(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, mustStudent(t, "john@doe.com")))

	err := repo.Create(ctx, mustStudent(t, "john@doe.com"))
	assert.True(t, shared.IsDuplicateEmail(err))

	// The failed attempt changed nothing and consumed no identifier.
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	next := mustStudent(t, "jane@doe.com")
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, student.ID("10001"), next.ID)
}

func TestStudentRepository_GetByID(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	stud := mustStudent(t, "john@doe.com")
	require.NoError(t, repo.Create(ctx, stud))

	found, err := repo.GetByID(ctx, "10000")
	require.NoError(t, err)
	assert.Same(t, stud, found)

	// Unknown and malformed identifiers both report "not found".
	_, err = repo.GetByID(ctx, "99999")
	assert.True(t, shared.IsNotFound(err))

	_, err = repo.GetByID(ctx, "not-a-number")
	assert.True(t, shared.IsNotFound(err))
}

func TestStudentRepository_AllIsOrderedAndRestartable(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	for _, email := range []string{"a@a.com", "b@b.com", "c@c.com"} {
		require.NoError(t, repo.Create(ctx, mustStudent(t, email)))
	}

	collect := func() []student.ID {
		ids := make([]student.ID, 0)
		for s := range repo.All(ctx) {
			ids = append(ids, s.ID)
		}
		return ids
	}

	want := []student.ID{"10000", "10001", "10002"}
	assert.Equal(t, want, collect())
	// The sequence restarts from the beginning on every range.
	assert.Equal(t, want, collect())

	// Early break is supported.
	for s := range repo.All(ctx) {
		assert.Equal(t, student.ID("10000"), s.ID)
		break
	}
}
