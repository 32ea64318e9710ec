package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/student"
)

func newStudent(t *testing.T, id, email string) *student.Student {
	t.Helper()
	stud, err := student.New("John", "Doe", student.Email(email))
	require.NoError(t, err)
	stud.ID = student.ID(id)
	return stud
}

func newCourse(t *testing.T, id course.ID, credits int) *course.Course {
	t.Helper()
	c, err := course.New(course.Definition{ID: id, RequiredCredits: credits})
	require.NoError(t, err)
	return c
}

// recordingChannel captures delivered notifications in order.
type recordingChannel struct {
	delivered []*Notification
}

func (c *recordingChannel) Deliver(ctx context.Context, n *Notification) error {
	c.delivered = append(c.delivered, n)
	return nil
}

func (c *recordingChannel) Type() ChannelType {
	return ChannelTypeConsole
}

func TestPipeline_OfferDeduplicates(t *testing.T) {
	p := NewPipeline(PipelineConfig{})
	stud := newStudent(t, "10000", "john@doe.com")
	java := newCourse(t, course.Java, 600)

	n, created := p.Offer(stud, java)
	require.True(t, created)
	assert.Equal(t, StatusPending, n.Status)
	assert.NotEmpty(t, n.ID)

	// Same (student, course) pair is rejected while pending.
	_, created = p.Offer(stud, java)
	assert.False(t, created)
	assert.Equal(t, 1, p.PendingCount())

	// A different course for the same student is a new notification.
	dsa := newCourse(t, course.DSA, 400)
	_, created = p.Offer(stud, dsa)
	assert.True(t, created)
	assert.Equal(t, 2, p.PendingCount())
}

func TestPipeline_DedupSurvivesDelivery(t *testing.T) {
	p := NewPipeline(PipelineConfig{})
	stud := newStudent(t, "10000", "john@doe.com")
	java := newCourse(t, course.Java, 600)

	_, created := p.Offer(stud, java)
	require.True(t, created)

	_, err := p.DeliverAll(context.Background(), nil)
	require.NoError(t, err)

	// Delivered history still blocks re-creation.
	_, created = p.Offer(stud, java)
	assert.False(t, created)
	assert.Zero(t, p.PendingCount())
	assert.Equal(t, 1, p.DeliveredCount())
	assert.True(t, p.Seen(Key{StudentID: stud.ID, CourseID: course.Java}))
}

func TestPipeline_DeliverAllFIFO(t *testing.T) {
	p := NewPipeline(PipelineConfig{})
	java := newCourse(t, course.Java, 600)
	dsa := newCourse(t, course.DSA, 400)

	first := newStudent(t, "10000", "a@a.com")
	second := newStudent(t, "10001", "b@b.com")

	p.Offer(first, java)
	p.Offer(second, java)
	p.Offer(first, dsa)

	ch := &recordingChannel{}
	report, err := p.DeliverAll(context.Background(), ch)
	require.NoError(t, err)

	require.Len(t, ch.delivered, 3)
	assert.Equal(t, Key{StudentID: "10000", CourseID: course.Java}, ch.delivered[0].Key())
	assert.Equal(t, Key{StudentID: "10001", CourseID: course.Java}, ch.delivered[1].Key())
	assert.Equal(t, Key{StudentID: "10000", CourseID: course.DSA}, ch.delivered[2].Key())

	// A student finishing two courses in one batch counts once.
	assert.Equal(t, 2, report.DistinctStudents)

	for _, n := range report.Delivered {
		assert.Equal(t, StatusDelivered, n.Status)
		assert.False(t, n.DeliveredAt.IsZero())
	}
}

func TestPipeline_EmptyDrain(t *testing.T) {
	p := NewPipeline(PipelineConfig{})

	report, err := p.DeliverAll(context.Background(), &recordingChannel{})
	require.NoError(t, err)
	assert.Zero(t, report.DistinctStudents)
	assert.Empty(t, report.Delivered)

	// Draining twice in a row reports zero again.
	report, err = p.DeliverAll(context.Background(), &recordingChannel{})
	require.NoError(t, err)
	assert.Zero(t, report.DistinctStudents)
	assert.Zero(t, p.DeliveredCount())
}

func TestPipeline_CustomIDGenerator(t *testing.T) {
	seq := 0
	p := NewPipeline(PipelineConfig{NewID: func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}})

	n, created := p.Offer(newStudent(t, "10000", "a@a.com"), newCourse(t, course.Java, 600))
	require.True(t, created)
	assert.Equal(t, "id-1", n.ID)
}

func TestNotification_Equal(t *testing.T) {
	java := newCourse(t, course.Java, 600)
	stud := newStudent(t, "10000", "a@a.com")

	a := newNotification("x", stud, java)
	b := newNotification("y", stud, java)

	// Value equality: same student and course, IDs do not matter.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))

	other := newNotification("z", newStudent(t, "10001", "b@b.com"), java)
	assert.False(t, a.Equal(other))
}
