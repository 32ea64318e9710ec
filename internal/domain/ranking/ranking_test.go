package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/domain/course"
)

func TestBuildOverview_FreshCatalog(t *testing.T) {
	o := BuildOverview(course.DefaultCatalog())

	// No submissions system-wide: all six fields are not applicable.
	for _, r := range []Result{
		o.MostPopular, o.LeastPopular,
		o.HighestActivity, o.LowestActivity,
		o.Easiest, o.Hardest,
	} {
		assert.Equal(t, "n/a", r.Render())
	}
}

func TestBuildOverview_SingleActiveCourse(t *testing.T) {
	cat := course.DefaultCatalog()
	cat.Enroll(course.Java, "10000")
	cat.AddActivity(course.Java, 8)

	o := BuildOverview(cat)

	assert.Equal(t, "Java", o.MostPopular.Render())
	assert.Equal(t, "Java", o.HighestActivity.Render())
	assert.Equal(t, "Java", o.Easiest.Render())

	// The minimum-side groups consist of courses without any history.
	assert.Equal(t, "n/a", o.LeastPopular.Render())
	assert.Equal(t, "n/a", o.LowestActivity.Render())
	assert.Equal(t, "n/a", o.Hardest.Render())
}

func TestBuildOverview_TieGroupsInCatalogOrder(t *testing.T) {
	cat := course.DefaultCatalog()

	// DSA leads on both metrics; the remaining three tie at the
	// minimum and render in catalog order.
	cat.Enroll(course.Java, "10000")
	cat.AddActivity(course.Java, 10)
	cat.Enroll(course.DSA, "10001")
	cat.AddActivity(course.DSA, 4)
	cat.Enroll(course.DSA, "10002")
	cat.AddActivity(course.DSA, 4)
	cat.Enroll(course.Databases, "10003")
	cat.AddActivity(course.Databases, 10)
	cat.Enroll(course.Spring, "10000")
	cat.AddActivity(course.Spring, 10)

	o := BuildOverview(cat)

	assert.Equal(t, "DSA", o.MostPopular.Render())
	assert.Equal(t, "Java, Databases, Spring", o.LeastPopular.Render())
	assert.Equal(t, "DSA", o.HighestActivity.Render())
	assert.Equal(t, "Java, Databases, Spring", o.LowestActivity.Render())
	assert.Equal(t, "Java, Databases, Spring", o.Easiest.Render())
	assert.Equal(t, "DSA", o.Hardest.Render())
}

func TestBuildOverview_FullTieReportsLeastAsNotApplicable(t *testing.T) {
	cat := course.DefaultCatalog()
	for _, id := range course.IDs() {
		cat.Enroll(id, "10000")
		cat.AddActivity(id, 5)
	}

	o := BuildOverview(cat)

	// One tie group spans the whole catalog: the minimum side would
	// render the identical line, so it reports n/a instead.
	assert.Equal(t, "Java, DSA, Databases, Spring", o.MostPopular.Render())
	assert.Equal(t, "n/a", o.LeastPopular.Render())
	assert.Equal(t, "Java, DSA, Databases, Spring", o.HighestActivity.Render())
	assert.Equal(t, "n/a", o.LowestActivity.Render())
	assert.Equal(t, "Java, DSA, Databases, Spring", o.Easiest.Render())
	assert.Equal(t, "n/a", o.Hardest.Render())
}

func TestBuildOverview_DifficultyUsesAverageGrade(t *testing.T) {
	cat := course.DefaultCatalog()

	// Java: average 10, DSA: average 4, both with two submissions.
	cat.Enroll(course.Java, "10000")
	cat.AddActivity(course.Java, 10)
	cat.AddActivity(course.Java, 10)
	cat.Enroll(course.DSA, "10000")
	cat.AddActivity(course.DSA, 4)
	cat.AddActivity(course.DSA, 4)
	cat.Enroll(course.Databases, "10000")
	cat.AddActivity(course.Databases, 7)
	cat.AddActivity(course.Databases, 7)
	cat.Enroll(course.Spring, "10000")
	cat.AddActivity(course.Spring, 7)
	cat.AddActivity(course.Spring, 7)

	o := BuildOverview(cat)

	assert.Equal(t, "Java", o.Easiest.Render())
	assert.Equal(t, "DSA", o.Hardest.Render())
	require.True(t, o.Hardest.Applicable)
	assert.Equal(t, []course.ID{course.DSA}, o.Hardest.Courses)
}

func TestResult_Render(t *testing.T) {
	assert.Equal(t, "n/a", NotApplicable().Render())
	assert.Equal(t, "n/a", Result{Applicable: true}.Render())

	r := Result{Applicable: true, Courses: []course.ID{course.Java, course.Databases}}
	assert.Equal(t, "Java, Databases", r.Render())
}
