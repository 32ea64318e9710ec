package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progress-hub/learning-tracker/internal/application/command"
	"github.com/progress-hub/learning-tracker/internal/application/query"
	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/infrastructure/persistence/memory"
)

// runSession wires a fully in-memory tracker and feeds it a scripted
// line sequence, returning everything it printed.
func runSession(t *testing.T, lines ...string) string {
	t.Helper()

	repo := memory.NewStudentRepository()
	catalog := course.DefaultCatalog()
	pipeline := notification.NewPipeline(notification.PipelineConfig{})

	var out bytes.Buffer
	session := NewSession(SessionConfig{
		In:     strings.NewReader(strings.Join(lines, "\n") + "\n"),
		Out:    &out,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Handlers: Handlers{
			RegisterStudent:      command.NewRegisterStudentHandler(repo, nil),
			ApplySubmission:      command.NewApplySubmissionHandler(repo, catalog, pipeline, nil),
			DeliverNotifications: command.NewDeliverNotificationsHandler(pipeline, NewChannel(&out), nil),
			ListStudents:         query.NewListStudentsHandler(repo),
			FindStudent:          query.NewFindStudentHandler(repo),
			GetRankings:          query.NewGetCourseRankingsHandler(catalog),
			GetLeaderboard:       query.NewGetCourseLeaderboardHandler(catalog, repo),
		},
	})

	require.NoError(t, session.Run(context.Background()))
	return out.String()
}

func TestSession_FullTranscript(t *testing.T) {
	output := runSession(t,
		"",
		"hello",
		"back",
		"add students",
		"John Doe johnd@email.net",
		"Jane Spark jane@yahoo.com",
		"help",
		"back",
		"list",
		"add points",
		"10000 600 400 0 0",
		"10001 5 0 0 0",
		"10003 1 1 1 1",
		"10000 1 2 3",
		"back",
		"find",
		"10000",
		"back",
		"statistics",
		"java",
		"swing",
		"back",
		"notify",
		"notify",
		"exit",
	)

	g := goldie.New(t)
	g.Assert(t, "session", []byte(output))
}

func TestSession_ExitImmediately(t *testing.T) {
	output := runSession(t, "exit")
	assert.Equal(t, "Learning Progress Tracker\nBye!\n", output)
}

func TestSession_RegistrationMessages(t *testing.T) {
	output := runSession(t,
		"add students",
		"John Doe johnd@email.net",
		"Jane Doe johnd@email.net",
		"J. Doe name@domain.com",
		"John D--oe name@domain.com",
		"John Doe broken@email",
		"back",
		"exit",
	)

	assert.Contains(t, output, "The student has been added.")
	assert.Contains(t, output, "This email is already taken.")
	assert.Contains(t, output, "Incorrect first name.")
	assert.Contains(t, output, "Incorrect last name.")
	assert.Contains(t, output, "Incorrect email.")
	assert.Contains(t, output, "Total 1 students have been added.")
}

func TestSession_EndOfInputStopsLoop(t *testing.T) {
	// The stream ends inside a sub-loop: the loop closes its tally and
	// the session winds down without an explicit exit.
	output := runSession(t,
		"add students",
		"John Doe johnd@email.net",
	)

	assert.Contains(t, output, "Total 1 students have been added.")
	assert.NotContains(t, output, "Bye!")
}
