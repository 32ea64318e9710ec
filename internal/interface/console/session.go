// Package console implements the interactive command session of the
// Learning Progress Tracker. It owns line parsing, the text prompts and
// the mapping from typed core failures to user-facing messages; all
// tracking rules live in the application and domain layers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/progress-hub/learning-tracker/internal/application/command"
	"github.com/progress-hub/learning-tracker/internal/application/query"
	"github.com/progress-hub/learning-tracker/internal/domain/course"
	"github.com/progress-hub/learning-tracker/internal/domain/shared"
	"github.com/progress-hub/learning-tracker/internal/interface/console/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// Handlers bundles the application layer entry points the session routes to.
type Handlers struct {
	RegisterStudent      *command.RegisterStudentHandler
	ApplySubmission      *command.ApplySubmissionHandler
	DeliverNotifications *command.DeliverNotificationsHandler
	ListStudents         *query.ListStudentsHandler
	FindStudent          *query.FindStudentHandler
	GetRankings          *query.GetCourseRankingsHandler
	GetLeaderboard       *query.GetCourseLeaderboardHandler
}

// SessionConfig contains configuration for the session.
type SessionConfig struct {
	// In is the command input stream.
	In io.Reader

	// Out is the output stream for prompts and results.
	Out io.Writer

	// Logger for structured logging.
	Logger *slog.Logger

	// Handlers are the routed application handlers.
	Handlers Handlers
}

// Session is the interactive command loop. It processes one command to
// completion before reading the next; there is no background work.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
	h      Handlers
}

// NewSession creates a new console session.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		in:     bufio.NewScanner(cfg.In),
		out:    cfg.Out,
		logger: logger,
		h:      cfg.Handlers,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN LOOP
// ══════════════════════════════════════════════════════════════════════════════

// Run starts the main command loop and blocks until the operator exits
// or the input stream ends.
func (s *Session) Run(ctx context.Context) error {
	s.println("Learning Progress Tracker")

	for {
		input, ok := s.readLine(ctx)
		if !ok {
			return ctx.Err()
		}

		if strings.TrimSpace(input) == "" {
			s.println("No input.")
			continue
		}

		switch input {
		case "exit":
			s.println("Bye!")
			return nil
		case "back":
			s.println("Enter 'exit' to exit the program")
		case "add students":
			s.addStudents(ctx)
		case "list":
			s.listStudents(ctx)
		case "add points":
			s.addPoints(ctx)
		case "find":
			s.findStudent(ctx)
		case "statistics":
			s.statistics(ctx)
		case "notify":
			s.notify(ctx)
		default:
			s.println("Error: unknown command!")
		}
	}
}

// readLine reads the next input line. Returns false when the input
// stream ends or the context is cancelled.
func (s *Session) readLine(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

// ══════════════════════════════════════════════════════════════════════════════
// SUB-LOOPS
// ══════════════════════════════════════════════════════════════════════════════

// addStudents runs the registration sub-loop until 'back'.
func (s *Session) addStudents(ctx context.Context) {
	s.println("Enter student credentials or 'back' to return:")

	added := 0
	for {
		input, ok := s.readLine(ctx)
		if !ok || input == "back" {
			s.println(fmt.Sprintf("Total %d students have been added.", added))
			return
		}

		first, last, email, ok := splitCredentials(input)
		if !ok {
			s.println("Incorrect credentials.")
			continue
		}

		result, err := s.h.RegisterStudent.Handle(ctx, command.RegisterStudentCommand{
			FirstName: first,
			LastName:  last,
			Email:     email,
		})
		if err != nil {
			s.println(registrationMessage(err))
			continue
		}

		s.logger.Debug("student registered", "student_id", result.StudentID)
		added++
		s.println("The student has been added.")
	}
}

// splitCredentials tokenizes a credentials line: first name, a possibly
// multi-word last name and a trailing email.
func splitCredentials(input string) (first, last, email string, ok bool) {
	fields := strings.Fields(input)
	if len(fields) < 3 {
		return "", "", "", false
	}
	first = fields[0]
	email = fields[len(fields)-1]
	last = strings.Join(fields[1:len(fields)-1], " ")
	return first, last, email, true
}

// registrationMessage maps typed registration failures to prompts.
func registrationMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrInvalidFirstName):
		return "Incorrect first name."
	case errors.Is(err, shared.ErrInvalidLastName):
		return "Incorrect last name."
	case errors.Is(err, shared.ErrInvalidEmail):
		return "Incorrect email."
	case shared.IsDuplicateEmail(err):
		return "This email is already taken."
	default:
		return "Incorrect credentials."
	}
}

// listStudents prints the identifiers of all registered students.
func (s *Session) listStudents(ctx context.Context) {
	result, err := s.h.ListStudents.Handle(ctx, query.ListStudentsQuery{})
	if err != nil {
		s.logger.Error("list students failed", "error", err)
		return
	}
	if result.Total == 0 {
		s.println("No students found.")
		return
	}
	s.println("Students:")
	for _, id := range result.IDs {
		s.println(id.String())
	}
}

// addPoints runs the submission sub-loop until 'back'.
func (s *Session) addPoints(ctx context.Context) {
	s.println("Enter an id and points or 'back' to return:")

	for {
		input, ok := s.readLine(ctx)
		if !ok || input == "back" {
			return
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			s.println("Incorrect points format.")
			continue
		}

		// The student check comes first: a bad id wins over a bad format.
		id := fields[0]
		if _, err := s.h.FindStudent.Handle(ctx, query.FindStudentQuery{StudentID: id}); err != nil {
			s.println(fmt.Sprintf("No student is found for id=%s.", id))
			continue
		}

		scores, ok := parseScores(fields[1:])
		if !ok {
			s.println("Incorrect points format.")
			continue
		}

		if _, err := s.h.ApplySubmission.Handle(ctx, command.ApplySubmissionCommand{
			StudentID: id,
			Scores:    scores,
		}); err != nil {
			s.println("Incorrect points format.")
			continue
		}
		s.println("Points updated.")
	}
}

// parseScores parses exactly one non-negative integer per course.
func parseScores(tokens []string) ([course.Count]int, bool) {
	var scores [course.Count]int
	if len(tokens) != course.Count {
		return scores, false
	}
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil || value < 0 {
			return scores, false
		}
		scores[i] = value
	}
	return scores, true
}

// findStudent runs the lookup sub-loop until 'back'.
func (s *Session) findStudent(ctx context.Context) {
	s.println("Enter an id or 'back' to return:")

	for {
		input, ok := s.readLine(ctx)
		if !ok || input == "back" {
			return
		}

		result, err := s.h.FindStudent.Handle(ctx, query.FindStudentQuery{StudentID: input})
		if err != nil {
			s.println(fmt.Sprintf("No student is found for id=%s.", input))
			continue
		}
		s.println(presenter.StudentGrades(result))
	}
}

// statistics prints the course rankings and runs the per-course
// details sub-loop until 'back'.
func (s *Session) statistics(ctx context.Context) {
	s.println("Type the name of a course to see details or 'back' to quit")

	rankings, err := s.h.GetRankings.Handle(ctx, query.GetCourseRankingsQuery{})
	if err != nil {
		s.logger.Error("course rankings failed", "error", err)
		return
	}
	s.println(presenter.Rankings(rankings.Overview))

	for {
		input, ok := s.readLine(ctx)
		if !ok || input == "back" {
			return
		}

		board, err := s.h.GetLeaderboard.Handle(ctx, query.GetCourseLeaderboardQuery{Course: input})
		if err != nil {
			s.println("Unknown course.")
			continue
		}
		s.println(presenter.Leaderboard(board))
	}
}

// notify drains the pending notification queue. The delivery channel
// prints each notification; the session prints the batch summary.
func (s *Session) notify(ctx context.Context) {
	result, err := s.h.DeliverNotifications.Handle(ctx, command.DeliverNotificationsCommand{})
	if err != nil {
		s.logger.Error("notification delivery failed", "error", err)
		return
	}
	s.println(presenter.TotalNotified(result.StudentsNotified))
}
