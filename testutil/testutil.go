// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"ballotbox/auth"
	"ballotbox/cliparse"
	"ballotbox/election"
)

// TestPassword is the password every fixture person is registered with.
const TestPassword = "hunter2"

// Directory is an in-memory election.PersonDirectory for tests.
type Directory struct {
	people map[string]*election.Person
}

// NewDirectory builds a directory holding the given people.
func NewDirectory(people ...*election.Person) *Directory {
	d := &Directory{people: make(map[string]*election.Person, len(people))}
	for _, p := range people {
		d.people[p.SSN] = p
	}
	return d
}

// Add registers one more person.
func (d *Directory) Add(p *election.Person) {
	d.people[p.SSN] = p
}

func (d *Directory) FindByID(ssn string) (*election.Person, error) {
	return d.people[ssn], nil
}

func (d *Directory) FindAll() ([]*election.Person, error) {
	res := make([]*election.Person, 0, len(d.people))
	for _, p := range d.people {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SSN < res[j].SSN })
	return res, nil
}

// MakePerson builds an enabled fixture person of the given age, registered
// with TestPassword.
func MakePerson(ssn string, age int) *election.Person {
	return &election.Person{
		SSN:        ssn,
		FirstName:  "Test",
		LastName:   ssn,
		BirthDate:  time.Now().AddDate(-age, 0, -1),
		BirthPlace: "Testville",
		Enabled:    true,
		PwHash:     auth.HashPassword(TestPassword),
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4270,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		TokenSalt:    "test-token-salt",
	}
}

// AuthHeaders returns the X-Auth-* headers for the given person.
func AuthHeaders(ssn string, cfg cliparse.Config) map[string]string {
	return map[string]string{
		"X-Auth-SSN":   ssn,
		"X-Auth-Token": auth.GenerateToken(ssn, cfg.TokenSalt),
	}
}

// OpenParams builds session parameters whose window is currently open,
// holding copies of the given papers.
func OpenParams(t *testing.T, papers ...*election.VotingPaper) *election.SessionParameters {
	t.Helper()
	params := election.NewSessionParameters()
	params.SetStart(time.Now().Add(-time.Hour))
	params.SetEnd(time.Now().Add(24 * time.Hour))
	for _, p := range papers {
		if err := params.AddPaper(p); err != nil {
			t.Fatalf("Failed to add paper: %v", err)
		}
	}
	return params
}

// StartSession initializes a session on the board, marks it ready and has
// every guarantor approve, leaving it running if the window is open.
func StartSession(t *testing.T, board *election.Board, params *election.SessionParameters, guarantors []*election.Person) *election.Session {
	t.Helper()
	s, err := board.InitializeSession(params, guarantors)
	if err != nil {
		t.Fatalf("Failed to initialize session: %v", err)
	}
	s.SetReady()
	for _, g := range guarantors {
		if err := s.Approve(g); err != nil {
			t.Fatalf("Failed to approve session: %v", err)
		}
	}
	return s
}

// MustChoice builds a Choice or fails the test.
func MustChoice(t *testing.T, name string) election.Choice {
	t.Helper()
	c, err := election.NewChoice(name)
	if err != nil {
		t.Fatalf("Failed to build choice %q: %v", name, err)
	}
	return c
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
