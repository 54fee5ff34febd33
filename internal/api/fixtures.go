package api

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"
	"time"
)

//go:embed data/*.json
var bundled embed.FS

// fixture locates the collection of one endpoint: the file holding it and
// the top-level key the array lives under.
type fixture struct {
	file string
	key  string
}

var fixtures = map[string]fixture{
	EndpointCourses:  {file: "courses.json", key: "courses"},
	EndpointProjects: {file: "projects.json", key: "projects"},
	EndpointEvents:   {file: "events.json", key: "events"},
	EndpointTodos:    {file: "tasks.json", key: "tasks"},
}

// FixtureSource serves static collections after a fixed delay.
type FixtureSource struct {
	files   fs.FS
	latency time.Duration

	mu        sync.Mutex
	failures  map[string]error
	submitted map[string][]json.RawMessage
}

// FixtureOption configures a FixtureSource.
type FixtureOption func(*FixtureSource)

// WithFixtures reads collections from files instead of the bundled data.
// The file system must hold courses.json, projects.json, events.json and
// tasks.json at its root.
func WithFixtures(files fs.FS) FixtureOption {
	return func(s *FixtureSource) {
		s.files = files
	}
}

// WithLatency sets the artificial delay before each response.
func WithLatency(d time.Duration) FixtureOption {
	return func(s *FixtureSource) {
		s.latency = d
	}
}

// NewFixtureSource returns a source backed by the bundled data.
func NewFixtureSource(opts ...FixtureOption) *FixtureSource {
	sub, _ := fs.Sub(bundled, "data")
	s := &FixtureSource{
		files:    sub,
		latency:  DefaultLatency,
		failures:  make(map[string]error),
		submitted: make(map[string][]json.RawMessage),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailNext makes the next fetch of endpoint return err, simulating a
// network failure.
func (s *FixtureSource) FailNext(endpoint string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[endpoint] = err
}

// wait sleeps for the latency and then pops any failure queued for endpoint.
func (s *FixtureSource) wait(ctx context.Context, endpoint string) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	injected, ok := s.failures[endpoint]
	delete(s.failures, endpoint)
	if ok {
		return injected
	}
	return nil
}

// Fetch implements Source.
func (s *FixtureSource) Fetch(ctx context.Context, endpoint string) (json.RawMessage, error) {
	if err := s.wait(ctx, endpoint); err != nil {
		return nil, err
	}

	fx, ok := fixtures[endpoint]
	if !ok {
		return nil, notFound(endpoint)
	}

	data, err := fs.ReadFile(s.files, fx.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", fx.file, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Index: -1, Err: err}
	}
	collection, ok := doc[fx.key]
	if !ok {
		return nil, &DecodeError{Endpoint: endpoint, Index: -1, Err: fmt.Errorf("missing %q collection", fx.key)}
	}
	return collection, nil
}

// Post implements Source. Only applications are accepted; they are kept in
// memory and can be read back with Submitted.
func (s *FixtureSource) Post(ctx context.Context, endpoint string, body []byte) (json.RawMessage, error) {
	if err := s.wait(ctx, endpoint); err != nil {
		return nil, err
	}
	if endpoint != EndpointApplications {
		return nil, notFound(endpoint)
	}
	if !json.Valid(body) {
		return nil, &APIError{StatusCode: 400, Endpoint: endpoint, Message: "body is not JSON"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted[endpoint] = append(s.submitted[endpoint], json.RawMessage(body))
	return json.RawMessage(fmt.Sprintf(`{"id":%d}`, len(s.submitted[endpoint]))), nil
}

// Submitted returns the bodies posted to endpoint so far.
func (s *FixtureSource) Submitted(endpoint string) []json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]json.RawMessage(nil), s.submitted[endpoint]...)
}
