// Package api is the data fetch boundary. It resolves logical endpoints to
// record collections, served from bundled fixtures or from an HTTP backend,
// and validates every record before handing it to the rest of the app.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/hy4ri/campus-tui/internal/todo"
)

// Endpoints understood by every source.
const (
	EndpointCourses  = "/api/classroom/courses"
	EndpointProjects = "/api/projects"
	EndpointEvents   = "/api/events"
	EndpointTodos    = "/api/todos"
)

// DefaultLatency is the artificial delay of the fixture source.
const DefaultLatency = 500 * time.Millisecond

// Source resolves an endpoint to the raw JSON array of its records and
// accepts JSON submissions.
type Source interface {
	Fetch(ctx context.Context, endpoint string) (json.RawMessage, error)
	Post(ctx context.Context, endpoint string, body []byte) (json.RawMessage, error)
}

// Response is the result of a Get.
type Response struct {
	Endpoint string
	Data     json.RawMessage
}

// Client is the fetch boundary used by the TUI.
type Client struct {
	source Source
	logger *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSource replaces the default fixture source.
func WithSource(s Source) Option {
	return func(c *Client) {
		c.source = s
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client backed by the bundled fixtures unless a
// source is given.
func NewClient(opts ...Option) *Client {
	c := &Client{
		source: NewFixtureSource(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches the raw collection behind endpoint.
func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	start := time.Now()
	data, err := c.source.Fetch(ctx, endpoint)
	if err != nil {
		c.logger.Printf("GET %s failed after %v: %v", endpoint, time.Since(start), err)
		return nil, err
	}
	c.logger.Printf("GET %s ok (%d bytes, %v)", endpoint, len(data), time.Since(start))
	return &Response{Endpoint: endpoint, Data: data}, nil
}

// record is implemented by every collection element.
type record interface {
	Validate() error
}

// getCollection fetches and decodes endpoint, rejecting the whole
// collection if any record is malformed.
func getCollection[T record](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(resp.Data, &raw); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Index: -1, Err: err}
	}

	items := make([]T, 0, len(raw))
	for i, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Index: i, Err: err}
		}
		if err := item.Validate(); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Index: i, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

// GetTasks returns the task collection. Ids must be unique.
func (c *Client) GetTasks(ctx context.Context) ([]todo.Task, error) {
	tasks, err := getCollection[todo.Task](ctx, c, EndpointTodos)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	seen := make(map[int]bool, len(tasks))
	for i, t := range tasks {
		if seen[t.ID] {
			err := &DecodeError{Endpoint: EndpointTodos, Index: i, Err: fmt.Errorf("duplicate task id %d", t.ID)}
			return nil, fmt.Errorf("failed to get tasks: %w", err)
		}
		seen[t.ID] = true
		if tasks[i].Tags == nil {
			tasks[i].Tags = []string{}
		}
	}
	return tasks, nil
}

// GetCourses returns the course catalogue.
func (c *Client) GetCourses(ctx context.Context) ([]Course, error) {
	courses, err := getCollection[Course](ctx, c, EndpointCourses)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// GetProjects returns the project board.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	projects, err := getCollection[Project](ctx, c, EndpointProjects)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// GetEvents returns the event calendar.
func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	events, err := getCollection[Event](ctx, c, EndpointEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}
