package forms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

var (
	ErrRejected = errors.New("forms endpoint rejected submission")
)

// Gateway posts submissions to a third-party forms endpoint. Each call is attempted
// exactly once; there are no retries.
type Gateway struct {
	endpoint string
	timeout  time.Duration
}

func NewGateway(endpoint string, timeout time.Duration) *Gateway {
	return &Gateway{endpoint: endpoint, timeout: timeout}
}

// Submit blocks until the endpoint answers. A transport failure or a non-2xx status
// is returned as an error.
func (g *Gateway) Submit(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := g.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	a := fiber.Post(g.endpoint)
	a.JSONEncoder(json.Marshal)
	a.JSON(s.Payload())
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if err := a.Parse(); err != nil {
		return fmt.Errorf("forms: build request: %w", err)
	}

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		log.Printf("[forms] %q failed: %v", s.Subject(), errs[0])
		return fmt.Errorf("forms: post %q: %w", s.Subject(), errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		log.Printf("[forms] %q rejected: status=%d body=%s", s.Subject(), code, truncate(body, 200))
		return fmt.Errorf("%w: status %d", ErrRejected, code)
	}
	log.Printf("[forms] %q delivered", s.Subject())
	return nil
}

// Task is the handle of an asynchronous submission.
type Task struct {
	done chan struct{}
	err  error
}

// Wait blocks until the submission finishes and returns its result.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Go starts Submit in the background and returns immediately.
func (g *Gateway) Go(ctx context.Context, s Submission) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = g.Submit(ctx, s)
	}()
	return t
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
