// Package dispatchertest provides subscriptions for testing code built on
// package dispatcher.
package dispatchertest

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/etchedjs/dispatcher/pkg/dispatcher"
)

var (
	_ dispatcher.Subscription = (*Recorder)(nil)
	_ dispatcher.Subscription = (*Failing)(nil)
	_ dispatcher.Subscription = (*MockSubscription)(nil)
)

// Recorder records every update it receives.
type Recorder struct {
	mu       sync.Mutex
	updates  []any
	contexts []context.Context
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Handle(ctx context.Context, update any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
	r.contexts = append(r.contexts, ctx)
	return nil
}

func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

// Updates returns the received updates in order.
func (r *Recorder) Updates() []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]any(nil), r.updates...)
}

// Contexts returns the contexts passed with each update.
func (r *Recorder) Contexts() []context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]context.Context(nil), r.contexts...)
}

// Last returns the most recent update, or nil.
func (r *Recorder) Last() any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updates) == 0 {
		return nil
	}
	return r.updates[len(r.updates)-1]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = nil
	r.contexts = nil
}

// Failing returns Err from every Handle call and counts the calls.
type Failing struct {
	Err error

	mu    sync.Mutex
	calls int
}

func NewFailing(err error) *Failing {
	return &Failing{Err: err}
}

func (f *Failing) Handle(context.Context, any) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.Err
}

func (f *Failing) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Sequence hands out named subscriptions that append their name to a shared
// log when invoked, which makes delivery order observable.
type Sequence struct {
	mu  sync.Mutex
	log []string
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Named returns a new subscription that logs name into s.
func (s *Sequence) Named(name string) dispatcher.Subscription {
	return &named{seq: s, name: name}
}

// Order returns the logged names in invocation order.
func (s *Sequence) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.log...)
}

type named struct {
	seq  *Sequence
	name string
}

func (n *named) Handle(context.Context, any) error {
	n.seq.mu.Lock()
	n.seq.log = append(n.seq.log, n.name)
	n.seq.mu.Unlock()
	return nil
}

// MockSubscription is a testify mock of dispatcher.Subscription.
type MockSubscription struct {
	mock.Mock
}

func (m *MockSubscription) Handle(ctx context.Context, update any) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}
