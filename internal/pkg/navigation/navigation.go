// Package navigation carries "go to this page and tell the user" side effects
// from services out to whatever presents them.
package navigation

import (
	"context"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Navigator is implemented by the presentation layer.
type Navigator interface {
	Redirect(path string)
	Notify(n Notification)
}

type ctxKey struct{}

// With attaches nav to ctx.
func With(ctx context.Context, nav Navigator) context.Context {
	return context.WithValue(ctx, ctxKey{}, nav)
}

// From returns the navigator attached to ctx, or one that drops everything.
func From(ctx context.Context) Navigator {
	if nav, ok := ctx.Value(ctxKey{}).(Navigator); ok && nav != nil {
		return nav
	}
	return discard{}
}

func Error(ctx context.Context, msg string) {
	From(ctx).Notify(Notification{Level: LevelError, Message: msg})
}

func Success(ctx context.Context, msg string) {
	From(ctx).Notify(Notification{Level: LevelSuccess, Message: msg})
}

type discard struct{}

func (discard) Redirect(string)     {}
func (discard) Notify(Notification) {}

// Recorder keeps the last redirect and every notification so an HTTP handler
// can put them into its response.
type Recorder struct {
	mu            sync.Mutex
	redirect      string
	notifications []Notification
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Redirect(path string) {
	r.mu.Lock()
	r.redirect = path
	r.mu.Unlock()
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	r.notifications = append(r.notifications, n)
	r.mu.Unlock()
}

func (r *Recorder) RedirectPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redirect
}

func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}
