// Package observe carries the extension points every write and read operation reports to.
package observe

import (
	"context"
	"log/slog"

	"github.com/Spok95/stone-inventory/internal/errs"
)

// Observer is invoked before validation, after a successful mutation and on any error.
type Observer interface {
	BeforeValidate(ctx context.Context, op string, attrs ...any)
	AfterMutation(ctx context.Context, op string, id string, attrs ...any)
	OnError(ctx context.Context, op string, err error)
}

type Nop struct{}

func (Nop) BeforeValidate(context.Context, string, ...any)        {}
func (Nop) AfterMutation(context.Context, string, string, ...any) {}
func (Nop) OnError(context.Context, string, error)                {}

// Log writes each hook as a structured slog line.
type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log { return &Log{log: log} }

func (l *Log) BeforeValidate(ctx context.Context, op string, attrs ...any) {
	l.log.InfoContext(ctx, "request received", append([]any{"op", op}, attrs...)...)
}

func (l *Log) AfterMutation(ctx context.Context, op string, id string, attrs ...any) {
	l.log.InfoContext(ctx, "stored", append([]any{"op", op, "id", id}, attrs...)...)
}

// OnError logs domain rejections as warnings and everything else as errors.
func (l *Log) OnError(ctx context.Context, op string, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		l.log.ErrorContext(ctx, "operation failed", "op", op, "err", err)
		return
	}
	l.log.WarnContext(ctx, "operation rejected", "op", op, "kind", string(kind), "err", err)
}

type multi []Observer

// Multi fans out to every observer in order.
func Multi(obs ...Observer) Observer { return multi(obs) }

func (m multi) BeforeValidate(ctx context.Context, op string, attrs ...any) {
	for _, o := range m {
		o.BeforeValidate(ctx, op, attrs...)
	}
}

func (m multi) AfterMutation(ctx context.Context, op string, id string, attrs ...any) {
	for _, o := range m {
		o.AfterMutation(ctx, op, id, attrs...)
	}
}

func (m multi) OnError(ctx context.Context, op string, err error) {
	for _, o := range m {
		o.OnError(ctx, op, err)
	}
}
