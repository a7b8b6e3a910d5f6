// Package async содержит отложенный одноразовый вызов: операция не выполняется,
// пока потребитель явно её не запустит.
package async

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrAlreadyStarted возвращается при повторном запуске Call.
var ErrAlreadyStarted = errors.New("call already started")

// Result результат асинхронного вызова.
type Result[T any] struct {
	Value T
	Err   error
}

// Call — отложенная операция с единственным потребителем.
type Call[T any] struct {
	fn      func(ctx context.Context) (T, error)
	started atomic.Bool
}

// Defer оборачивает fn, не вызывая её.
func Defer[T any](fn func(ctx context.Context) (T, error)) *Call[T] {
	return &Call[T]{fn: fn}
}

// Do запускает операцию и ждёт результата.
// Если ctx отменён к моменту завершения, результат отбрасывается и возвращается ctx.Err().
func (c *Call[T]) Do(ctx context.Context) (T, error) {
	var zero T
	if !c.started.CompareAndSwap(false, true) {
		return zero, ErrAlreadyStarted
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	v, err := c.fn(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}
	return v, err
}

// Go запускает операцию в отдельной горутине. Канал получает ровно одно значение и закрывается.
func (c *Call[T]) Go(ctx context.Context) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	if !c.started.CompareAndSwap(false, true) {
		ch <- Result[T]{Err: ErrAlreadyStarted}
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		var zero T
		if err := ctx.Err(); err != nil {
			ch <- Result[T]{Value: zero, Err: err}
			return
		}
		v, err := c.fn(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			ch <- Result[T]{Value: zero, Err: ctxErr}
			return
		}
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// Started сообщает, была ли операция запущена.
func (c *Call[T]) Started() bool {
	return c.started.Load()
}
