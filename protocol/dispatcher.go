package protocol

import (
	"reflect"
	"sync"
	"time"
)

type waitResult struct {
	packet Packet
	err    error
}

// Dispatcher routes decoded packets to pending one-shot waiters keyed by
// exact packet type. It is the Go analogue of a map from packet type to a
// queue of suspended futures: WaitFor registers a waiter and blocks until
// a matching Dispatch, a timeout, or Fail (connection loss).
//
// All methods are safe for concurrent use, but in the intended single
// read-loop-goroutine model only Dispatch and Fail are ever called
// concurrently with WaitFor calls made from other goroutines (e.g. a
// caller awaiting LoginSuccess while the read loop drives dispatch).
type Dispatcher struct {
	mu      sync.Mutex
	waiters map[reflect.Type][]chan waitResult
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{waiters: make(map[reflect.Type][]chan waitResult)}
}

// Dispatch completes every waiter registered for p's exact concrete type,
// in registration order, and removes them atomically. A packet with no
// waiter is simply dropped by the dispatcher (a higher layer may still run
// inherent side effects before calling Dispatch — see client.readLoop).
func (d *Dispatcher) Dispatch(p Packet) {
	t := reflect.TypeOf(p)

	d.mu.Lock()
	chans := d.waiters[t]
	delete(d.waiters, t)
	d.mu.Unlock()

	for _, ch := range chans {
		ch <- waitResult{packet: p}
		close(ch)
	}
}

// Fail completes every outstanding waiter, of every type, with err. Used
// when the transport closes.
func (d *Dispatcher) Fail(err error) {
	d.mu.Lock()
	all := d.waiters
	d.waiters = make(map[reflect.Type][]chan waitResult)
	d.mu.Unlock()

	for _, chans := range all {
		for _, ch := range chans {
			ch <- waitResult{err: err}
			close(ch)
		}
	}
}

func (d *Dispatcher) register(t reflect.Type) chan waitResult {
	ch := make(chan waitResult, 1)
	d.mu.Lock()
	d.waiters[t] = append(d.waiters[t], ch)
	d.mu.Unlock()
	return ch
}

func (d *Dispatcher) unregister(t reflect.Type, target chan waitResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	chans := d.waiters[t]
	for i, ch := range chans {
		if ch == target {
			d.waiters[t] = append(chans[:i], chans[i+1:]...)
			break
		}
	}
}

// WaitFor registers a one-shot waiter for packet type PT and blocks until
// one is dispatched, timeout elapses (ErrTimeout), or the connection is
// torn down (ErrDisconnected). A waiter registered after a matching packet
// was already dispatched is not retroactively completed.
func WaitFor[T any, PT interface {
	*T
	Packet
}](d *Dispatcher, timeout time.Duration) (PT, error) {
	var zero PT
	t := reflect.TypeOf(zero)

	ch := d.register(t)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return zero, res.err
		}
		return res.packet.(PT), nil
	case <-timer.C:
		d.unregister(t, ch)
		return zero, ErrTimeout
	}
}
