/*
Package signal provides a typed, in-process event primitive: an Event to
which handlers can be bound, and which, when fired, synchronously invokes
every bound handler in registration order.

# Binding

Handlers are bound either permanently or through a scoped Binding token:

	var ev signal.Event[string]

	ev.PermanentBind(func(s string) { fmt.Println("always:", s) })

	b := ev.Bind(func(s string) { fmt.Println("scoped:", s) })
	ev.Fire("hello") // both handlers run
	b.Release()
	ev.Fire("bye") // only the permanent handler runs

A Binding owns the unbind action for exactly one handler. Releasing it (or
closing the event) unregisters that handler; further releases are no-ops.
Store a Binding as a struct field to tie a handler's registration to the
owning value's lifetime.

# Dispatch semantics

Fire takes an ordered snapshot of the handlers registered at the moment of
the call and iterates the snapshot, checking each handler's liveness
immediately before invoking it. Handlers may therefore bind and release
freely during a fire:

  - a handler that releases its own Binding finishes its current
    invocation and is never invoked again;
  - releasing a later handler's Binding skips that handler for the current
    fire only;
  - handlers bound during a fire first run on the next fire;
  - no handler runs more than once per fire.

Handlers have no return value. A panicking handler aborts the remaining
snapshot and the panic propagates to Fire's caller; the event is not a
fault-isolation boundary.

# Concurrency

Dispatch is single-threaded and synchronous: handlers run inline on the
goroutine calling Fire. Registry mutations are individually safe to call
from handlers (that is the reentrancy contract above), but the package
promises no cross-goroutine dispatch ordering; coordinating Fire across
goroutines is the caller's responsibility.
*/
package signal
