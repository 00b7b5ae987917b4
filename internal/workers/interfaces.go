// Package workers provides cancellable asynchronous tasks for the client.
//
// A [Task] is a future bound to a context: it runs a function on its own
// goroutine and can be cancelled or awaited. [Latest] keeps only the most
// recently started task alive, so a newer request supersedes an older one
// instead of racing it.
package workers

import "context"

// Func is the unit of work run by a [Task].
type Func[T any] func(ctx context.Context) (T, error)
