package repokit

// Binder makes a repo that runs on a given Queryer: the pool outside a
// transaction, the tx inside one
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a constructor such as repo.NewPG().Bind or a test fake
type BindFunc[T any] func(Queryer) T

// Bind implements Binder
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
