package repokit

// Binder builds a repo implementation over a specific Queryer, letting a
// service bind once against the pool and rebind inside a Tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function into a Binder, mostly for test fakes
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
