package module

import "context"

// Worker is a long running loop owned by the module
type Worker interface {
	Run(ctx context.Context) error
}

// Ports holds the ports exposed by the orders module
type Ports struct {
	Expirer Worker
}
