package hilbert

import "runtime"

type options struct {
	logger    *Logger
	workers   int
	chunkSize uint64
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:    NoopLogger(),
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: defaultChunkSize,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures Decompose and Partition.Validate.
type Option func(*options)

// WithLogger sets the structured logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithWorkers sets the number of goroutines Decompose scans the basis with.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithChunkSize sets the minimum number of basis states per worker.
// Small spaces are scanned by fewer workers than configured.
func WithChunkSize(n uint64) Option {
	return func(o *options) {
		if n == 0 {
			n = defaultChunkSize
		}
		o.chunkSize = n
	}
}
