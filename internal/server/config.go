package server

import "time"

// DefaultAddr listens on port 4221 on all interfaces.
const DefaultAddr = ":4221"

// Config holds start-up settings. It is read-only once the server starts.
type Config struct {
	Addr string

	// Directory is the root for /files/. Only used for the start-up line;
	// the file handlers carry their own copy.
	Directory string

	// MaxConns caps concurrently served connections. 0 means unlimited.
	MaxConns int64

	// MaxBodyBytes rejects request bodies larger than this. 0 means unlimited.
	MaxBodyBytes int64

	// IdleTimeout bounds the wait for each request. 0 means no deadline.
	IdleTimeout time.Duration

	Logger Logger
}

func DefaultConfig() Config {
	return Config{
		Addr:      DefaultAddr,
		Directory: ".",
	}
}
