package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

// ErrServerClosed is returned by Serve and ListenAndServe after Shutdown.
var ErrServerClosed = errors.New("server closed")

// Handler maps a request to a response. *router.Router satisfies it.
type Handler interface {
	Route(req *request.Request) (*response.Response, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(req *request.Request) (*response.Response, error)

func (f HandlerFunc) Route(req *request.Request) (*response.Response, error) {
	return f(req)
}

type Server struct {
	config  Config
	handler Handler
	logger  Logger
	metrics *Metrics

	listener net.Listener
	closed   atomic.Bool
	nextID   atomic.Uint64 // connection ids, for logging only
	sem      *semaphore.Weighted

	ctx    context.Context // cancelled by Shutdown to unblock the accept loop
	cancel context.CancelFunc

	mu    sync.Mutex
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

func New(config Config, handler Handler) *Server {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	logger := config.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config:  config,
		handler: handler,
		logger:  logger,
		metrics: NewMetrics(),
		ctx:     ctx,
		cancel:  cancel,
		conns:   make(map[net.Conn]struct{}),
	}
	if config.MaxConns > 0 {
		s.sem = semaphore.NewWeighted(config.MaxConns)
	}
	return s
}

// ListenAndServe binds Config.Addr with SO_REUSEADDR and serves until
// Shutdown.
func (s *Server) ListenAndServe() error {
	lc := net.ListenConfig{Control: reuseAddrControl}
	ln, err := lc.Listen(s.ctx, "tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.Addr, err)
	}
	port := ln.Addr().String()
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	s.logger.Info("listen: "+port, Field{"addr", ln.Addr().String()})
	return s.Serve(ln)
}

// Serve accepts connections on ln and serves each one on its own goroutine.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed.Load() {
		s.mu.Unlock()
		ln.Close()
		return ErrServerClosed
	}
	s.listener = ln
	s.mu.Unlock()

	for {
		if s.sem != nil {
			if err := s.sem.Acquire(s.ctx, 1); err != nil {
				return ErrServerClosed
			}
		}

		conn, err := ln.Accept()
		if err != nil {
			if s.sem != nil {
				s.sem.Release(1)
			}
			if s.closed.Load() {
				return ErrServerClosed
			}
			s.logger.Error(fmt.Sprintf("accept: %v", err), Field{"error", err})
			continue
		}

		// Shutdown flips closed under mu, so no wg.Add can follow its Wait.
		s.mu.Lock()
		if s.closed.Load() {
			s.mu.Unlock()
			conn.Close()
			if s.sem != nil {
				s.sem.Release(1)
			}
			return ErrServerClosed
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		id := s.nextID.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)
			if s.sem != nil {
				defer s.sem.Release(1)
			}
			s.serveConn(id, conn)
		}()
	}
}

// Shutdown stops accepting and waits for open connections to finish. When
// ctx expires first the remaining connections are closed and ctx's error is
// returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed.Store(true)
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	s.mu.Unlock()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		s.mu.Lock()
		for c := range s.conns {
			c.Close()
		}
		s.mu.Unlock()
		<-done
		return ctx.Err()
	}
}

func (s *Server) Stats() MetricsSnapshot {
	return s.metrics.Snapshot()
}

func (s *Server) untrack(c net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, c)
}
