package server

import (
	"errors"
	"fmt"
	"net"
	"os"
	"runtime/debug"
	"time"

	"github.com/Brownie44l1/http-origin/internal/headers"
	"github.com/Brownie44l1/http-origin/internal/request"
	"github.com/Brownie44l1/http-origin/internal/response"
)

// serveConn handles all requests on a single connection. Requests are served
// strictly in order; any protocol or I/O error closes the connection without
// a response.
func (s *Server) serveConn(id uint64, conn net.Conn) {
	s.logger.Info(fmt.Sprintf("%d: connected", id), Field{"conn", id}, Field{"remote", conn.RemoteAddr().String()})
	s.metrics.ConnOpened()

	br := getReader(conn)
	bw := getWriter(conn)

	defer func() {
		conn.Close()
		putReader(br)
		putWriter(bw)
		s.metrics.ConnClosed()
		s.logger.Info(fmt.Sprintf("%d: disconnected", id), Field{"conn", id})
	}()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(fmt.Sprintf("%d: panic: %v", id, r),
				Field{"conn", id},
				Field{"stack", string(debug.Stack())},
			)
		}
	}()

	parser := request.NewParser(br)
	parser.MaxBodyBytes = s.config.MaxBodyBytes
	w := response.NewWriter(bw)

	for {
		if s.config.IdleTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.config.IdleTimeout))
		}

		req, err := parser.ReadRequest()
		if err != nil {
			s.handleReadError(id, err)
			return
		}

		start := time.Now()

		res, err := s.handler.Route(req)
		if err != nil {
			s.logError(id, err)
			return
		}

		if req.WantsClose() {
			res.Headers.Set(headers.Connection, "close")
		}

		if err := ContentEncoding(req, res); err != nil {
			s.logError(id, err)
			return
		}

		s.logger.Info(fmt.Sprintf("%d: %s %s -> %s", id, req.Method, req.Path, res.Status.Line()),
			Field{"conn", id},
			Field{"method", req.Method.String()},
			Field{"path", req.Path},
			Field{"status", int(res.Status)},
		)

		if err := w.Write(res); err != nil {
			s.logError(id, err)
			return
		}
		s.metrics.RecordRequest(int(res.Status), time.Since(start))

		if shouldCloseConnection(req, w) {
			return
		}
	}
}

// handleReadError classifies a failed ReadRequest. Nothing is written back.
func (s *Server) handleReadError(id uint64, err error) {
	switch {
	case errors.Is(err, request.ErrNoRequest):
		// peer finished cleanly
	case errors.Is(err, request.ErrParse), errors.Is(err, request.ErrUnsupportedVersion):
		s.metrics.ProtocolErrors.Add(1)
		s.logger.Warn(fmt.Sprintf("%d: returned an error: %v", id, err), Field{"conn", id}, Field{"error", err})
	case errors.Is(err, os.ErrDeadlineExceeded):
		s.logger.Debug(fmt.Sprintf("%d: idle timeout", id), Field{"conn", id})
	case errors.Is(err, net.ErrClosed) && s.closed.Load():
		s.logger.Debug(fmt.Sprintf("%d: closed by shutdown", id), Field{"conn", id})
	default:
		s.logError(id, err)
	}
}

func (s *Server) logError(id uint64, err error) {
	s.logger.Error(fmt.Sprintf("%d: returned an error: %v", id, err), Field{"conn", id}, Field{"error", err})
}
