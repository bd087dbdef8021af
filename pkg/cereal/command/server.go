// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"goldfish.dev/cereal/pkg/cereal"
	"goldfish.dev/cereal/pkg/cereal/primitive"
	"goldfish.dev/cereal/pkg/log"
)

// Status codes shared by all command sets. Handlers return their own API's
// result codes; these two are reserved by the dispatcher.
const (
	// StatusOK indicates success. Only successful replies carry a body.
	StatusOK int32 = 0

	// StatusUnknownCommand is returned for unregistered opcodes.
	StatusUnknownCommand int32 = -1 << 16
)

// Handler executes decoded commands on the host.
type Handler interface {
	// Handle executes req and returns a status and, for StatusOK, the reply
	// body. The reply must be nil for commands without one.
	Handle(ctx context.Context, c *Command, req cereal.Marshallable) (int32, cereal.Marshaler)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, c *Command, req cereal.Marshallable) (int32, cereal.Marshaler)

// Handle implements Handler.Handle.
func (f HandlerFunc) Handle(ctx context.Context, c *Command, req cereal.Marshallable) (int32, cereal.Marshaler) {
	return f(ctx, c, req)
}

// Server decodes command frames and dispatches them to a Handler.
type Server struct {
	// MaxConns, if positive, bounds the connections served at once. Further
	// connections wait in the listener backlog.
	MaxConns int

	reg *Registry
	h   Handler
}

// NewServer returns a server dispatching the commands of reg to h.
func NewServer(reg *Registry, h Handler) *Server {
	return &Server{reg: reg, h: h}
}

// reply is the body of a reply frame.
type reply struct {
	status primitive.Int32
	body   cereal.Marshaler
}

// Marshal implements cereal.Marshaler.Marshal.
func (r *reply) Marshal(s *cereal.Stream) error {
	if err := r.status.Marshal(s); err != nil {
		return err
	}
	if r.status != primitive.Int32(StatusOK) || r.body == nil {
		return nil
	}
	return r.body.Marshal(s)
}

// ServeConn processes frames from conn until it is closed or a frame cannot
// be decoded. Unknown opcodes are answered with StatusUnknownCommand; any
// other decode failure desynchronizes the connection and ends it with an
// error.
func (s *Server) ServeConn(ctx context.Context, conn io.ReadWriter) error {
	dec := NewDecoder(conn, s.reg)
	enc := NewEncoder(conn, s.reg)
	for ctx.Err() == nil {
		c, req, err := dec.Decode()
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrUnknownCommand):
			log.Warningf("Rejecting command: %v", err)
			if err := enc.EncodeOp(c.Op, &reply{status: primitive.Int32(StatusUnknownCommand)}); err != nil {
				return err
			}
			continue
		default:
			return err
		}

		status, body := s.h.Handle(ctx, c, req)
		if log.IsLogging(log.Debug) {
			log.Debugf("%v -> status %d", c, status)
		}
		if err := enc.EncodeOp(c.Op, &reply{status: primitive.Int32(status), body: body}); err != nil {
			return fmt.Errorf("replying to %v: %w", c, err)
		}
	}
	return nil
}

// Serve accepts connections on l and serves each on its own goroutine
// until ctx is canceled or l fails. Connection errors are logged and do not
// stop the server. Serve closes l.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu    sync.Mutex
		conns = make(map[net.Conn]struct{})
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		l.Close()
		mu.Lock()
		defer mu.Unlock()
		for conn := range conns {
			conn.Close()
		}
		return nil
	})

	var sem *semaphore.Weighted
	if s.MaxConns > 0 {
		sem = semaphore.NewWeighted(int64(s.MaxConns))
	}
	for {
		if sem != nil {
			if err := sem.Acquire(gctx, 1); err != nil {
				g.Wait()
				return nil
			}
		}
		conn, err := l.Accept()
		if err != nil {
			cancel()
			g.Wait()
			if parent.Err() != nil {
				return nil
			}
			return err
		}
		mu.Lock()
		if gctx.Err() != nil {
			mu.Unlock()
			conn.Close()
			if sem != nil {
				sem.Release(1)
			}
			continue
		}
		conns[conn] = struct{}{}
		mu.Unlock()

		g.Go(func() error {
			defer func() {
				mu.Lock()
				delete(conns, conn)
				mu.Unlock()
				conn.Close()
				if sem != nil {
					sem.Release(1)
				}
			}()
			log.Infof("Serving connection from %v", conn.RemoteAddr())
			if err := s.ServeConn(gctx, conn); err != nil && gctx.Err() == nil {
				log.Warningf("Connection from %v failed: %v", conn.RemoteAddr(), err)
			}
			return nil
		})
	}
}

// StatusError is returned by Client.Call for replies with a status other
// than StatusOK.
type StatusError struct {
	Command *Command
	Status  int32
}

// Error implements error.Error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%v failed with status %d", e.Command, e.Status)
}

// Client issues commands over a connection and waits for their replies.
// Calls are serialized; a Client is safe for concurrent use.
type Client struct {
	mu  sync.Mutex
	enc *Encoder
	dec *Decoder
}

// NewClient returns a client for the commands of reg over rw.
func NewClient(rw io.ReadWriter, reg *Registry) *Client {
	return &Client{
		enc: NewEncoder(rw, reg),
		dec: NewDecoder(rw, reg),
	}
}

// Call sends req and waits for the reply. On StatusOK the reply body is
// unmarshaled into resp, which may be nil for commands without one. Any
// other status is returned as a *StatusError.
func (cl *Client) Call(req cereal.Marshaler, resp cereal.Unmarshaler) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, err := cl.enc.Encode(req)
	if err != nil {
		return err
	}
	op, s, err := cl.dec.Next()
	if err != nil {
		return fmt.Errorf("awaiting reply to %v: %w", c, err)
	}
	if op != c.Op {
		return fmt.Errorf("reply to %v carries opcode %d", c, op)
	}
	var status primitive.Int32
	if err := status.Unmarshal(s); err != nil {
		return fmt.Errorf("reply to %v: %w", c, err)
	}
	if int32(status) != StatusOK {
		return &StatusError{Command: c, Status: int32(status)}
	}
	if resp == nil {
		if s.Len() != 0 {
			return fmt.Errorf("reply to %v: %w: %d unread", c, ErrTrailingBytes, s.Len())
		}
		return nil
	}
	if err := Unmarshal(s, resp); err != nil {
		return fmt.Errorf("reply to %v: %w", c, err)
	}
	return nil
}
