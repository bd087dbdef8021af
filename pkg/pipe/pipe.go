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

// Package pipe carries command streams between a guest and a host. It
// names endpoints with a small address syntax, dials them with retry, and
// builds connected in-process pairs.
package pipe

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/mdlayher/vsock"
	"golang.org/x/sys/unix"
	"goldfish.dev/cereal/pkg/log"
)

// Networks understood by ParseAddr.
const (
	Unix  = "unix"
	TCP   = "tcp"
	VSock = "vsock"
)

// Addr is a parsed endpoint address. Its text form is one of
//
//	unix:<path>
//	tcp:<host>:<port>
//	vsock:<cid>:<port>
type Addr struct {
	Network string

	// Path is the socket path for Unix, or host:port for TCP.
	Path string

	// CID and Port identify a VSock endpoint.
	CID  uint32
	Port uint32
}

// ParseAddr parses the text form of an address.
func ParseAddr(s string) (Addr, error) {
	network, rest, ok := strings.Cut(s, ":")
	if !ok || rest == "" {
		return Addr{}, fmt.Errorf("address %q: want <network>:<endpoint>", s)
	}
	switch network {
	case Unix:
		return Addr{Network: Unix, Path: rest}, nil
	case TCP:
		if _, _, err := net.SplitHostPort(rest); err != nil {
			return Addr{}, fmt.Errorf("address %q: %w", s, err)
		}
		return Addr{Network: TCP, Path: rest}, nil
	case VSock:
		cid, port, ok := strings.Cut(rest, ":")
		if !ok {
			return Addr{}, fmt.Errorf("address %q: want vsock:<cid>:<port>", s)
		}
		c, err := strconv.ParseUint(cid, 10, 32)
		if err != nil {
			return Addr{}, fmt.Errorf("address %q: context ID: %w", s, err)
		}
		p, err := strconv.ParseUint(port, 10, 32)
		if err != nil {
			return Addr{}, fmt.Errorf("address %q: port: %w", s, err)
		}
		return Addr{Network: VSock, CID: uint32(c), Port: uint32(p)}, nil
	default:
		return Addr{}, fmt.Errorf("address %q: unknown network %q", s, network)
	}
}

// String returns the text form accepted by ParseAddr.
func (a Addr) String() string {
	if a.Network == VSock {
		return fmt.Sprintf("%s:%d:%d", VSock, a.CID, a.Port)
	}
	return a.Network + ":" + a.Path
}

// Set implements flag.Value.
func (a *Addr) Set(s string) error {
	parsed, err := ParseAddr(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Listen returns a listener bound to a. A stale Unix socket file left by an
// earlier listener is removed first.
func Listen(a Addr) (net.Listener, error) {
	switch a.Network {
	case Unix:
		if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("removing stale socket %q: %w", a.Path, err)
		}
		return net.Listen("unix", a.Path)
	case TCP:
		return net.Listen("tcp", a.Path)
	case VSock:
		return vsock.ListenContextID(a.CID, a.Port, nil)
	default:
		return nil, fmt.Errorf("cannot listen on network %q", a.Network)
	}
}

func dialOnce(ctx context.Context, a Addr) (net.Conn, error) {
	switch a.Network {
	case Unix, TCP:
		var d net.Dialer
		return d.DialContext(ctx, a.Network, a.Path)
	case VSock:
		return vsock.Dial(a.CID, a.Port, nil)
	default:
		return nil, backoff.Permanent(fmt.Errorf("cannot dial network %q", a.Network))
	}
}

// Dial connects to a, retrying with exponential backoff until the peer
// accepts, timeout elapses or ctx is done. A zero timeout retries until ctx
// is done.
func Dial(ctx context.Context, a Addr, timeout time.Duration) (net.Conn, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Millisecond
	b.MaxInterval = 1 * time.Second
	b.MaxElapsedTime = timeout

	var conn net.Conn
	op := func() error {
		c, err := dialOnce(ctx, a)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			log.Debugf("Dial %v: %v", a, err)
			return err
		}
		conn = c
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("dialing %v: %w", a, err)
	}
	return conn, nil
}

// Socketpair returns the two ends of a connected Unix stream socket pair.
func Socketpair() (net.Conn, net.Conn, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("socketpair: %w", err)
	}
	a, err := fileConn(fds[0], "guest")
	if err != nil {
		unix.Close(fds[1])
		return nil, nil, err
	}
	b, err := fileConn(fds[1], "host")
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, b, nil
}

// fileConn wraps fd in a net.Conn. fd is closed in all cases; the returned
// conn owns a duplicate.
func fileConn(fd int, name string) (net.Conn, error) {
	f := os.NewFile(uintptr(fd), name)
	defer f.Close()
	c, err := net.FileConn(f)
	if err != nil {
		return nil, fmt.Errorf("socketpair %s end: %w", name, err)
	}
	return c, nil
}
