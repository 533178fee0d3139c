// Package rpc implements the socket client used to view the memory of a
// live target. Requests and replies are length-prefixed little-endian
// frames: a command byte plus u16 payload length, answered by a status
// byte plus u16 payload length.
package rpc

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Command byte

const (
	CmdPing    Command = 1
	CmdStatus  Command = 2
	CmdMemRead Command = 3
)

// maxReadChunk bounds a single CmdMemRead request; longer reads are split.
const maxReadChunk = 1024

type CommandError struct {
	Status byte
	Data   []byte
}

func (e CommandError) Error() string {
	return fmt.Sprintf("remote command error: status=%d msg=%s", e.Status, strings.TrimSpace(string(e.Data)))
}

type Client struct {
	path    string
	timeout time.Duration

	mu        sync.Mutex
	conn      net.Conn
	lastError error
}

func New(path string) *Client {
	return &Client{
		path:    path,
		timeout: 500 * time.Millisecond,
	}
}

func (c *Client) Path() string {
	return c.path
}

func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

func (c *Client) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnectLocked()
}

func (c *Client) disconnectLocked() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

func (c *Client) ensureConnectedLocked(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.path)
	if err != nil {
		return errors.Wrapf(err, "connecting to %s", c.path)
	}
	c.conn = conn
	return nil
}

func (c *Client) setDeadlineLocked(ctx context.Context) {
	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = c.conn.SetDeadline(deadline)
}

func (c *Client) Call(ctx context.Context, command Command, payload []byte) ([]byte, error) {
	if len(payload) > 0xFFFF {
		return nil, fmt.Errorf("payload too large: %d", len(payload))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureConnectedLocked(ctx); err != nil {
		c.lastError = err
		return nil, err
	}
	c.setDeadlineLocked(ctx)

	packet := make([]byte, 3+len(payload))
	packet[0] = byte(command)
	binary.LittleEndian.PutUint16(packet[1:3], uint16(len(payload)))
	copy(packet[3:], payload)

	if _, err := c.conn.Write(packet); err != nil {
		c.disconnectLocked()
		c.lastError = err
		return nil, err
	}

	hdr := make([]byte, 3)
	if _, err := io.ReadFull(c.conn, hdr); err != nil {
		c.disconnectLocked()
		c.lastError = err
		return nil, err
	}
	status := hdr[0]
	ln := int(binary.LittleEndian.Uint16(hdr[1:3]))
	var data []byte
	if ln > 0 {
		data = make([]byte, ln)
		if _, err := io.ReadFull(c.conn, data); err != nil {
			c.disconnectLocked()
			c.lastError = err
			return nil, err
		}
	}
	if status != 0 {
		err := CommandError{
			Status: status,
			Data:   append([]byte(nil), data...),
		}
		c.lastError = err
		return nil, err
	}
	c.lastError = nil
	return data, nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Call(ctx, CmdPing, nil)
	return err
}

func (c *Client) ReadMemory(ctx context.Context, addr uint32, length uint16) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	buf := make([]byte, 6)
	binary.LittleEndian.PutUint32(buf[0:4], addr)
	binary.LittleEndian.PutUint16(buf[4:6], length)
	data, err := c.Call(ctx, CmdMemRead, buf)
	if err != nil {
		return nil, err
	}
	if len(data) < int(length) {
		return nil, fmt.Errorf("mem_read payload too short: %d < %d", len(data), length)
	}
	return data[:length], nil
}

func (c *Client) ReadMemoryChunked(ctx context.Context, addr uint32, length int) ([]byte, error) {
	if length <= 0 {
		return nil, nil
	}
	out := make([]byte, 0, length)
	for length > 0 {
		chunk := length
		if chunk > maxReadChunk {
			chunk = maxReadChunk
		}
		data, err := c.ReadMemory(ctx, addr, uint16(chunk))
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
		addr += uint32(chunk)
		length -= chunk
	}
	return out, nil
}
