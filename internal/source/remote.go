package source

import (
	"context"
	"fmt"

	"github.com/vxpm/anton/internal/addrspace"
	"github.com/vxpm/anton/internal/rpc"
)

// Remote serves bytes from a live target over a monitor socket. A failed
// read marks the whole requested window unreadable; the render loop keeps
// going and retries on the next frame.
type Remote struct {
	client *rpc.Client
}

func NewRemote(client *rpc.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) ReadInto(start addrspace.Addr, buf []Byte) {
	for i := range buf {
		buf[i] = Byte{}
	}
	if len(buf) == 0 {
		return
	}
	length := len(buf)
	if _, ok := start.CheckedAdd(addrspace.Addr(length - 1)); !ok {
		// clip the tail falling past the end of the address space
		length = int(addrspace.Max-start) + 1
	}
	data, err := r.client.ReadMemoryChunked(context.Background(), uint32(start), length)
	if err != nil {
		return
	}
	for i := 0; i < len(data) && i < length; i++ {
		buf[i] = Byte{Value: data[i], Valid: true}
	}
}

// LastError reports the most recent transport failure, or "" when the
// link is healthy.
func (r *Remote) LastError() string {
	if err := r.client.LastError(); err != nil {
		return err.Error()
	}
	return ""
}

func (r *Remote) Describe() string {
	return fmt.Sprintf("remote %s", r.client.Path())
}
