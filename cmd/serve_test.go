package cmd

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer blocks in Listen until Shutdown is called or listenErr is set.
type fakeServer struct {
	listenErr error
	stopped   chan struct{}
	shutdowns atomic.Int32
}

func newFakeServer(listenErr error) *fakeServer {
	return &fakeServer{listenErr: listenErr, stopped: make(chan struct{})}
}

func (f *fakeServer) Listen(string) error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown() error {
	if f.shutdowns.Add(1) == 1 {
		close(f.stopped)
	}
	return nil
}

func TestListenUntilDoneShutsDownOnCancel(t *testing.T) {
	srv := newFakeServer(nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- listenUntilDone(ctx, srv, ":0") }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop after cancel")
	}
	assert.Equal(t, int32(1), srv.shutdowns.Load())
}

func TestListenUntilDoneReturnsListenError(t *testing.T) {
	listenErr := errors.New("address in use")
	srv := newFakeServer(listenErr)

	err := listenUntilDone(context.Background(), srv, ":0")
	assert.ErrorIs(t, err, listenErr)
	assert.Equal(t, int32(0), srv.shutdowns.Load())
}
