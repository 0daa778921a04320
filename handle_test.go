package filefutures_test

import (
	"syscall"
	"testing"

	"github.com/brettbedarf/filefutures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandle_SingleInFlight(t *testing.T) {
	t.Parallel()

	exec := &manualExec{}
	h, file := newMockHandle(exec)
	file.On("Sync").Return(nil)
	file.On("Stat").Return(filefutures.Metadata{Size: 7}, nil)

	first := h.SyncAll()
	_, ready, err := first.Poll(nil)
	require.NoError(t, err)
	require.False(t, ready)

	// The handle is owned by the unresolved future: a second operation is a
	// protocol violation, not a queued request
	second := h.Metadata()
	_, ready, err = second.Poll(nil)
	assert.True(t, ready)
	var misuse *filefutures.MisuseError
	require.ErrorAs(t, err, &misuse)

	// Once the first future resolves, the returned handle works again
	exec.RunAll()
	res, ready, err := first.Poll(nil)
	require.NoError(t, err)
	require.True(t, ready)

	third := res.Handle.Metadata()
	_, ready, err = third.Poll(nil)
	require.NoError(t, err)
	require.False(t, ready)
	exec.RunAll()
	meta, ready, err := third.Poll(nil)
	require.NoError(t, err)
	require.True(t, ready)
	assert.Equal(t, int64(7), meta.Meta.Size)
}

func TestHandle_EachOperationIsAFreshFuture(t *testing.T) {
	t.Parallel()

	h, file := newMockHandle(syncExec{})
	file.On("Sync").Return(nil)

	a := h.SyncAll()
	resA, _, err := a.Poll(nil)
	require.NoError(t, err)

	b := resA.Handle.SyncAll()
	require.NotSame(t, a, b)
	resB, _, err := b.Poll(nil)
	require.NoError(t, err)
	assert.Same(t, h, resB.Handle)
	file.AssertNumberOfCalls(t, "Sync", 2)
}

func TestHandle_CloseWhileBusy(t *testing.T) {
	t.Parallel()

	exec := &manualExec{}
	h, file := newMockHandle(exec)
	file.On("Sync").Return(nil)
	file.On("Close").Return(nil)

	f := h.SyncAll()
	_, _, err := f.Poll(nil)
	require.NoError(t, err)

	var misuse *filefutures.MisuseError
	require.ErrorAs(t, h.Close(), &misuse)

	exec.RunAll()
	_, _, err = f.Poll(nil)
	require.NoError(t, err)

	require.NoError(t, h.Close())
	require.ErrorAs(t, h.Close(), &misuse)
	file.AssertNumberOfCalls(t, "Close", 1)
}

func TestHandle_LostOnFatalError(t *testing.T) {
	t.Parallel()

	h, file := newMockHandle(syncExec{})
	file.On("Read", mock.Anything).Return(0, syscall.EBADF)
	file.On("Close").Return(nil)

	f := h.Read(make([]byte, 8))
	_, ready, err := f.Poll(nil)
	assert.True(t, ready)

	// Descriptor-level failure: error surfaced verbatim, handle withheld
	var ioErr *filefutures.IoError
	require.ErrorAs(t, err, &ioErr)
	assert.Nil(t, ioErr.Handle)
	assert.ErrorIs(t, err, syscall.EBADF)
	assert.True(t, h.Lost())

	// A lost handle accepts no further operations
	_, _, err = h.Metadata().Poll(nil)
	var misuse *filefutures.MisuseError
	require.ErrorAs(t, err, &misuse)

	// But the caller may still reclaim the underlying resource
	require.NoError(t, h.Close())
}

func TestHandle_DistinctIDs(t *testing.T) {
	t.Parallel()

	a, _ := newMockHandle(syncExec{})
	b, _ := newMockHandle(syncExec{})
	assert.NotEqual(t, a.ID(), b.ID())
}
