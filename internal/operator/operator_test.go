package operator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ninebudget/ninebudget/internal/storage"
)

type fakeSource struct {
	committer *storage.MockCommitter
	err       error
}

func (f *fakeSource) Write(ctx context.Context) (*storage.Writer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return storage.NewWriterWith(f.committer, nil, nil, nil), nil
}

type funcAction func(ctx context.Context, writer *storage.Writer) error

func (f funcAction) Perform(ctx context.Context, writer *storage.Writer) error {
	return f(ctx, writer)
}

func startDelegator(t *testing.T, source WriterSource) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(source, 2)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	committer := storage.NewMockCommitter(t)
	committer.On("Commit", mock.Anything).Return(nil).Once()
	d := startDelegator(t, &fakeSource{committer: committer})

	var performed atomic.Bool
	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		performed.Store(true)
		return nil
	}))

	assert.NoError(t, err)
	assert.True(t, performed.Load())
	committer.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	committer := storage.NewMockCommitter(t)
	committer.On("Rollback", mock.Anything).Return(nil).Once()
	d := startDelegator(t, &fakeSource{committer: committer})

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		return errors.New("budget not found")
	}))

	assert.EqualError(t, err, "budget not found")
	committer.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestProcess_CommitError(t *testing.T) {
	committer := storage.NewMockCommitter(t)
	committer.On("Commit", mock.Anything).Return(errors.New("serialization failure")).Once()
	d := startDelegator(t, &fakeSource{committer: committer})

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		return nil
	}))

	assert.EqualError(t, err, "serialization failure")
}

func TestProcess_WriteError(t *testing.T) {
	d := startDelegator(t, &fakeSource{err: errors.New("connection refused")})

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		t.Error("action must not run without a writer")
		return nil
	}))

	assert.EqualError(t, err, "connection refused")
}

func TestProcess_ContextCancelledWhileWaiting(t *testing.T) {
	committer := storage.NewMockCommitter(t)
	committer.On("Commit", mock.Anything).Return(nil).Maybe()
	committer.On("Rollback", mock.Anything).Return(nil).Maybe()
	d := startDelegator(t, &fakeSource{committer: committer})

	release := make(chan struct{})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(ctx context.Context, w *storage.Writer) error {
		<-release
		return nil
	}))
	close(release)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(&fakeSource{}, 1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(ctx context.Context, w *storage.Writer) error {
		return nil
	}))
	require.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	d := NewOperatorDelegator(&fakeSource{}, 0)
	assert.Equal(t, 1, d.numWorkers)
	assert.Equal(t, queueSize, cap(d.queue))
}
