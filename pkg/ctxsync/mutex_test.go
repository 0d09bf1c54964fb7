package ctxsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MutexTestSuite struct {
	suite.Suite
	mu *Mutex
}

func (s *MutexTestSuite) SetupTest() {
	s.mu = NewMutex()
}

func (s *MutexTestSuite) TestLockUnlock() {
	s.mu.Lock()
	s.False(s.mu.TryLock())
	s.mu.Unlock()
	s.True(s.mu.TryLock())
	s.mu.Unlock()
}

func (s *MutexTestSuite) TestFreshMutexAcquiresImmediately() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := s.mu.LockWithContext(ctx)
	s.NoError(err)
	s.mu.Unlock()
}

func (s *MutexTestSuite) TestLockWithContextCancelled() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.mu.LockWithContext(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *MutexTestSuite) TestLockWithContextTimeout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.mu.LockWithContext(ctx)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *MutexTestSuite) TestUnlockOfUnlockedPanics() {
	s.Panics(func() { s.mu.Unlock() })
}

func (s *MutexTestSuite) TestMutualExclusion() {
	var counter int
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.mu.Lock()
			defer s.mu.Unlock()
			counter++
		}()
	}
	wg.Wait()

	s.Equal(50, counter)
}

func TestMutexTestSuite(t *testing.T) {
	suite.Run(t, new(MutexTestSuite))
}
