package interrupt

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotifier records subscriptions instead of touching real signals
type fakeNotifier struct {
	mu       sync.Mutex
	calls    int
	channels []chan<- os.Signal
}

func (f *fakeNotifier) notify(c chan<- os.Signal, _ ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.channels = append(f.channels, c)
}

func (f *fakeNotifier) send(sig os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.channels {
		c <- sig
	}
}

func TestGuard_RegisterAttachesOnce(t *testing.T) {
	fake := &fakeNotifier{}
	g := New(fake.notify, zerolog.Nop())

	g.Register(func() {})
	g.Register(func() {})
	g.Register(func() {})

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 1, fake.calls)
}

func TestGuard_OneTeardownPerSignal(t *testing.T) {
	fake := &fakeNotifier{}
	g := New(fake.notify, zerolog.Nop())

	var first, second atomic.Int32
	g.Register(func() { first.Add(1) })
	g.Register(func() { second.Add(1) })

	fake.send(os.Interrupt)

	require.Eventually(t, func() bool {
		return first.Load() == 1 && second.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestGuard_TeardownClearsRegistrations(t *testing.T) {
	g := New((&fakeNotifier{}).notify, zerolog.Nop())

	var calls atomic.Int32
	g.Register(func() { calls.Add(1) })

	g.Teardown()
	g.Teardown()

	assert.Equal(t, int32(1), calls.Load())
}

func TestProcess_ReturnsSameGuard(t *testing.T) {
	assert.Same(t, Process(zerolog.Nop()), Process(zerolog.Nop()))
}
