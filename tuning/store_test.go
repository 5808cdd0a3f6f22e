package tuning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetRejectsInvalid(t *testing.T) {
	s := NewStore(Default())

	bad := Default()
	bad.Gravity = -1
	assert.ErrorIs(t, s.Set(bad), ErrInvalidTuning)
	assert.Equal(t, Default(), s.Get())

	good := Default()
	good.WalkSpeed = 5
	require.NoError(t, s.Set(good))
	assert.Equal(t, 5.0, s.Get().WalkSpeed)
}

func TestStoreReloadWithoutName(t *testing.T) {
	s := NewStore(Default())
	assert.NoError(t, s.Reload())
	assert.Empty(t, s.Name())
}

func TestStoreWatchReloads(t *testing.T) {
	s, err := Open("tuning.yaml")
	require.NoError(t, err)
	assert.Equal(t, "tuning.yaml", s.Name())

	changed := Default()
	changed.WalkSpeed = 3
	require.NoError(t, s.Set(changed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan string)
	done := make(chan struct{})
	go func() {
		s.Watch(ctx, events)
		close(done)
	}()

	events <- "prefabs/arena.yaml"
	assert.Equal(t, 3.0, s.Get().WalkSpeed, "unrelated file ignored")

	events <- "prefabs/tuning.yaml"
	assert.Eventually(t, func() bool { return s.Get().WalkSpeed == 8 }, time.Second, 10*time.Millisecond)

	close(events)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop when events closed")
	}
}
