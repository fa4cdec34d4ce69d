package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoRecoversIntoHandler(t *testing.T) {
	got := make(chan any, 1)
	SetCrashHandler(func(r any) { got <- r })
	defer SetCrashHandler(nil)

	Go(func() { panic("poller exploded") })

	select {
	case r := <-got:
		assert.Equal(t, "poller exploded", r)
	case <-time.After(time.Second):
		t.Fatal("crash handler not called")
	}
}

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("function not run")
	}
}

func TestHandleCrashIgnoresNil(t *testing.T) {
	called := false
	SetCrashHandler(func(r any) { called = true })
	defer SetCrashHandler(nil)

	HandleCrash(nil)
	require.False(t, called)
}
