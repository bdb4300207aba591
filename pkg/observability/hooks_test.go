package observability

import (
	"testing"
	"time"
)

type recordingGenerationHooks struct {
	NoopGenerationHooks
	builds, packs, renders int
}

func (h *recordingGenerationHooks) OnBuildComplete(string, int, time.Duration, error) {
	h.builds++
}
func (h *recordingGenerationHooks) OnPackComplete(string, int, time.Duration, error) {
	h.packs++
}
func (h *recordingGenerationHooks) OnRenderComplete(string, []string, time.Duration, error) {
	h.renders++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Must not panic
	Generation().OnBuildStart("kit")
	Generation().OnBuildComplete("kit", 3, time.Second, nil)
	Cache().OnCacheHit("key")
	Cache().OnCacheMiss("key")
	Cache().OnCacheSet("key", 100)
}

func TestSetGenerationHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingGenerationHooks{}
	SetGenerationHooks(h)

	Generation().OnBuildComplete("kit", 3, time.Second, nil)
	Generation().OnPackComplete("kit", 2, time.Second, nil)
	Generation().OnRenderComplete("kit", []string{"pdf"}, time.Second, nil)

	if h.builds != 1 || h.packs != 1 || h.renders != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", h.builds, h.packs, h.renders)
	}
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	Cache().OnCacheHit("a")
	Cache().OnCacheMiss("b")
	Cache().OnCacheSet("c", 10)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hook counts = %d/%d/%d, want 1/1/1", h.hits, h.misses, h.sets)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	h := &recordingCacheHooks{}
	SetCacheHooks(h)
	SetCacheHooks(nil)

	Cache().OnCacheHit("a")
	if h.hits != 1 {
		t.Error("nil registration should not replace hooks")
	}
}

func TestReset(t *testing.T) {
	h := &recordingCacheHooks{}
	SetCacheHooks(h)
	Reset()

	Cache().OnCacheHit("a")
	if h.hits != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
