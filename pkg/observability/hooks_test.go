package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopResolverHooks{}
	r.OnResolveStart(ctx, "font-awesome", "svg_path")
	r.OnResolveComplete(ctx, "font-awesome", "svg_path", time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "font-awesome", "home")
	c.OnCacheMiss(ctx, "ionicons", "settings")
	c.OnCacheSet(ctx, "elementor", "eicon-star", 512)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Resolver().(NoopResolverHooks); !ok {
		t.Error("Resolver() should return NoopResolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customResolver := &testResolverHooks{}
	SetResolverHooks(customResolver)
	if Resolver() != customResolver {
		t.Error("SetResolverHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Resolver().(NoopResolverHooks); !ok {
		t.Error("Reset() should restore NoopResolverHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testCacheHooks{}
	SetCacheHooks(custom)
	SetCacheHooks(nil)

	if Cache() != custom {
		t.Error("SetCacheHooks(nil) should keep the previous hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "font-awesome", "home")
	Cache().OnCacheSet(ctx, "font-awesome", "home", 100)
	Cache().OnCacheHit(ctx, "font-awesome", "home")

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1/1/1", h.hits, h.misses, h.sets)
	}
}

type testResolverHooks struct{ NoopResolverHooks }

type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, string, int) { h.sets++ }
