package observability

import (
	"context"
	"testing"
	"time"
)

type testStoreHooks struct{ actions []string }

func (h *testStoreHooks) OnAction(action string) { h.actions = append(h.actions, action) }

type testHTTPHooks struct{ requests int }

func (h *testHTTPHooks) OnRequest(context.Context, string, string) { h.requests++ }
func (h *testHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {
}

type testCacheHooks struct{ hits, misses int }

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) {}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStoreHooks{}
	s.OnAction("addCategory")

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/api/board")
	h.OnResponse(ctx, "GET", "/api/board", 200, time.Second)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "media")
	c.OnCacheMiss(ctx, "media")
	c.OnCacheSet(ctx, "media", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Reset() should restore NoopStoreHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testStoreHooks{}
	SetStoreHooks(custom)
	SetStoreHooks(nil)

	if Store() != custom {
		t.Error("SetStoreHooks(nil) should be ignored")
	}

	Reset()
}
