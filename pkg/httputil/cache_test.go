package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	tests := []struct {
		name string
		key  string
	}{
		{"URL", "https://example.com/photo.png"},
		{"DataURI", "data:image/png;base64,AAA"},
		{"PathHostileKey", "a/b\\c:d*e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := []byte("payload-" + tt.key)
			if err := c.Set(ctx, tt.key, want); err != nil {
				t.Fatalf("Set: %v", err)
			}

			var got []byte
			ok, err := c.Get(ctx, tt.key, &got)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !ok {
				t.Fatal("Get returned miss for existing key")
			}
			if string(got) != string(want) {
				t.Errorf("Get = %q, want %q", got, want)
			}
		})
	}
}

func TestCacheMiss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var got []byte
	ok, err := c.Get(context.Background(), "missing", &got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get returned hit for missing key")
	}
}

func TestCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if err := c.Set(ctx, "key", "value"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got string
	ok, err := c.Get(ctx, "key", &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, err = c.Get(ctx, "key", &got); !errors.Is(err, ErrExpired) {
		t.Errorf("got error %v, want ErrExpired", err)
	}

	// Set refreshes the TTL.
	if err := c.Set(ctx, "key", "fresh"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err = c.Get(ctx, "key", &got)
	if err != nil || !ok || got != "fresh" {
		t.Errorf("Get after refresh = %q, %v, %v; want fresh, true, nil", got, ok, err)
	}
}

func TestCacheNamespace(t *testing.T) {
	ctx := context.Background()
	c, _ := NewCache(t.TempDir(), 0)

	files := c.Namespace("file:")
	urls := c.Namespace("url:")

	if err := files.Set(ctx, "k", "from-file"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := urls.Set(ctx, "k", "from-url"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got string
	if ok, _ := files.Get(ctx, "k", &got); !ok || got != "from-file" {
		t.Errorf("files.Get = %q, %v; want from-file, true", got, ok)
	}
	if ok, _ := urls.Get(ctx, "k", &got); !ok || got != "from-url" {
		t.Errorf("urls.Get = %q, %v; want from-url, true", got, ok)
	}

	// The undecorated key is invisible from the root view.
	if ok, _ := c.Get(ctx, "k", &got); ok {
		t.Error("root cache sees namespaced key")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("SucceedsAfterTransientFailures", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return &RetryableError{Err: errors.New("transient")}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Retry: %v", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("NonRetryableAbortsImmediately", func(t *testing.T) {
		calls := 0
		fatal := errors.New("fatal")
		err := Retry(ctx, 3, time.Millisecond, func() error {
			calls++
			return fatal
		})
		if !errors.Is(err, fatal) {
			t.Errorf("err = %v, want fatal", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("ExhaustedReturnsLastError", func(t *testing.T) {
		calls := 0
		err := Retry(ctx, 2, time.Millisecond, func() error {
			calls++
			return &RetryableError{Err: errors.New("still down")}
		})
		if err == nil || calls != 2 {
			t.Errorf("err = %v, calls = %d; want error after 2 attempts", err, calls)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := Retry(cancelled, 3, time.Millisecond, func() error {
			return &RetryableError{Err: errors.New("transient")}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}

func TestRetryWithBackoff(t *testing.T) {
	// Only the paths that never reach a backoff wait; the default delay is
	// a full second.
	t.Run("FirstAttemptSucceeds", func(t *testing.T) {
		calls := 0
		if err := RetryWithBackoff(context.Background(), func() error {
			calls++
			return nil
		}); err != nil {
			t.Fatalf("RetryWithBackoff: %v", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1", calls)
		}
	})

	t.Run("NonRetryableAbortsImmediately", func(t *testing.T) {
		fatal := errors.New("fatal")
		err := RetryWithBackoff(context.Background(), func() error { return fatal })
		if !errors.Is(err, fatal) {
			t.Errorf("err = %v, want fatal", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryWithBackoff(cancelled, func() error {
			return &RetryableError{Err: errors.New("transient")}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	})
}
