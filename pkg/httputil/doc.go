// Package httputil provides HTTP utilities for the media attachment path.
//
// # Overview
//
// Clue content may reference remote media by URL. Attaching such media means
// downloading it and inlining it as a data URI, and this package provides
// the infrastructure that makes those downloads tolerable:
//
//   - [Cache]: file-based response caching with TTL
//   - [Retry]: automatic retry with exponential backoff for transient failures
//
// # Caching
//
// [Cache] stores fetched payloads in the filesystem (~/.cache/clueboard/ by
// default) keyed by source URL, so re-attaching the same media to several
// clues does not re-download it.
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var body []byte
//	if ok, _ := cache.Get(ctx, url, &body); !ok {
//	    body = download(url)
//	    cache.Set(ctx, url, body)
//	}
//
// Keys should be namespaced per concern via [Cache.Namespace] to avoid
// collisions.
//
// # Retry
//
// [Retry] re-attempts operations that fail transiently. Wrap the error with
// [RetryableError] to opt a failure into retrying; anything else aborts
// immediately:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
package httputil
