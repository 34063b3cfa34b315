// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the generation
// backends. Rate-limit handling lives here, at the transport layer: the
// analysis pipeline itself treats backend calls as opaque and
// propagates their failures.
package httputil

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"
)

// BackoffBase controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var BackoffBase = 5 * time.Second

const defaultMaxRetries = 4

// DoWithRetry executes an HTTP request and retries on HTTP 429 (Too
// Many Requests). The wait before each retry is the server's
// Retry-After header when present, otherwise exponential backoff from
// BackoffBase: 5 s, 10 s, 20 s, 40 s.
//
// When maxRetries is 0 the default (4) is used. On each 429 the
// response body is drained and closed before sleeping. A cancelled
// context during a wait returns ctx.Err(). After exhausting retries the
// last 429 response is returned so the caller can inspect it.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(ctx)
		if attempt > 0 && req.GetBody != nil {
			// The original body was consumed by the previous attempt.
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			attemptReq.Body = body
		}

		resp, err := client.Do(attemptReq)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		wait := retryAfter(resp)
		if wait <= 0 {
			wait = time.Duration(math.Pow(2, float64(attempt))) * BackoffBase
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// retryAfter reads a delay-seconds Retry-After header. HTTP-date forms
// and absent headers report zero, deferring to exponential backoff.
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
