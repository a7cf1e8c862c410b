// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"net/http"

	"golang.org/x/time/rate"
)

// newLimiter returns nil, meaning unthrottled, if [limit] isn't positive
func newLimiter(limit float64) *rate.Limiter {
	if limit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(limit), 1)
}

// throttle answers 429 to the requests [limiter] doesn't allow
func throttle(limiter *rate.Limiter, handler http.Handler) http.Handler {
	if limiter == nil {
		return handler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
