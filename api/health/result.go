// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"errors"
	"time"
)

var (
	errNotYetRun = errors.New("not yet run")

	notYetRunResult = Result{
		Error: errString(errNotYetRun),
	}
)

// Result of the last execution of a check
type Result struct {
	// Details reported by the check. For the whitelist checks this is the
	// controller snapshot.
	Details interface{} `json:"message,omitempty"`

	// Error returned by the check. nil if the check passed.
	Error *string `json:"error,omitempty"`

	Timestamp time.Time     `json:"timestamp,omitempty"`
	Duration  time.Duration `json:"duration"`

	// ContiguousFailures counts the failed runs since the check last passed
	ContiguousFailures int64      `json:"contiguousFailures,omitempty"`
	TimeOfFirstFailure *time.Time `json:"timeOfFirstFailure,omitempty"`
}

// next returns the result of a run that followed [r]
func (r Result) next(details interface{}, err error, start, end time.Time) Result {
	result := Result{
		Details:   details,
		Timestamp: end,
		Duration:  end.Sub(start),
	}
	if err == nil {
		return result
	}

	result.Error = errString(err)
	result.ContiguousFailures = r.ContiguousFailures + 1
	result.TimeOfFirstFailure = &end
	if r.ContiguousFailures > 0 {
		result.TimeOfFirstFailure = r.TimeOfFirstFailure
	}
	return result
}

func errString(err error) *string {
	s := err.Error()
	return &s
}
