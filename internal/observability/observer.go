// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides lightweight operation timing and debug
// logging shared by the extractor, the matching engine's callers, and the
// web server.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Level selects how much operational detail is emitted.
type Level int

const (
	LevelOff Level = iota
	LevelMetrics
	LevelDebug
)

// Observer records operation timings and emits them as JSON records.
// A nil *Observer is valid and records nothing.
type Observer struct {
	level  Level
	writer io.Writer
	seq    atomic.Uint64
}

// NewObserver creates an observer writing records to writer.
func NewObserver(level Level, writer io.Writer) *Observer {
	return &Observer{level: level, writer: writer}
}

// Record is one completed operation.
type Record struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	RequestID  string         `json:"request_id"`
	DurationMs int64          `json:"duration_ms"`
	Success    bool           `json:"success"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// StartTiming begins timing an operation. The returned function completes
// it; call it exactly once with the outcome and any metadata worth keeping.
func (o *Observer) StartTiming(component, operation string) func(success bool, metadata map[string]any) {
	if o == nil || o.level == LevelOff {
		return func(bool, map[string]any) {}
	}

	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.log(Record{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// Debugf emits a free-form debug line. Only active at LevelDebug.
func (o *Observer) Debugf(format string, args ...any) {
	if o == nil || o.level < LevelDebug {
		return
	}
	fmt.Fprintf(o.writer, format+"\n", args...)
}

func (o *Observer) log(r Record) {
	// Records are only serialized in debug mode; metrics level keeps timing
	// overhead without output.
	if o.level < LevelDebug {
		return
	}
	r.RequestID = fmt.Sprintf("req-%s-%d", time.Now().Format("20060102-150405"), o.seq.Add(1))
	json.NewEncoder(o.writer).Encode(r)
}
