// Package tasks runs download cycles for a list of playlist URLs.
//
// [Batch.Run] issues one [trigger.Controller] cycle per URL, strictly one after another, so the single
// in-flight request invariant of the controller holds for the whole batch. Cycles are paced with a
// [rate.Limiter] and report progress through a non-blocking [ProgressUpdate] channel.
package tasks
