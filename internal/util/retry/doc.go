// Package retry re-runs a failing operation with exponential backoff.
//
// [Do] is used around BLE connection probes, where a first attempt often
// fails while the trainer's radio wakes up. Wrap an error with [Fatal] to
// stop retrying immediately.
package retry
