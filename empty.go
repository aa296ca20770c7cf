// Package atexit provides C-runtime style shutdown support for Go programs:
// a registry of deferred finalizer callbacks that run in last-registered-first
// order when the process-wide shutdown hook fires, and an 8-byte Guard token
// for one-time initialization of lazily constructed state.
// The registry stores entries in fixed-capacity blocks chained newest-first;
// the first 32 registrations never allocate, and a failed allocation is
// reported to the caller without disturbing earlier registrations.
package atexit
