// Package progress provides a wall-clock throttle for search progress reports.
//
// The search loop calls Tracker.RecordAttempt once per candidate. The tracker
// counts every call but hands a model.ProgressSnapshot to its callback at most
// once per interval, keeping reporting cost out of the hot loop.
//
// Design decision: Time comes from a Clock interface so tests can drive the
// throttle with a fake clock instead of sleeping.
package progress
