// Package service contains the demo applications themselves. Each service
// owns the collections for one demo, seeds them with fixed sample data, and
// drives a scripted sequence of operations, narrating outcomes to an
// injected output sink.
//
// Error handling follows a per-operation policy: a failed step is reported
// to the sink and logged, and the script continues with the next step. The
// one exception is the gradebook's record file, which is parsed
// all-or-nothing; a parse failure aborts that demo's run.
//
// Services receive their output sink and logger through constructor
// injection so the demos can be exercised in tests without capturing stdout.
package service
