// Package linetrace provides line-oriented trace streams for debugging
// output that is meant to be read by humans and imported by spreadsheet
// tools alike.
//
// Every line a stream emits carries a one-character stream tag and a
// comma-delimited timestamp:
//
//	<tag>,<YYMMDD>,<HHMMSS>,<MMM>: <body>
//
// # Usage
//
// Four streams exist for the process lifetime: Err (tag E), Out (tag O),
// Log (tag L) and Tmp (tag T, sharing Out's destination so that scratch
// statements are trivial to grep for and remove). A statement is built by
// chaining insertions and terminated explicitly:
//
//	linetrace.Log().Begin().V("loaded ", n, " modules").End()
//
// Width directives are sticky: once set they apply to every subsequent
// insertion on that stream, across statements, until changed or cleared.
// This differs deliberately from one-shot width directives.
//
// # Suppression
//
// Streams toggle on and off. A disabled stream turns the whole statement
// into a no-op: no timestamp is computed and no bytes reach the sink.
// Enable and Disable return scope guards that restore the prior state:
//
//	g := linetrace.Disable(linetrace.Out())
//	defer g.Release()
//
// # Sinks
//
// Streams write through sinks that guarantee line-atomic output under
// concurrent use:
//
//   - Sink: mutex-guarded writer over any io.Writer
//   - RingSink: in-memory circular buffer of the last N lines
//   - MultiSink: fan-out to several sinks
//
// Emission never fails observably; write errors on the underlying
// destination are dropped so that tracing cannot abort the traced code.
package linetrace
