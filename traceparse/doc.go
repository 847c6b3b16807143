// Package traceparse reads and writes the linetrace wire format:
//
//	<tag>,<YYMMDD>,<HHMMSS>,<MMM>: <body>
//
// It is the consumer side of the format: tools that filter, tally or
// archive trace logs parse lines into Records, and can re-emit them
// byte-identically or store them as compact msgpack archives.
package traceparse
