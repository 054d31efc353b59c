// Package mlsi finds every pairwise crossing among a set of line
// segments, and splits segments at the crossings they participate in.
// Two independent algorithms share one contract: FindSimple is the
// brute-force O(n²) reference; Find is a Bentley-Ottmann sweep that
// visits only actual crossings plus the segments active at each event.
// Both return the same set of incidences modulo ordering, which lets
// Find be validated against FindSimple on arbitrary input.
package mlsi
