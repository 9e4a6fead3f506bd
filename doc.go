// Package benchkit collects the small numeric utilities shared by the
// cross-language benchmark drivers.
//
// Under the hood, everything is organized under two packages and a driver:
//
//	matrix/       - generic row-major Matrix[T], Transposed[T] view, Sum
//	prng/         - the reference LCG (m = (m*1309 + 13849) & 65535) and Value projections
//	cmd/randmat/  - driver that fills matrices from the generator and prints them
//
// Both packages are leaf utilities with no I/O and no internal locking; the
// driver owns logging and configuration.
//
//	go get github.com/katalvlaran/benchkit
package benchkit
