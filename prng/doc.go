// Package prng implements the small linear-congruential generator used by
// cross-language benchmark suites:
//
//	m = (m*1309 + 13849) & 65535
//
// For a fixed seed the sequence is bit-exact and platform independent, so a
// benchmark seeded here produces the same workload as its ports in other
// languages. The default seed is 74755.
//
// The generator is NOT cryptographically secure and NOT safe for concurrent
// use: give each goroutine its own Generator.
package prng
