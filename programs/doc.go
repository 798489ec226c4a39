// Package programs holds the demonstration programs for the console: the
// printf feature tour, a prime factoriser and an RC4 self-test and hash.
//
// Every program writes only through a format.Emitter, so the same code runs
// on the host, natively through the guest package, or inside a wasip1 guest.
package programs
