// Package registry provides the read-only lookup table of binding
// descriptors consumed by the binding generator's emission phase.
//
// The Registry is populated once at startup from the format-agnostic
// config model and then validated to ensure every descriptor honours the
// schema invariants (known abstract types, exactly one placeholder per
// template, a present imports list). After validation it is never mutated,
// so any number of readers may call Lookup concurrently without locking.
package registry
