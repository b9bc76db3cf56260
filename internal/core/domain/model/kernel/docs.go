// Package kernel contains shared value objects used across the domain model.
// It provides UUID identifiers and Money amounts as immutable, validated
// types so that aggregates never carry raw primitives for these concerns.
package kernel
