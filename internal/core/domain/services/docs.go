// Package services contains stateless domain services that operate across
// aggregates, such as the carbon footprint calculator.
package services
