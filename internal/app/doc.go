// Package app provides the application services of a report run: the
// interpreter that applies a command stream to an entity store, the reporter
// that derives each company's dominant partner, and the run service that ties
// both to a fresh store per batch.
package app
