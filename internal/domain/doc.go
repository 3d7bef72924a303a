// Package domain contains shared domain types used across the relationship
// sub-packages. Entity types live in domain/graph, the parsed command sum type
// in domain/command, and report selection and formatting in domain/report.
// This root package holds sentinel errors and the typed error carriers that
// every layer wraps and inspects with errors.Is and errors.As.
package domain
