// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (values and wire forms) and contracts (interfaces)
// only; the definitions live in the types and interfaces subpackages and are
// re-exported here for compact imports.
package domain
