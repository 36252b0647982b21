// Package domain contains the core domain model for lumen.
//
// The domain is transport- and persistence-agnostic: it does not depend on the
// Stellar SDK, YAML parsing, net/http, or the filesystem. Infra/adapters map
// into/from these types.
package domain
