// Package shelf provides stateless navigation over a hierarchical document
// catalog and a two-level contact directory. Every control rendered by the
// navigator carries an action payload that fully encodes the next view, so no
// per-user session state is kept between interactions.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., inmem/, yaml/, prometheus/).
package shelf

// DefaultPageSize is the number of items shown per page in folder listings
// and search results.
const DefaultPageSize = 10
