// Package molit implements the request-building and response-parsing
// pipeline for the apis.data.go.kr open-data gateway: signed query
// construction (the serviceKey is issued pre-encoded and must reach the
// gateway byte-for-byte, so it is never percent-re-encoded), envelope
// validation, normalization of the gateway's one-or-many item shapes into a
// flat record sequence, alias-tolerant field access, and derived statistics.
//
// Every call is request-scoped: a Client is safe for concurrent use and no
// state is shared between calls beyond immutable configuration.
package molit
