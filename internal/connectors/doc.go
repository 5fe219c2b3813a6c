// Package connectors provides implementations of the Connector interface
// for the public data sources feeding the corpus. Each connector knows how
// to call one upstream API and normalise its responses into documents.
//
// Shared plumbing lives in the httpapi (JSON client and per-key loop) and
// ratelimit (fixed post-call hold) subpackages.
package connectors
