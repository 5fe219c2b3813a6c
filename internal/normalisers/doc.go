// Package normalisers holds the shared text-rendering helpers connectors use
// to turn structured upstream records into document content.
package normalisers
