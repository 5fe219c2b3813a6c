// Package flatfile persists a corpus as plain files: one aggregate JSON
// array for downstream loaders and one human-readable text file per
// document for inspection.
package flatfile
