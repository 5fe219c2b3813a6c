package domain

// FetchResult is the outcome of one request key.
// Exactly one of Documents or Err is meaningful: a failed key carries
// no documents, a successful key carries one or more.
type FetchResult struct {
	// Index is the 1-based position of the key in the request list.
	Index int

	// Total is the number of keys in the request list.
	Total int

	// Key is the request key (topic, country name, subject tag).
	Key string

	// Documents holds the documents built from the response.
	Documents []Document

	// Err is the failure for this key, wrapped in a *FetchError.
	Err error
}

// Ok reports whether the key produced documents.
func (r FetchResult) Ok() bool {
	return r.Err == nil
}

// Successful flattens the documents of all Ok results, preserving order.
func Successful(results []FetchResult) []Document {
	var docs []Document
	for i := range results {
		if results[i].Ok() {
			docs = append(docs, results[i].Documents...)
		}
	}
	return docs
}

// Failures returns the errors of all failed results, preserving order.
func Failures(results []FetchResult) []error {
	var errs []error
	for i := range results {
		if !results[i].Ok() {
			errs = append(errs, results[i].Err)
		}
	}
	return errs
}
