// Package vectorindex owns the similarity-search collection lifecycle:
// destroy-and-recreate, batched population, and ranked nearest-neighbor
// queries.
//
// A build is always a full rebuild: Recreate destroys prior contents, so
// re-running a build with fewer records leaves the collection containing
// exactly the new record count, never stale residue. Entry ids are always
// set explicitly from the source records — provider-assigned ids would
// break hydration against the primary store.
//
// The OpenSearch implementation talks to a k-NN enabled cluster; the
// Memory implementation is an exact cosine scan for tests and small
// corpora.
package vectorindex
