// Package classifier turns sparse structured device attributes into short
// natural-language fragments, one per declared category.
//
// Classification is pure and total: every attribute lookup has a default,
// a category with no usable signal yields the empty string, and no input
// ever produces an error. Numeric attributes are bucketed with inclusive
// lower and exclusive upper cutoffs, so a value sitting exactly on a
// boundary always lands in the higher bucket.
//
// Handlers are held in a Registry mapping category name to classification
// function, iterated in a fixed declared order. Callers enumerate or extend
// the set through the Registry without changes to the classification code.
package classifier
