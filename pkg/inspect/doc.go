// Package inspect reports how the form classifiers see each node of a schema
// tree, which is handy when a form renders differently than expected.
package inspect
