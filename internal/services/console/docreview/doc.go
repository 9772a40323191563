// Package docreview holds the review rules shared by identity and vehicle
// documents: status aggregation, decision validation and the in-flight
// fence that keeps a document to one decision at a time.
package docreview
