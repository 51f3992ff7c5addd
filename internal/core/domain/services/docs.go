// Package services contains stateless domain services: business rules that
// span aggregates and do not belong to any single entity. The fulfillment
// policy holds the cardinality predicates applied when a warehouse is linked
// to a product and a store.
package services
