// Package fulfillment implements the fulfillment Assignment entity: the
// link stating that a warehouse fulfills a product for a store.
//
// Three cardinality limits govern assignments:
//   - a product at a store is fulfilled by at most 2 distinct warehouses
//   - a store is fulfilled by at most 3 distinct warehouses
//   - a warehouse stores at most 5 distinct products
//
// The limits apply to distinct warehouses and distinct products, not to raw
// assignment rows; the policy predicates live in the domain services package.
package fulfillment
