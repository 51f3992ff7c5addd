// Package warehouse implements the Warehouse aggregate.
//
// A warehouse is a physical fulfilment unit at a known location, identified
// by its business-unit code. The aggregate models the soft-delete lifecycle:
// a warehouse is active until its archive timestamp is stamped, and every
// "active" query in the system is a filter on that state. Replacement of a
// warehouse reuses the business-unit code: the old record is archived and a
// new active record is created under the same code.
package warehouse
