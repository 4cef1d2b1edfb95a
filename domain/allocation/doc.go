// Package allocation picks the cheapest providers that together cover a
// requested quantity.
//
// Entries are laid out on a price ladder: one FIFO level per distinct price,
// kept in a btree. Selection walks the ladder from the cheapest level the way
// a market buy walks the ask side of a book, taking whole entries until the
// demand is met or the ladder is empty.
package allocation
