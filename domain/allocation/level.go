package allocation

import "supplyfinder/domain/supply"

type node struct {
	entry supply.ShopEntry
	next  *node
}

// level is a FIFO queue of entries sharing a single price. Insertion order
// is discovery order, which is what breaks price ties.
type level struct {
	price float64

	head *node
	tail *node

	totalQty int64
	count    int
}

func (l *level) enqueue(e supply.ShopEntry) {
	n := &node{entry: e}
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.totalQty += e.Stock.Quantity
	l.count++
}

func (l *level) popHead() (supply.ShopEntry, bool) {
	n := l.head
	if n == nil {
		return supply.ShopEntry{}, false
	}

	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil

	l.totalQty -= n.entry.Stock.Quantity
	l.count--

	return n.entry, true
}

func (l *level) empty() bool {
	return l.head == nil
}
