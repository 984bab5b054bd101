package cache

// lruNode is a node in a doubly-linked LRU list. The node stores its key so
// eviction can delete from the parent map in O(1).
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList is a doubly-linked list ordered from most (head) to least (tail)
// recently used. It is not thread-safe; the owning shard synchronizes.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

func newLRUList[K comparable]() *lruList[K] { return &lruList[K]{} }

// pushFront adds a new node at the front and returns it for later access.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// moveToFront marks an existing node most recently used.
func (l *lruList[K]) moveToFront(node *lruNode[K]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// remove unlinks a node from the list.
func (l *lruList[K]) remove(node *lruNode[K]) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// removeOldest removes and returns the key of the least recently used node.
func (l *lruList[K]) removeOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
