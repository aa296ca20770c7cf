package atexit

// blockNode is one link of the chain: a block plus the block that was head
// before this one, i.e. the chronologically older storage. prev is nil only
// for the terminal block.
type blockNode struct {
	entryBlock
	prev *blockNode
}

// blockChain stores registrations in blocks linked newest-first. The terminal
// block lives inside the chain value itself, so a zero blockChain already has
// BlockCapacity usable slots without a single allocation.
type blockChain struct {
	tail blockNode
	head *blockNode

	// alloc obtains storage for one more block; nil means the default Go
	// allocation. Tests swap it to simulate exhaustion.
	alloc func() *blockNode
}

func (c *blockChain) headBlock() *blockNode {
	if c.head == nil {
		c.head = &c.tail
	}
	return c.head
}

// push stores f, growing the chain when the head block is full. It reports
// false when a new block cannot be obtained; in that case no existing
// registration is touched.
func (c *blockChain) push(f finalizer) bool {
	head := c.headBlock()

	if !head.full() {
		head.push(f)
		return true
	}

	next := c.allocate()
	if next == nil {
		return false
	}

	// Link the fresh block in front of the list.
	next.prev = head
	next.push(f)
	c.head = next
	return true
}

func (c *blockChain) allocate() *blockNode {
	if c.alloc != nil {
		return c.alloc()
	}
	return new(blockNode)
}

// runAll visits every registration exactly once in global last-registered-first
// order: each block newest entry first, blocks from the newest back to the
// terminal one. Later registrations always live in a block linked in front of
// the block holding earlier ones, so per-block reversal yields the global
// ordering.
//
// Spent nodes are abandoned as the walk advances. The process is shutting
// down; reclaiming them is dead work.
func (c *blockChain) runAll(capture panicCapture) {
	b := c.headBlock()
	for b != &c.tail {
		b.runAll(capture)

		next := b.prev
		c.head = next
		b = next
	}

	c.tail.runAll(capture)
}
