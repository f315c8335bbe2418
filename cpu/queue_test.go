package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFifoOrder(t *testing.T) {
	var q microOpQueue
	var order []int
	for n := 0; n < 3; n++ {
		n := n
		q.enqueue(func(*Cpu) { order = append(order, n) })
	}
	for !q.isEmpty() {
		q.dequeue()(nil)
	}
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestQueueInsertFrontRunsBeforeEnqueued(t *testing.T) {
	var q microOpQueue
	var order []string
	q.enqueue(func(*Cpu) { order = append(order, "enqueued") })
	q.insertFront(func(*Cpu) { order = append(order, "front") })
	for !q.isEmpty() {
		q.dequeue()(nil)
	}
	assert.Equal(t, []string{"front", "enqueued"}, order)
}

func TestQueueFrontAndRear(t *testing.T) {
	var q microOpQueue
	assert.Nil(t, q.front())
	assert.Nil(t, q.rear())

	q.enqueue(func(*Cpu) {})
	q.enqueue(func(*Cpu) {})
	assert.NotNil(t, q.front())
	assert.NotNil(t, q.rear())
}

func TestQueueIsFullAtCapacity(t *testing.T) {
	var q microOpQueue
	for i := 0; i < queueCapacity; i++ {
		assert.False(t, q.isFull())
		q.enqueue(func(*Cpu) {})
	}
	assert.True(t, q.isFull())

	// Enqueueing past capacity is silently dropped, not a panic.
	q.enqueue(func(*Cpu) {})
	assert.True(t, q.isFull())
}

func TestQueueClearResetsState(t *testing.T) {
	var q microOpQueue
	q.enqueue(func(*Cpu) {})
	q.insertFront(func(*Cpu) {})
	q.clear()
	assert.True(t, q.isEmpty())
	assert.Nil(t, q.front())
}

func TestQueueWrapsAroundRingBuffer(t *testing.T) {
	var q microOpQueue
	for i := 0; i < queueCapacity-1; i++ {
		q.enqueue(func(*Cpu) {})
	}
	for i := 0; i < queueCapacity-1; i++ {
		q.dequeue()
	}
	assert.True(t, q.isEmpty())

	var seen []int
	for n := 0; n < 4; n++ {
		n := n
		q.enqueue(func(*Cpu) { seen = append(seen, n) })
	}
	for !q.isEmpty() {
		q.dequeue()(nil)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}
