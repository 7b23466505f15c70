package Queues

// ArrayQueue is a Queue backed by a circular slice that grows by half when full.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

var _ Queue[int] = (*ArrayQueue[int])(nil)

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{content: make([]T, initCap)}
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

// resize to newLen>=sz, moving the items to the front.
func (this *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			n := copy(nc, this.content[this.head:])
			copy(nc[n:], this.content[:this.tail])
		}
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

// Shrink the underlying slice to fit the items.
func (this *ArrayQueue[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *ArrayQueue[T]) Size() uint {
	return this.sz
}

func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz + this.sz>>1 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return item, nil
}

func (this *ArrayQueue[T]) Peek() (T, bool) {
	if this.Empty() {
		return *new(T), false
	}
	return this.content[this.head], true
}
