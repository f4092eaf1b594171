package list

import "golang.org/x/exp/slices"

var _ Sequence = &ArrayDeque{}

const (
	minCapacity int = 1 << 4
	maxCapacity int = 1 << 30
)

// ArrayDeque 使用切片实现的循环队列，极限容量时 2 ^ 30
// 容量始终是2的幂, 并且至少保留一个空槽, 所以 head == tail 表示队列为空
type ArrayDeque struct {
	head     int
	tail     int
	size     int
	elements []string
}

func NewArrayDeque(items ...string) *ArrayDeque {
	a := NewArrayDequeWithCap(len(items) + 1)
	for _, item := range items {
		_ = a.AddLast(item)
	}
	return a
}

func NewArrayDequeWithCap(c int) *ArrayDeque {
	capacity := calculateCapacity(c - 1)
	return &ArrayDeque{
		head:     0,
		tail:     0,
		size:     0,
		elements: make([]string, capacity),
	}
}

func (a *ArrayDeque) Get(index int) (string, error) {
	if index < 0 || index >= a.Len() {
		return "", ErrorOutIndex
	}
	return a.elements[a.slot(index)], nil
}

func (a *ArrayDeque) Len() int {
	return a.size
}

func (a *ArrayDeque) Cap() int {
	return cap(a.elements)
}

func (a *ArrayDeque) AddFirst(value string) error {
	if err := a.ensureCapacity(); err != nil {
		return err
	}
	a.head = (a.head - 1) & a.mask()
	a.elements[a.head] = value
	a.size++
	return nil
}

func (a *ArrayDeque) AddLast(value string) error {
	if err := a.ensureCapacity(); err != nil {
		return err
	}
	a.elements[a.tail] = value
	a.tail = (a.tail + 1) & a.mask()
	a.size++
	return nil
}

func (a *ArrayDeque) RemoveFirst() (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	result := a.elements[a.head]
	a.elements[a.head] = ""
	a.head = (a.head + 1) & a.mask()
	a.size--
	return result, nil
}

func (a *ArrayDeque) RemoveLast() (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	a.tail = (a.tail - 1) & a.mask()
	result := a.elements[a.tail]
	a.elements[a.tail] = ""
	a.size--
	return result, nil
}

func (a *ArrayDeque) GetFirst() (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	return a.elements[a.head], nil
}

func (a *ArrayDeque) GetLast() (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	return a.elements[(a.tail-1)&a.mask()], nil
}

func (a *ArrayDeque) InsertAt(index int, value string) error {
	if index <= 0 {
		return a.AddFirst(value)
	}
	if index >= a.size {
		return a.AddLast(value)
	}
	if err := a.ensureCapacity(); err != nil {
		return err
	}
	// 移动较短的一侧
	if index < a.size/2 {
		newHead := (a.head - 1) & a.mask()
		for i := 0; i < index; i++ {
			a.elements[(newHead+i)&a.mask()] = a.elements[(newHead+i+1)&a.mask()]
		}
		a.head = newHead
	} else {
		for i := a.size; i > index; i-- {
			a.elements[a.slot(i)] = a.elements[a.slot(i-1)]
		}
		a.tail = (a.tail + 1) & a.mask()
	}
	a.elements[a.slot(index)] = value
	a.size++
	return nil
}

func (a *ArrayDeque) RemoveAt(index int) (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	if index <= 0 {
		return a.RemoveFirst()
	}
	if index >= a.size-1 {
		return a.RemoveLast()
	}
	result := a.elements[a.slot(index)]
	if index < a.size/2 {
		for i := index; i > 0; i-- {
			a.elements[a.slot(i)] = a.elements[a.slot(i-1)]
		}
		a.elements[a.head] = ""
		a.head = (a.head + 1) & a.mask()
	} else {
		for i := index; i < a.size-1; i++ {
			a.elements[a.slot(i)] = a.elements[a.slot(i+1)]
		}
		a.tail = (a.tail - 1) & a.mask()
		a.elements[a.tail] = ""
	}
	a.size--
	return result, nil
}

func (a *ArrayDeque) Shuffle(src Source) {
	shuffle(a.size, src, func(i, j int) {
		si, sj := a.slot(i), a.slot(j)
		a.elements[si], a.elements[sj] = a.elements[sj], a.elements[si]
	})
}

func (a *ArrayDeque) PickRandom(src Source) (string, error) {
	if a.Len() == 0 {
		return "", ErrorEmpty
	}
	return a.elements[a.slot(src.Intn(a.size))], nil
}

func (a *ArrayDeque) ForEach(f func(value string, index int) bool) {
	for i := 0; i < a.Len(); i++ {
		if !f(a.elements[a.slot(i)], i) {
			break
		}
	}
}

func (a *ArrayDeque) Values() []string {
	if a.head <= a.tail {
		return slices.Clone(a.elements[a.head:a.tail])
	}
	values := make([]string, 0, a.size)
	values = append(values, a.elements[a.head:]...)
	return append(values, a.elements[:a.tail]...)
}

// Trim 收缩容量到刚好能容纳现有元素
func (a *ArrayDeque) Trim() {
	newCap := calculateCapacity(a.Len() + 1)
	if a.Cap() == newCap {
		return
	}
	a.resize(newCap)
}

func (a *ArrayDeque) slot(index int) int {
	return (a.head + index) & a.mask()
}

func (a *ArrayDeque) mask() int {
	return a.Cap() - 1
}

// ensureCapacity 保证写入一个元素后仍然有空槽
func (a *ArrayDeque) ensureCapacity() error {
	if a.size+1 < a.Cap() {
		return nil
	}
	newCapacity := a.Cap() << 1
	if newCapacity < 0 || newCapacity > maxCapacity {
		return ErrorOutOfCapacity
	}
	a.resize(newCapacity)
	return nil
}

func (a *ArrayDeque) resize(capacity int) {
	n := a.Len()
	newElements := make([]string, capacity)
	if a.head <= a.tail {
		copy(newElements, a.elements[a.head:a.tail])
	} else {
		r := copy(newElements, a.elements[a.head:])
		copy(newElements[r:], a.elements[:a.tail])
	}
	a.elements = newElements
	a.head = 0
	a.tail = n
}

func calculateCapacity(expected int) int {
	initialCapacity := minCapacity
	if expected > initialCapacity {
		initialCapacity = expected
		initialCapacity |= initialCapacity >> 1
		initialCapacity |= initialCapacity >> 2
		initialCapacity |= initialCapacity >> 4
		initialCapacity |= initialCapacity >> 8
		initialCapacity |= initialCapacity >> 16
		initialCapacity++
		if initialCapacity < 0 || initialCapacity >= maxCapacity {
			initialCapacity = maxCapacity
		}
	}
	return initialCapacity
}
