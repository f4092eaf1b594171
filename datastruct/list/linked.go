package list

import "container/list"

var _ Sequence = &Linked{}

// Linked 基于双向链表的实现, 按位置插入/删除需要 O(n) 的遍历, 拼接本身是 O(1)
type Linked struct {
	list *list.List
}

func NewLinked(items ...string) *Linked {
	l := &Linked{
		list: list.New(),
	}
	for _, item := range items {
		l.list.PushBack(item)
	}
	return l
}

func (l *Linked) AddFirst(value string) error {
	l.list.PushFront(value)
	return nil
}

func (l *Linked) AddLast(value string) error {
	l.list.PushBack(value)
	return nil
}

func (l *Linked) RemoveFirst() (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	return l.list.Remove(l.list.Front()).(string), nil
}

func (l *Linked) RemoveLast() (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	return l.list.Remove(l.list.Back()).(string), nil
}

func (l *Linked) GetFirst() (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	return l.list.Front().Value.(string), nil
}

func (l *Linked) GetLast() (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	return l.list.Back().Value.(string), nil
}

func (l *Linked) Get(index int) (string, error) {
	if index < 0 || index >= l.Len() {
		return "", ErrorOutIndex
	}
	return l.element(index).Value.(string), nil
}

func (l *Linked) InsertAt(index int, value string) error {
	if index <= 0 {
		return l.AddFirst(value)
	}
	if index >= l.Len() {
		return l.AddLast(value)
	}
	l.list.InsertBefore(value, l.element(index))
	return nil
}

func (l *Linked) RemoveAt(index int) (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	if index <= 0 {
		return l.RemoveFirst()
	}
	if index >= l.Len()-1 {
		return l.RemoveLast()
	}
	return l.list.Remove(l.element(index)).(string), nil
}

// Shuffle 只交换节点上的值, 节点本身不动
func (l *Linked) Shuffle(src Source) {
	if l.Len() < 2 {
		return
	}
	nodes := make([]*list.Element, 0, l.Len())
	for e := l.list.Front(); e != nil; e = e.Next() {
		nodes = append(nodes, e)
	}
	shuffle(len(nodes), src, func(i, j int) {
		nodes[i].Value, nodes[j].Value = nodes[j].Value, nodes[i].Value
	})
}

func (l *Linked) PickRandom(src Source) (string, error) {
	if l.Len() == 0 {
		return "", ErrorEmpty
	}
	return l.element(src.Intn(l.Len())).Value.(string), nil
}

func (l *Linked) Len() int {
	return l.list.Len()
}

func (l *Linked) ForEach(fun func(value string, index int) bool) {
	i := 0
	for e := l.list.Front(); e != nil; e = e.Next() {
		if !fun(e.Value.(string), i) {
			break
		}
		i++
	}
}

func (l *Linked) Values() []string {
	values := make([]string, 0, l.Len())
	for e := l.list.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(string))
	}
	return values
}

// element 从离index较近的一端开始查找, 调用方保证 0 <= index < Len()
func (l *Linked) element(index int) *list.Element {
	n := l.Len()
	if index < n/2 {
		e := l.list.Front()
		for i := 0; i < index; i++ {
			e = e.Next()
		}
		return e
	}
	e := l.list.Back()
	for i := n - 1; i > index; i-- {
		e = e.Prev()
	}
	return e
}
