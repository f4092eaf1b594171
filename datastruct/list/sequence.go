package list

import "errors"

var (
	ErrorOutOfCapacity = errors.New("out of max capacity")
	ErrorEmpty         = errors.New("sequence is empty")
	ErrorOutIndex      = errors.New("out of index")
)

// Source 随机数来源, 返回 [0, n) 内均匀分布的整数. *rand.Rand 满足该接口
type Source interface {
	Intn(n int) int
}

// Sequence 有序的字符串序列, 支持按位置插入和删除
type Sequence interface {
	AddFirst(value string) error
	AddLast(value string) error
	RemoveFirst() (string, error)
	RemoveLast() (string, error)
	GetFirst() (string, error)
	GetLast() (string, error)
	// Get 获取index位置的数据, 越界返回 ErrorOutIndex
	Get(index int) (string, error)
	// InsertAt 在index位置插入, index <= 0 插入头部, index >= Len() 插入尾部
	InsertAt(index int, value string) error
	// RemoveAt 删除index位置的数据, index <= 0 删除头部, index >= Len()-1 删除尾部
	RemoveAt(index int) (string, error)
	// Shuffle 随机打乱所有元素
	Shuffle(src Source)
	// PickRandom 等概率选取一个元素, 不修改序列
	PickRandom(src Source) (string, error)
	// Len 获取长度
	Len() int
	// ForEach 从头到尾遍历, fun 返回 false 时停止
	ForEach(fun func(value string, index int) bool)
	// Values 返回所有元素的拷贝
	Values() []string
}

// shuffle Fisher-Yates, 每一种排列的概率都是 1/n!
func shuffle(n int, src Source, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
