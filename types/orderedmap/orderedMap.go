package orderedmap

/*
	Ordered map implementation
	from https://www.tugberkugurlu.com/archive/implementing-ordered-map-in-go-2-0-by-using-generics-with-delete-operation-in-o-1-time-complexity
  	based on
	https://medium.com/swlh/ordered-maps-for-go-using-generics-875ef3816c71
*/
import (
	"container/list"
)

// Iterator walks an OrderedMap in insertion order
type Iterator[K comparable, V any] struct {
	Key     *K
	Value   V
	element *list.Element
}

// OrderedMap keeps key-value pairs in insertion order. Overwriting a key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type keyValue[K comparable, V any] struct {
	key   K
	value V
}

func newIterator[K comparable, V any](element *list.Element) *Iterator[K, V] {
	if element == nil {
		return nil
	}

	kv := element.Value.(*keyValue[K, V])

	return &Iterator[K, V]{
		Key:     &kv.key,
		Value:   kv.value,
		element: element,
	}
}

// Next returns an iterator on the following pair or nil when the end has been reached
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	if it == nil || it.element == nil {
		return nil
	}

	return newIterator[K, V](it.element.Next())
}

// NewOrderedMap creates a new OrderedMap of type K
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set will store a key-value pair. If the key already exists,
// it will overwrite the existing value in place
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value.(*keyValue[K, V]).value = val
		return
	}

	o.store[key] = o.keys.PushBack(&keyValue[K, V]{
		key:   key,
		value: val,
	})
}

// Get will return the value associated with the key.
// If the key doesn't exist, the second return value will be false.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}

	return e.Value.(*keyValue[K, V]).value, true
}

// Delete will remove the key and its associated value.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}

	o.keys.Remove(e)
	delete(o.store, key)
}

// Front returns an iterator pointing to the oldest (inserted-first) pair
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.keys.Front())
}
