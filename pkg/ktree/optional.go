package ktree

// Optional is a tree slot value. The zero Optional is absent, which in a
// tree marks a hole.
type Optional[V any] struct {
	value   V
	present bool
}

func Some[V any](value V) Optional[V] {
	return Optional[V]{value: value, present: true}
}

func None[V any]() Optional[V] {
	return Optional[V]{}
}

func (o Optional[V]) Get() (V, bool) {
	return o.value, o.present
}

func (o Optional[V]) IsPresent() bool {
	return o.present
}

// Values wraps every element of values as present.
func Values[V any](values ...V) []Optional[V] {
	opts := make([]Optional[V], len(values))
	for i, v := range values {
		opts[i] = Some(v)
	}
	return opts
}
