package plotgrid

// FloatSet is a set of float64 values.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSetFrom(init []string) StringSet {
	s := make(StringSet, len(init))
	for _, v := range init {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}
