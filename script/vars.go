package script

import "sort"

// Vars is the flat integer symbol table of one script run. Loop variables
// share the namespace and keep their last value after the loop.
type Vars struct {
	values map[string]int
}

func NewVars() *Vars {
	return &Vars{values: make(map[string]int)}
}

func (v *Vars) Get(name string) (int, bool) {
	if v == nil {
		return 0, false
	}
	val, ok := v.values[name]
	return val, ok
}

func (v *Vars) Set(name string, value int) {
	v.values[name] = value
}

func (v *Vars) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}

// Snapshot copies the current values.
func (v *Vars) Snapshot() map[string]int {
	out := make(map[string]int, v.Len())
	if v == nil {
		return out
	}
	for k, val := range v.values {
		out[k] = val
	}
	return out
}

// Names returns the variable names in sorted order.
func (v *Vars) Names() []string {
	if v == nil {
		return nil
	}
	names := make([]string, 0, len(v.values))
	for k := range v.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
