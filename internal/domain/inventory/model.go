package inventory

import "errors"

// ErrNoData — в хранилище нет ни одной строки остатков.
var ErrNoData = errors.New("no inventory data found")

type Quarter int

const (
	Q1 Quarter = iota
	Q2
	Q3
	Q4
)

const NumQuarters = 4

var quarterLabels = [NumQuarters]string{"Q1", "Q2", "Q3", "Q4"}

// Quarters returns Q1..Q4 in their fixed order.
func Quarters() []Quarter { return []Quarter{Q1, Q2, Q3, Q4} }

// ParseQuarter maps a stored label onto its slot. Anything but Q1..Q4 is rejected.
func ParseQuarter(label string) (Quarter, bool) {
	for i, l := range quarterLabels {
		if l == label {
			return Quarter(i), true
		}
	}
	return 0, false
}

func (q Quarter) String() string {
	if q < Q1 || q > Q4 {
		return "Q?"
	}
	return quarterLabels[q]
}

// Quantities is one item's stock per quarter, indexed by Quarter.
type Quantities [NumQuarters]int

func (q Quantities) Sum() int {
	s := 0
	for _, v := range q {
		s += v
	}
	return s
}

func (q Quantities) Min() int {
	m := q[0]
	for _, v := range q[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

type Item struct {
	Name       string
	Quantities Quantities
}

// Record — остатки по позициям в порядке первого появления при загрузке.
type Record struct {
	order []string
	items map[string]Quantities
}

func NewRecord() *Record {
	return &Record{items: map[string]Quantities{}}
}

// Set stores qty in the quarter slot of name; unseen names start from zeros.
func (r *Record) Set(name string, q Quarter, qty int) {
	v, ok := r.items[name]
	if !ok {
		r.order = append(r.order, name)
	}
	v[q] = qty
	r.items[name] = v
}

func (r *Record) Get(name string) (Quantities, bool) {
	v, ok := r.items[name]
	return v, ok
}

func (r *Record) Len() int { return len(r.order) }

// Items returns a copy of the record in load order.
func (r *Record) Items() []Item {
	out := make([]Item, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, Item{Name: n, Quantities: r.items[n]})
	}
	return out
}
