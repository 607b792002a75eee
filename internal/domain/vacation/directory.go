package vacation

import "sort"

// Directory is the employee and manager registry. Entries are seeded at
// startup and immutable afterwards; manager membership is the only
// capability check in the system.
type Directory struct {
	employees map[int]Employee
	managers  map[int]Manager
}

func NewDirectory(employees []Employee, managers []Manager) *Directory {
	d := &Directory{
		employees: make(map[int]Employee, len(employees)),
		managers:  make(map[int]Manager, len(managers)),
	}
	for _, e := range employees {
		d.employees[e.ID] = e
	}
	for _, m := range managers {
		d.managers[m.ID] = m
	}
	return d
}

func (d *Directory) Employee(id int) (Employee, bool) {
	e, ok := d.employees[id]
	return e, ok
}

func (d *Directory) IsManager(id int) bool {
	_, ok := d.managers[id]
	return ok
}

// Employees returns all registered employees ordered by id.
func (d *Directory) Employees() []Employee {
	out := make([]Employee, 0, len(d.employees))
	for _, e := range d.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
