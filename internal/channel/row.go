package channel

// Cell is one named column value in a ledger row.
type Cell struct {
	Name  string
	Value string
}

// Row is an ordered set of cells. Order matters: when a sheet is created
// on first write, its header row is derived from the cell order of the
// first row it receives.
type Row []Cell

// Headers returns the column names in row order.
func (r Row) Headers() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Name
	}
	return out
}

// Values returns the cell values in row order.
func (r Row) Values() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = c.Value
	}
	return out
}

// Get returns the value of the named cell, or "" if absent.
func (r Row) Get(name string) string {
	for _, c := range r {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
