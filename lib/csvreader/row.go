package csvreader

type Row struct {
	values      []string
	columnIndex map[string]int
}

// Get returns the raw value for the column. Columns that are not in the header, or are missing from a short row, return false.
func (r Row) Get(column string) (string, bool) {
	index, ok := r.columnIndex[column]
	if !ok || index >= len(r.values) {
		return "", false
	}

	return r.values[index], true
}
