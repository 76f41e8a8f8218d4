package validator

// Row is one data row of a CSV file: the file's header list plus this
// row's header→value mapping. Headers keep file column order; a duplicated
// header keeps the last value on that row. Rows are built per record,
// never mutated, and discarded after validation.
type Row struct {
	headers []string
	values  map[string]string
}

// newRow pairs a record's fields with the file headers by position.
func newRow(headers, record []string) Row {
	values := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(record) {
			values[h] = record[i]
		}
	}
	return Row{headers: headers, values: values}
}

// Has reports whether the header exists in this row's file.
func (r Row) Has(header string) bool {
	_, ok := r.values[header]
	return ok
}

// Get returns the value under header, or "" when the header is absent.
func (r Row) Get(header string) string {
	return r.values[header]
}
