package dataset

// Schema declares the columns a pipeline consumes. Required columns must all
// be present for the pipeline to produce output; optional columns are filled
// with an explicit absent marker when missing, so transformation code never
// branches on column existence.
type Schema struct {
	Required []string
	Optional []string
}

// Resolution is the outcome of negotiating a Schema against a Table.
type Resolution struct {
	// Complete is false when one or more required columns are missing.
	Complete bool
	// Missing lists the absent required columns.
	Missing []string
	// Absent marks the optional columns the table does not carry. Reads of
	// an absent column yield the empty value for every row.
	Absent map[string]bool
}

// Negotiate checks the table against the schema.
func (s Schema) Negotiate(t *Table) Resolution {
	res := Resolution{Complete: true, Absent: make(map[string]bool)}
	for _, c := range s.Required {
		if !t.HasColumn(c) {
			res.Complete = false
			res.Missing = append(res.Missing, c)
		}
	}
	for _, c := range s.Optional {
		if !t.HasColumn(c) {
			res.Absent[c] = true
		}
	}
	return res
}
