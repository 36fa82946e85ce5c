package csv

import (
	"bytes"
	"encoding/csv"
)

type Record interface {
	CSV() []string
}

type FilterFunc[T Record] func(T) bool

// Create renders header and the records kept by filter. A nil filter keeps
// every record.
func Create[T Record](header []string, records []T, filter FilterFunc[T]) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range records {
		if filter == nil || filter(r) {
			if err := w.Write(r.CSV()); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
