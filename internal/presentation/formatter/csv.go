package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct {
	out io.Writer
}

func NewCSVFormatter(out io.Writer) *CSVFormatter {
	return &CSVFormatter{out: out}
}

func (f *CSVFormatter) Format(r *Report) error {
	w := csv.NewWriter(f.out)

	headers := []string{
		"Position", "ID", "Name", "Expected (s)", "Elapsed (s)",
		"Remaining (s)", "Overrun (s)", "Status", "Current",
	}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, row := range r.Timers {
		record := []string{
			strconv.Itoa(row.Position),
			row.ID,
			row.Label,
			strconv.Itoa(row.Expected),
			strconv.Itoa(row.Elapsed),
			strconv.Itoa(row.Remaining),
			strconv.Itoa(row.Overrun),
			row.Status,
			strconv.FormatBool(row.Current),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
