package format

import (
	"fmt"
	"io"
	"time"

	"github.com/cristianoliveira/jobdeck/internal/domain"
	"github.com/cristianoliveira/jobdeck/internal/storage/sqlite"
)

// FormatStats writes item counts per collection followed by the recent import runs.
func FormatStats(w io.Writer, counts map[domain.Kind]int, runs []sqlite.ImportRun) error {
	total := 0
	for _, kind := range domain.Kinds {
		total += counts[kind]
	}
	if total == 0 {
		if _, err := fmt.Fprintln(w, "No items stored"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "Stored items: %d\n", total); err != nil {
			return err
		}
		for _, kind := range domain.Kinds {
			if _, err := fmt.Fprintf(w, "  %-13s %d\n", kind.String()+":", counts[kind]); err != nil {
				return err
			}
		}
	}

	if len(runs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Recent imports:"); err != nil {
		return err
	}
	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "  %s  %-13s %4d  %s  %s\n",
			run.CreatedAt.Local().Format(time.DateTime), run.Kind, run.ItemCount, run.Source, run.ID); err != nil {
			return err
		}
	}
	return nil
}
