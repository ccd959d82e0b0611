package finance

import (
	"encoding/csv"
	"io"

	"github.com/manav03panchal/zenith/internal/model"
)

// CSVHeader is the first row of a transaction export.
var CSVHeader = []string{"ID", "Date", "Type", "Category", "Description", "Amount"}

// WriteCSV writes the header followed by one row per transaction in store order.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		if err := writer.Write([]string{
			tx.ID,
			tx.Date,
			string(tx.Kind),
			string(tx.Category),
			tx.Description,
			tx.Amount.String(),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
