package internal

import (
	"encoding/json"
	"fmt"

	"sroireport/internal/domain"

	"github.com/gocarina/gocsv"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

type breakdownCsvRow struct {
	Category       string `csv:"category"`
	DisplayName    string `csv:"display_name"`
	Amount         string `csv:"amount"`
	ShareOfTotal   string `csv:"share_of_total"`
	PercentOfTotal string `csv:"percent_of_total"`
}

// BreakdownCSV renders one row per category, in the same order as the
// report.
func BreakdownCSV(view domain.ReportView) ([]byte, error) {
	rows := []breakdownCsvRow{}
	for _, share := range view.Breakdown {
		rows = append(rows, breakdownCsvRow{
			Category:       string(share.Category),
			DisplayName:    share.DisplayName,
			Amount:         share.Amount.StringFixed(2),
			ShareOfTotal:   fmt.Sprintf("%.4f", share.ShareOfTotal),
			PercentOfTotal: share.PercentOfTotal,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal breakdown csv for %s: %w", view.ID, err)
	}

	return out, nil
}
