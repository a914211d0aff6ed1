package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

const maxXLSRows = 10000

// XLSText reads a legacy Excel workbook and renders the first sheet as
// tab-separated text, one row per line. Tab is chosen so the column
// detector recognizes the rows as delimited.
func XLSText(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", fmt.Errorf("error creating workbook: %w", err)
	}

	var b strings.Builder
	for _, row := range wb.ReadAllCells(maxXLSRows) {
		line := strings.TrimRight(strings.Join(row, "\t"), "\t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}
