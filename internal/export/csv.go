// Package export renders activities as delimited text.
package export

import (
	"os"
	"strconv"
	"strings"

	"timr/internal/models"
)

// timestampLayout is RFC 3339 with millisecond precision, matching the
// export format downstream spreadsheets expect.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// CSV renders activities as delimited text with a header row. Fields
// containing the delimiter, a quote or a newline are quoted RFC-4180
// style with internal quotes doubled.
func CSV(activities []models.Activity, delimiter string) string {
	rows := make([]string, 0, len(activities)+1)
	header := []string{"id", "start_time", "end_time", "activity_type", "status", "description"}
	rows = append(rows, strings.Join(header, delimiter))

	for _, activity := range activities {
		end := ""
		if activity.EndTime != nil {
			end = activity.EndTime.Format(timestampLayout)
		}
		columns := []string{
			strconv.FormatInt(activity.ID, 10),
			activity.StartTime.Format(timestampLayout),
			end,
			string(activity.Type),
			string(activity.Status),
			escape(activity.Description, delimiter),
		}
		rows = append(rows, strings.Join(columns, delimiter))
	}
	return strings.Join(rows, "\n")
}

// WriteFile writes the CSV rendering of activities to path.
func WriteFile(activities []models.Activity, delimiter, path string) error {
	return os.WriteFile(path, []byte(CSV(activities, delimiter)), 0644)
}

func escape(value, delimiter string) string {
	if strings.Contains(value, delimiter) || strings.Contains(value, "\n") || strings.Contains(value, `"`) {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
