package export

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
)

// ReportColumn is the single column used for reports that are not objects
const ReportColumn = "Report"

// Table is a flattened report: a header and rows of cell text
type Table struct {
	Columns []string
	Rows    [][]string
}

// Flatten turns an arbitrary report value into rows.
//
//   - object: one row per index up to the longest list field; scalar fields
//     only in row 0 and blank below
//   - list of objects: one row per object
//   - any other list: one Report cell per item
//   - anything else: a single Report cell
func Flatten(report interface{}) Table {
	switch v := report.(type) {
	case entities.Report:
		return flattenObject(v)
	case map[string]interface{}:
		return flattenObject(v)
	case []interface{}:
		return flattenList(v)
	case nil:
		return Table{Columns: []string{ReportColumn}, Rows: [][]string{{""}}}
	default:
		return Table{Columns: []string{ReportColumn}, Rows: [][]string{{cellText(v)}}}
	}
}

func flattenObject(obj map[string]interface{}) Table {
	if len(obj) == 0 {
		return Table{}
	}

	columns := orderColumns(obj)
	// a list counts its items, anything else counts as one
	rowCount := 0
	for _, v := range obj {
		n := 1
		if list, ok := v.([]interface{}); ok {
			n = len(list)
		}
		if n > rowCount {
			rowCount = n
		}
	}

	rows := make([][]string, rowCount)
	for i := range rows {
		row := make([]string, len(columns))
		for c, key := range columns {
			switch v := obj[key].(type) {
			case []interface{}:
				if i < len(v) {
					row[c] = cellText(v[i])
				}
			default:
				if i == 0 {
					row[c] = cellText(v)
				}
			}
		}
		rows[i] = row
	}
	return Table{Columns: columns, Rows: rows}
}

func flattenList(list []interface{}) Table {
	if len(list) == 0 {
		return Table{}
	}

	objects := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			objects = nil
			break
		}
		objects = append(objects, obj)
	}

	if objects == nil {
		rows := make([][]string, len(list))
		for i, item := range list {
			rows[i] = []string{cellText(item)}
		}
		return Table{Columns: []string{ReportColumn}, Rows: rows}
	}

	// Columns come from the first row only
	columns := orderColumns(objects[0])
	rows := make([][]string, len(objects))
	for i, obj := range objects {
		row := make([]string, len(columns))
		for c, key := range columns {
			if v, ok := obj[key]; ok {
				row[c] = cellText(v)
			}
		}
		rows[i] = row
	}
	return Table{Columns: columns, Rows: rows}
}

// orderColumns puts the fixed report fields first in schema order and the
// remaining keys alphabetically
func orderColumns(obj map[string]interface{}) []string {
	columns := make([]string, 0, len(obj))
	known := make(map[string]bool, len(entities.ReportFields))
	for _, f := range entities.ReportFields {
		known[f] = true
		if _, ok := obj[f]; ok {
			columns = append(columns, f)
		}
	}

	rest := make([]string, 0, len(obj))
	for k := range obj {
		if !known[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(columns, rest...)
}

func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64, bool, json.Number:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
