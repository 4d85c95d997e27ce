package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minNameWidth     = 12
	minTypeWidth     = 10
	heavySeparator   = "="
	defaultTermWidth = 100
)

// VariableRow represents a single row in the variables table.
type VariableRow struct {
	Name  string
	Type  string
	Count int
}

// TableFormatter formats variable catalogs as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatVariables formats a variable catalog as a styled table.
// Rows keep catalog order, which follows first appearance in the message.
func (t *TableFormatter) FormatVariables(interner *symbol.Interner, vars *message.Variables) string {
	rows := collectVariableRows(interner, vars)
	if len(rows) == 0 {
		return t.styles.Dim.Render("no variables") + "\n"
	}

	nameWidth := minNameWidth
	typeWidth := minTypeWidth
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Type) > typeWidth {
			typeWidth = len(row.Type)
		}
	}

	var builder strings.Builder

	header := fmt.Sprintf(" %-*s  %-*s  %s",
		nameWidth, "NAME",
		typeWidth, "TYPE",
		"USES",
	)
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")

	totalWidth := nameWidth + typeWidth + len("USES") + tablePadding*3
	builder.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth)))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(fmt.Sprintf(" %s  %s  %s\n",
			t.styles.VariableName.Render(fmt.Sprintf("%-*s", nameWidth, row.Name)),
			t.styles.VariableType.Render(fmt.Sprintf("%-*s", typeWidth, row.Type)),
			strconv.Itoa(row.Count),
		))
	}

	return builder.String()
}

// collectVariableRows flattens a catalog into table rows. A variable used
// with several types gets one row per distinct type.
func collectVariableRows(interner *symbol.Interner, vars *message.Variables) []VariableRow {
	if vars == nil {
		return nil
	}

	var rows []VariableRow
	for _, key := range vars.Keys() {
		name, ok := interner.Name(key)
		if !ok {
			continue
		}

		counts := make(map[string]int)
		var typeOrder []string
		for _, instance := range vars.Get(key) {
			typeName := instance.Kind.String()
			if counts[typeName] == 0 {
				typeOrder = append(typeOrder, typeName)
			}
			counts[typeName]++
		}

		for _, typeName := range typeOrder {
			rows = append(rows, VariableRow{
				Name:  name,
				Type:  typeName,
				Count: counts[typeName],
			})
		}
	}

	return rows
}
