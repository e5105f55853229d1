package ingest

import (
	"fmt"
	"strings"
)

// Field is one of the canonical schema slots raw columns are normalized into.
type Field string

const (
	FieldDate      Field = "date"
	FieldProduct   Field = "product"
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unit_price"
)

// fieldOrder fixes the resolution order so header matching is deterministic
// when one raw column could serve more than one canonical field.
var fieldOrder = []Field{FieldDate, FieldProduct, FieldQuantity, FieldUnitPrice}

// requiredFields must resolve to a column; unit_price is optional and falls
// back to the schema default when absent.
var requiredFields = map[Field]bool{
	FieldDate:     true,
	FieldProduct:  true,
	FieldQuantity: true,
}

// Schema describes how raw tables map onto the canonical transaction shape.
type Schema struct {
	// Aliases lists the recognized header names per canonical field,
	// in match priority order.
	Aliases map[Field][]string

	// DefaultUnitPrice (cents) is applied to every row when the source
	// has no unit_price column. The result is then flagged price-estimated.
	DefaultUnitPrice int64
}

// DefaultSchema returns the alias table covering the header variants seen
// in common retail exports.
func DefaultSchema() Schema {
	return Schema{
		Aliases: map[Field][]string{
			FieldDate:      {"date", "order_date", "txn_date", "timestamp"},
			FieldProduct:   {"product", "product_name", "sku", "item"},
			FieldQuantity:  {"quantity", "qty", "units", "count"},
			FieldUnitPrice: {"unit_price", "price", "selling_price", "unitprice"},
		},
	}
}

// SchemaError reports a required column that could not be resolved
// against the alias table. It is fatal to the ingest action.
type SchemaError struct {
	Field Field
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found in header", string(e.Field))
}

// MatchHeader resolves canonical fields to column indices in the raw header.
// Matching is case-insensitive; cells are trimmed and inner whitespace
// collapses to underscores, so "Txn Date" matches the alias "txn_date".
//
// Fields resolve in a fixed order and each header column is claimed at most
// once, first match wins. Absent optional fields are simply missing from
// the returned map.
func (s Schema) MatchHeader(header []string) (map[Field]int, error) {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = headerKey(h)
	}

	claimed := make(map[int]bool, len(cells))
	cols := make(map[Field]int, len(fieldOrder))

	for _, field := range fieldOrder {
		idx := findAlias(s.Aliases[field], cells, claimed)
		if idx < 0 {
			if requiredFields[field] {
				return nil, &SchemaError{Field: field}
			}

			continue
		}

		claimed[idx] = true
		cols[field] = idx
	}

	return cols, nil
}

// findAlias returns the index of the first unclaimed cell matching any
// alias, honoring alias priority order.
func findAlias(aliases []string, cells []string, claimed map[int]bool) int {
	for _, alias := range aliases {
		for i, cell := range cells {
			if claimed[i] || cell != alias {
				continue
			}

			return i
		}
	}

	return -1
}

// headerKey canonicalizes a raw header cell for alias comparison.
func headerKey(cell string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(cell))), "_")
}
