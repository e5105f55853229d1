package ingest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsaathi/saathi/internal/ingest"
	"github.com/shopsaathi/saathi/internal/transaction"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseCSV(t *testing.T) {
	csvData := `Txn Date,Item,Qty,Price
2024-01-01,Tea,2,10
2024-01-01,Tea,1,10
2024-01-02,Coffee,3,20
`

	res, err := ingest.DefaultSchema().ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 3)
	assert.Equal(t, 0, res.Skipped)
	assert.False(t, res.PriceEstimated)

	first := res.Transactions[0]
	assert.Equal(t, date(2024, 1, 1), first.Date)
	assert.Equal(t, "Tea", first.Product)
	assert.Equal(t, int64(2), first.Quantity)
	assert.Equal(t, int64(1000), first.UnitPrice)
	assert.Equal(t, int64(2000), first.Revenue())

	// Original file order preserved, no dedup of the two Tea rows.
	assert.Equal(t, "Tea", res.Transactions[1].Product)
	assert.Equal(t, "Coffee", res.Transactions[2].Product)
}

func TestParseCSV_SkipsMalformedRows(t *testing.T) {
	csvData := `date,product,quantity,unit_price
2024-01-01,Tea,abc,10
2024-01-01,Tea,1,ten
2024-01-01,Tea,-2,10
not-a-date,Tea,1,10
2024-01-01,,1,10
2024-01-02,Coffee,3,20
`

	res, err := ingest.DefaultSchema().ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, 5, res.Skipped)
	assert.Equal(t, "Coffee", res.Transactions[0].Product)
}

func TestParseCSV_MissingPriceColumnUsesDefault(t *testing.T) {
	csvData := `date,product,qty
2024-01-01,Tea,2
2024-01-02,Coffee,1
`

	schema := ingest.DefaultSchema()
	schema.DefaultUnitPrice = 500

	res, err := schema.ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.True(t, res.PriceEstimated)
	require.Len(t, res.Transactions, 2)
	assert.Equal(t, int64(500), res.Transactions[0].UnitPrice)
	assert.Equal(t, int64(500), res.Transactions[1].UnitPrice)
}

func TestParseCSV_MissingRequiredColumn(t *testing.T) {
	csvData := `product,qty,price
Tea,2,10
`

	_, err := ingest.DefaultSchema().ParseCSV(strings.NewReader(csvData))

	var schemaErr *ingest.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, ingest.FieldDate, schemaErr.Field)
}

func TestParseCSV_UTF8BOM(t *testing.T) {
	csvData := "\xEF\xBB\xBFdate,product,qty,price\n2024-01-01,Chai,1,12.50\n"

	res, err := ingest.DefaultSchema().ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, int64(1250), res.Transactions[0].UnitPrice)
}

func TestParseCSV_FlexibleDates(t *testing.T) {
	csvData := `date,product,qty,price
2024/01/05,Tea,1,10
05-01-2024,Tea,1,10
`

	res, err := ingest.DefaultSchema().ParseCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, res.Transactions, 2)
	assert.Equal(t, date(2024, 1, 5), res.Transactions[0].Date)
	assert.Equal(t, date(2024, 1, 5), res.Transactions[1].Date)
}

func TestFromRows(t *testing.T) {
	schema := ingest.DefaultSchema()
	schema.DefaultUnitPrice = 100

	rows := []ingest.Row{
		{Date: "2024-01-01", Product: "Tea", Quantity: 2, UnitPrice: "10.00"},
		{Date: "bad", Product: "Tea", Quantity: 1, UnitPrice: "10.00"},
		{Date: "2024-01-01", Product: "", Quantity: 1, UnitPrice: "10.00"},
		{Date: "2024-01-01", Product: "Coffee", Quantity: -1, UnitPrice: "10.00"},
		{Date: "2024-01-02", Product: "Coffee", Quantity: 1, UnitPrice: ""},
	}

	res := schema.FromRows(rows)

	require.Len(t, res.Transactions, 2)
	assert.Equal(t, 3, res.Skipped)
	assert.True(t, res.PriceEstimated)

	assert.Equal(t, transaction.Transaction{
		Date: date(2024, 1, 1), Product: "Tea", Quantity: 2, UnitPrice: 1000,
	}, res.Transactions[0])
	assert.Equal(t, int64(100), res.Transactions[1].UnitPrice)
}
