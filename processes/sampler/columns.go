package sampler

import "github.com/artie-labs/sampler/models"

const (
	GrossIncomeColumn      = "Gross Income"
	PercentageChangeColumn = "Percentage Change in Net Income"
	TotalChangeColumn      = "Total Change in Net Income"
)

type column struct {
	name string
	key  string
	set  func(item *models.Item, value *float64)
}

// columns is the projection from the input header to the sample item, in output order.
var columns = []column{
	{
		name: GrossIncomeColumn,
		key:  "income",
		set:  func(item *models.Item, value *float64) { item.Income = value },
	},
	{
		name: PercentageChangeColumn,
		key:  "pct_change",
		set:  func(item *models.Item, value *float64) { item.PctChange = value },
	},
	{
		name: TotalChangeColumn,
		key:  "net_change",
		set:  func(item *models.Item, value *float64) { item.NetChange = value },
	},
}

func RequiredColumns() []string {
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.name
	}
	return names
}
