package content

import "github.com/leapstack-labs/analystdemo/pkg/core"

// SampleCustomerCounts is the result shown for "which countries have the most customers".
var SampleCustomerCounts = core.NewSampleTable(
	"Customer Count by Country",
	[]string{"Rank", "Country", "Customers", "Total Sales"},
	core.Row{core.Num(1), core.Str("United States"), core.Num(5420), core.Str("$1,250,890.75")},
	core.Row{core.Num(2), core.Str("India"), core.Num(3890), core.Str("$980,230.50")},
	core.Row{core.Num(3), core.Str("Egypt"), core.Num(2110), core.Str("$520,450.00")},
)

// SampleTopCustomers is the result shown for "top customers by total sales".
var SampleTopCustomers = core.NewSampleTable(
	"Top Customers",
	[]string{"Customer ID", "Name", "City", "Total Sales"},
	core.Row{core.Num(110913), core.Str("Anna Sanchez"), core.Str("Boston"), core.Str("$3,302.00")},
	core.Row{core.Num(130576), core.Str("Grace Kline"), core.Str("Mumbai"), core.Str("$2,809.50")},
	core.Row{core.Num(90298), core.Str("Dahlia Buchanan"), core.Str("Cairo"), core.Str("$1,745.75")},
)

// exampleQueries lists the walkthrough examples in display order.
var exampleQueries = []core.ExampleQuery{
	{
		Question: "How many customers are in our loyalty program?",
		SQL:      "SELECT COUNT(DISTINCT customer_id) FROM customer_loyalty_metrics_v",
		Result:   "11,420 customers",
	},
	{
		Question: "Which countries have the most customers?",
		SQL:      "SELECT country, COUNT(DISTINCT customer_id) FROM customer_loyalty_metrics_v GROUP BY country ORDER BY COUNT(DISTINCT customer_id) DESC",
		Result:   "See table below",
	},
	{
		Question: "Show me the top 5 customers by total sales",
		SQL:      "SELECT customer_id, first_name, last_name, city, total_sales FROM customer_loyalty_metrics_v ORDER BY total_sales DESC LIMIT 5",
		Result:   "See table below",
	},
	{
		Question: "What's the total sales by country?",
		SQL:      "SELECT country, SUM(total_sales) FROM customer_loyalty_metrics_v GROUP BY country ORDER BY SUM(total_sales)",
		Result:   "See results in table",
	},
}

// ExampleQueries returns a copy of the example queries in display order.
func ExampleQueries() []core.ExampleQuery {
	return append([]core.ExampleQuery(nil), exampleQueries...)
}
