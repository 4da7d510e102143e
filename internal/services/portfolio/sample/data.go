package sample

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

func defaultSummary() Summary {
	return Summary{
		TotalValue:         125000,
		DailyChange:        1250,
		DailyChangePercent: 1.01,
		Allocation: []Allocation{
			{Asset: "Stocks", Value: 70000},
			{Asset: "Bonds", Value: 30000},
			{Asset: "Cash", Value: 25000},
		},
	}
}

func defaultHoldings() []Holding {
	holdings := []Holding{
		{Symbol: "AAPL", Name: "Apple Inc.", Shares: 100, AveragePrice: 150.00, CurrentPrice: 170.50},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Shares: 40, AveragePrice: 285.10, CurrentPrice: 327.89},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Shares: 25, AveragePrice: 128.40, CurrentPrice: 138.21},
		{Symbol: "AMZN", Name: "Amazon.com, Inc.", Shares: 30, AveragePrice: 142.75, CurrentPrice: 129.12},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Shares: 12, AveragePrice: 412.00, CurrentPrice: 457.62},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Shares: 35, AveragePrice: 165.30, CurrentPrice: 156.80},
		{Symbol: "V", Name: "Visa Inc.", Shares: 20, AveragePrice: 231.50, CurrentPrice: 241.13},
		{Symbol: "KO", Name: "The Coca-Cola Company", Shares: 60, AveragePrice: 58.20, CurrentPrice: 56.41},
		{Symbol: "INTC", Name: "Intel Corporation", Shares: 80, AveragePrice: 45.00, CurrentPrice: 35.20},
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Shares: 50, AveragePrice: 198.60, CurrentPrice: 214.35},
		{Symbol: "BND", Name: "Vanguard Total Bond Market ETF", Shares: 150, AveragePrice: 74.90, CurrentPrice: 70.12},
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Shares: 45, AveragePrice: 96.30, CurrentPrice: 110.45},
	}
	slices.SortFunc(holdings, func(a, b Holding) int { return strings.Compare(a.Symbol, b.Symbol) })
	return holdings
}

func defaultTransactions() []Transaction {
	trades := []struct {
		date   string
		side   TransactionType
		symbol string
		shares float64
		price  float64
	}{
		{"2023-10-01", Buy, "AAPL", 10, 170.50},
		{"2023-09-27", Buy, "MSFT", 5, 312.79},
		{"2023-09-22", Sell, "INTC", 20, 36.04},
		{"2023-09-18", Buy, "VTI", 10, 212.40},
		{"2023-09-12", Buy, "BND", 50, 70.88},
		{"2023-09-05", Sell, "KO", 15, 58.10},
		{"2023-08-30", Buy, "NVDA", 4, 487.84},
		{"2023-08-24", Buy, "GOOGL", 10, 132.37},
	}
	out := make([]Transaction, 0, len(trades))
	for i, trade := range trades {
		date, err := time.Parse(time.DateOnly, trade.date)
		if err != nil {
			panic("sample: bad transaction date " + trade.date)
		}
		out = append(out, Transaction{
			ID:     "txn-" + strconv.Itoa(len(trades)-i),
			Date:   date,
			Type:   trade.side,
			Symbol: trade.symbol,
			Shares: trade.shares,
			Price:  trade.price,
		})
	}
	slices.SortStableFunc(out, func(a, b Transaction) int { return b.Date.Compare(a.Date) })
	return out
}
