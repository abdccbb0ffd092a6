package order

var seedBiltis = []Bilti{
	{
		ID:          "1",
		BiltiNo:     "BL001",
		BiltiMiti:   "2024-03-10",
		Origin:      "Delhi",
		Destination: "Mumbai",
		Status:      "Created",
		PayMode:     "Due",
		BillTo:      "Consignor",
		Items: []Item{
			{Description: "Electronics", Unit: "Box", Packages: 5, Rate: 1000, Amount: 5000},
		},
		Calculations: Calculations{Freight: 5000, VATPercentage: 13, VATAmount: 650, TotalAmount: 5650},
	},
	{
		ID:          "2",
		BiltiNo:     "BL002",
		BiltiMiti:   "2024-03-09",
		Origin:      "Mumbai",
		Destination: "Bangalore",
		Status:      "In Transit",
		PayMode:     "Paid",
		BillTo:      "Consignee",
		Items: []Item{
			{Description: "Furniture", Unit: "Piece", Packages: 3, Rate: 2000, Amount: 6000},
		},
		Calculations: Calculations{Freight: 6000, VATPercentage: 13, VATAmount: 780, TotalAmount: 6780},
	},
}

// Seed returns the records a fresh store starts with.
func Seed() []Order {
	out := make([]Order, 0, len(seedBiltis))
	for _, b := range seedBiltis {
		o, err := b.Document()
		if err != nil {
			panic(err)
		}
		out = append(out, o)
	}
	return out
}
