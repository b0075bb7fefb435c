package catalog

// standards is the full reference dataset. It is built once at process start
// and never mutated; Standards() is the only way in.
//
// Order matters: listing and search walk this slice top to bottom, and the
// per-standard Documents slices, in the order written here.
var standards = []Standard{
	{
		Name:            "ANSI X12 (North American Standard)",
		LatestVersion:   "6030",
		Region:          "North America",
		GoverningBody:   "ANSI",
		YearEstablished: 1979,
		Documents: []Document{
			{
				Code:            "204",
				Name:            "Motor Carrier Load Tender",
				Description:     "A transportation order for shipping goods between locations",
				CommonVersions:  []string{"4010", "4030", "5010", "6030"},
				Industries:      []Industry{Logistics, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Shipper → Carrier",
			},
			{
				Code:            "210",
				Name:            "Motor Carrier Freight Details and Invoice",
				Description:     "Detailed freight invoice from carrier to shipper",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Logistics},
				Direction:       Inbound,
				TransactionFlow: "Carrier → Shipper",
			},
			{
				Code:            "810",
				Name:            "Invoice",
				Description:     "Electronic invoice document for billing purposes",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Retail, Manufacturing, Healthcare},
				Direction:       Both,
				TransactionFlow: "Supplier → Buyer or Service Provider → Client",
			},
			{
				Code:            "820",
				Name:            "Payment Order/Remittance Advice",
				Description:     "Electronic funds transfer payment information",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Finance, Retail, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Payer → Payee",
			},
			{
				Code:            "834",
				Name:            "Benefit Enrollment and Maintenance",
				Description:     "Health insurance enrollment information exchange",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Healthcare},
				Direction:       Both,
				TransactionFlow: "Employer → Insurance Carrier or Government Agency → Provider",
			},
			{
				Code:            "850",
				Name:            "Purchase Order",
				Description:     "Buyer's formal request to purchase goods/services",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Retail, Manufacturing, Technology},
				Direction:       Outbound,
				TransactionFlow: "Buyer → Supplier",
			},
			{
				Code:            "855",
				Name:            "Purchase Order Acknowledgment",
				Description:     "Supplier's response accepting or rejecting a PO",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Inbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "856",
				Name:            "Advance Shipping Notice",
				Description:     "Detailed shipment information prior to delivery",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Retail, Manufacturing, Logistics},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "940",
				Name:            "Warehouse Shipping Order",
				Description:     "Instruction to warehouse to ship goods",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Logistics, Retail},
				Direction:       Outbound,
				TransactionFlow: "Retailer → Warehouse",
			},
			{
				Code:            "945",
				Name:            "Warehouse Shipping Advice",
				Description:     "Confirmation of warehouse shipment",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Logistics, Retail},
				Direction:       Inbound,
				TransactionFlow: "Warehouse → Retailer",
			},
			{
				Code:            "997",
				Name:            "Functional Acknowledgment",
				Description:     "Technical confirmation of received EDI transmission",
				CommonVersions:  []string{"4010", "5010", "6030"},
				Industries:      []Industry{Retail, Manufacturing, Healthcare},
				Direction:       Both,
				TransactionFlow: "Between trading partners",
			},
		},
	},
	{
		Name:            "EDIFACT (International Standard)",
		LatestVersion:   "D22B",
		Region:          "Global",
		GoverningBody:   "UNECE",
		YearEstablished: 1987,
		Documents: []Document{
			{
				Code:            "DESADV",
				Name:            "Dispatch Advice",
				Description:     "Notification of goods dispatched (similar to X12 856)",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Logistics, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "IFCSUM",
				Name:            "International Forwarding and Consolidation Summary",
				Description:     "Shipping consolidation details for international logistics",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Logistics},
				Direction:       Both,
				TransactionFlow: "Between logistics providers",
			},
			{
				Code:            "INVOIC",
				Name:            "Invoice",
				Description:     "International invoice document for billing",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "ORDERS",
				Name:            "Purchase Order",
				Description:     "International purchase order document",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Buyer → Supplier",
			},
			{
				Code:            "ORDRSP",
				Name:            "Order Response",
				Description:     "Response to a purchase order (acceptance/rejection)",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Inbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "PRICAT",
				Name:            "Price/Sales Catalog",
				Description:     "Product catalog with pricing information",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "RECADV",
				Name:            "Receiving Advice",
				Description:     "Notification of goods received (similar to X12 861)",
				CommonVersions:  []string{"D96A", "D00B", "D22B"},
				Industries:      []Industry{Retail, Manufacturing},
				Direction:       Inbound,
				TransactionFlow: "Buyer → Supplier",
			},
		},
	},
	{
		Name:            "TRADACOMS (UK Retail Standard)",
		LatestVersion:   "v3",
		Region:          "United Kingdom",
		GoverningBody:   "GS1 UK",
		YearEstablished: 1982,
		Documents: []Document{
			{
				Code:            "DELHDR",
				Name:            "Delivery Header",
				Description:     "Delivery instructions for UK retail orders",
				CommonVersions:  []string{"v1", "v2", "v3"},
				Industries:      []Industry{Retail},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Retailer",
			},
			{
				Code:            "INVFIL",
				Name:            "Invoice File",
				Description:     "UK retail-specific invoice format",
				CommonVersions:  []string{"v1", "v2", "v3"},
				Industries:      []Industry{Retail},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Retailer",
			},
			{
				Code:            "ORDHDR",
				Name:            "Order Header",
				Description:     "UK retail purchase order document",
				CommonVersions:  []string{"v1", "v2", "v3"},
				Industries:      []Industry{Retail},
				Direction:       Outbound,
				TransactionFlow: "Retailer → Supplier",
			},
			{
				Code:            "ORDCHG",
				Name:            "Order Change",
				Description:     "Modification to an existing purchase order",
				CommonVersions:  []string{"v1", "v2", "v3"},
				Industries:      []Industry{Retail},
				Direction:       Both,
				TransactionFlow: "Between retailer and supplier",
			},
		},
	},
	{
		Name:            "VDA (German Automotive Standard)",
		LatestVersion:   "6.0",
		Region:          "Germany",
		GoverningBody:   "VDA",
		YearEstablished: 1977,
		Documents: []Document{
			{
				Code:            "4905",
				Name:            "Delivery Schedule",
				Description:     "Just-in-time delivery schedule for automotive manufacturing",
				CommonVersions:  []string{"4.3", "5.0", "6.0"},
				Industries:      []Industry{Automotive},
				Direction:       Outbound,
				TransactionFlow: "OEM → Supplier",
			},
			{
				Code:            "4913",
				Name:            "Invoice",
				Description:     "Automotive industry-specific invoice format",
				CommonVersions:  []string{"4.3", "5.0", "6.0"},
				Industries:      []Industry{Automotive},
				Direction:       Outbound,
				TransactionFlow: "Supplier → OEM",
			},
			{
				Code:            "4981",
				Name:            "Shipping Notification",
				Description:     "Advanced shipping notice for automotive parts",
				CommonVersions:  []string{"4.3", "5.0", "6.0"},
				Industries:      []Industry{Automotive},
				Direction:       Outbound,
				TransactionFlow: "Supplier → OEM",
			},
		},
	},
	{
		Name:            "RosettaNet (Technology Industry Standard)",
		LatestVersion:   "02.00.00",
		Region:          "Global",
		GoverningBody:   "GS1",
		YearEstablished: 1998,
		Documents: []Document{
			{
				Code:            "3A4",
				Name:            "Purchase Order",
				Description:     "High-tech industry purchase order",
				CommonVersions:  []string{"02.00.00"},
				Industries:      []Industry{Technology},
				Direction:       Outbound,
				TransactionFlow: "Buyer → Supplier",
			},
			{
				Code:            "3A8",
				Name:            "Purchase Order Change",
				Description:     "Modification to a technology purchase order",
				CommonVersions:  []string{"02.00.00"},
				Industries:      []Industry{Technology},
				Direction:       Both,
				TransactionFlow: "Between trading partners",
			},
			{
				Code:            "3B2",
				Name:            "Shipping Notification",
				Description:     "Advanced shipping notice for technology products",
				CommonVersions:  []string{"02.00.00"},
				Industries:      []Industry{Technology},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
			{
				Code:            "4B2",
				Name:            "Advance Shipment Notification",
				Description:     "Detailed shipment information for technology supply chain",
				CommonVersions:  []string{"02.00.00"},
				Industries:      []Industry{Technology},
				Direction:       Outbound,
				TransactionFlow: "Supplier → Buyer",
			},
		},
	},
}

// Standards returns the reference dataset in definition order. Callers must
// treat the result as read-only.
func Standards() []Standard {
	return standards
}
