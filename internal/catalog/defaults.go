package catalog

// defaultCategories lists every policy category tracked for commercial
// quotes, in the order they appear on comparison output.
var defaultCategories = []string{
	"Fire", "Buildings combined", "Office contents", "Business interruption",
	"General", "Theft", "Money", "Glass", "Fidelity guarantee", "Goods in transit",
	"Business all risks", "Accidental damage", "Public liability", "Employers' liability",
	"Stated benefits", "Group personal accident", "Motor personal accident",
	"Motor General", "Motor Specific/Specified", "Motor Fleet", "Electronic equipment",
	"Umbrella liability", "Assist/Value services/ VAS", "SASRIA", "Intermediary fee",
	"Accounts receivable", "Motor Industry Risks", "Houseowners", "Machinery Breakdown",
	"Householders", "Personal, All Risks", "Watercraft", "Personal Legal Liability",
	"Deterioration of Stock", "Personal Umbrella Liability", "Greens and Irrigation Systems",
	"Commercial Umbrella Liability", "Professional Indemnity", "Cyber",
	"Community & Sectional Title", "Plant All risk", "Contractor All Risk", "Hospitality",
}

var defaultSubSections = map[string][]string{
	"Fire":               {"Building structure", "Contents", "Stock", "Loss of rent", "Debris removal", "Alternative accommodation", "Rent receivable", "Machinery", "Equipment"},
	"Buildings combined": {"Main building", "Outbuildings", "Boundary walls", "Fixed improvements", "Tenant's improvements", "Signs", "Landscaping", "Carports", "Storage facilities"},
	"Office contents":    {"Furniture & fittings", "Office equipment", "Computer equipment", "Personal effects", "Stock", "Documents", "Artwork", "Antiques", "Electronics"},
	"Motor General":      {"Comprehensive cover", "Third party", "Fire & theft", "Windscreen cover", "Roadside assistance", "Courtesy car", "Hire car", "Medical expenses"},
	"Public liability":   {"General public liability", "Products liability", "Professional indemnity", "Legal costs", "Cross liability", "Tenant's liability", "Employer's liability"},
	"SASRIA":             {"Riot damages", "Strike damages", "Civil commotion", "Terrorism cover", "Political violence", "Social unrest", "Malicious damage"},

	"Accounts receivable":      {"Books of account", "Computer records", "Outstanding debtors", "Mercantile collections", "Credit sales", "Bad debts", "Collection costs"},
	"Motor Industry Risks":     {"Stock in trade", "Customers vehicles", "Tools and equipment", "Liability", "Showroom contents", "Spare parts", "Workshop equipment"},
	"Machinery Breakdown":      {"Mechanical breakdown", "Electrical breakdown", "Explosion", "Expediting expenses", "Replacement parts", "Labour costs", "Loss of income"},
	"Professional Indemnity":   {"Errors and omissions", "Legal costs", "Documents", "Loss of data", "Defense costs", "Settlement costs", "Regulatory fines"},
	"Cyber":                    {"Data breach", "Cyber attack", "Business interruption", "System restoration", "Legal costs", "Notification costs", "Credit monitoring", "Ransomware"},
	"Watercraft":               {"Hull damage", "Third party liability", "Personal accident", "Salvage costs", "Wreck removal", "Pollution liability", "Medical expenses"},
	"Personal Legal Liability": {"Legal costs", "Damages awarded", "Defense costs", "Bail bonds", "Court costs", "Settlement costs"},
	"Plant All risk":           {"Construction plant", "Contractors equipment", "Hired in plant", "Transit", "Testing", "Commissioning", "Maintenance"},
	"Contractor All Risk":      {"Contract works", "Plant and equipment", "Third party liability", "Professional indemnity", "Delay in start-up", "Testing", "Maintenance"},
	"Hospitality":              {"Public liability", "Product liability", "Liquor liability", "Employment practices", "Food safety", "Guest property", "Business interruption"},

	"Business interruption":      {"Loss of gross profit", "Increased cost of working", "Claims preparation", "Accountants fees", "Loss of rent", "Debtors", "Book debts"},
	"Electronic equipment":       {"Computers", "Servers", "Networking equipment", "Software", "Data", "Peripherals", "Mobile devices", "IoT devices"},
	"Theft":                      {"Burglary", "Robbery", "Employee dishonesty", "Money", "Securities", "Stock", "Equipment", "Contents"},
	"Money":                      {"Cash", "Cheques", "Credit cards", "Bank notes", "Coins", "Postal orders", "Gift vouchers", "Travellers cheques"},
	"Glass":                      {"Windows", "Doors", "Skylights", "Shop fronts", "Display cases", "Mirrors", "Signs", "Fittings"},
	"Fidelity guarantee":         {"Employee dishonesty", "Fraud", "Theft", "Embezzlement", "Forgery", "Computer fraud", "Funds transfer fraud"},
	"Goods in transit":           {"Road transport", "Rail transport", "Air transport", "Sea transport", "Temporary storage", "Loading/unloading", "Packing materials"},
	"Accidental damage":          {"Impact damage", "Falling objects", "Collision", "Spillage", "Breakage", "Vandalism", "Natural disasters"},
	"Employers' liability":       {"Workplace accidents", "Occupational diseases", "Medical expenses", "Rehabilitation", "Legal costs", "Compensation"},
	"Umbrella liability":         {"Excess liability", "Aggregate limits", "Worldwide coverage", "Additional insureds", "Defense costs", "Settlement costs"},
	"Assist/Value services/ VAS": {"Emergency assistance", "Legal helpline", "Medical assistance", "Travel assistance", "Home assistance", "24/7 support"},
	"Intermediary fee":           {"Brokerage", "Administration fees", "Policy fees", "Service charges", "Documentation fees", "Processing fees"},
}

// defaultRanges are hand-tuned plausibility bands for monthly premiums.
// Values outside the band are treated as mis-parses, not real premiums.
var defaultRanges = map[string]PremiumRange{
	"Fire":                   {Min: 50, Max: 15000},
	"Buildings combined":     {Min: 100, Max: 20000},
	"Motor General":          {Min: 500, Max: 25000},
	"Public liability":       {Min: 80, Max: 8000},
	"Professional Indemnity": {Min: 200, Max: 12000},
	"Cyber":                  {Min: 150, Max: 10000},
	"Machinery Breakdown":    {Min: 50, Max: 5000},
	"Electronic equipment":   {Min: 30, Max: 3000},
	"SASRIA":                 {Min: 20, Max: 2000},
	"Office contents":        {Min: 40, Max: 4000},
}

var defaultMinSums = map[string]float64{
	"Fire":                   100000,
	"Buildings combined":     200000,
	"Motor General":          50000,
	"Public liability":       100000,
	"Professional Indemnity": 500000,
	"Cyber":                  100000,
	"Machinery Breakdown":    50000,
	"Electronic equipment":   10000,
	"Office contents":        20000,
}
