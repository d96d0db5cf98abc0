package namegen

// Company name components - place + trade + suffix combinations.
var companyPlaces = []string{
	"Harborview", "Summit", "Lakeside", "Ironwood", "Crestline",
	"Meridian", "Bayfront", "Stonebridge", "Northgate", "Riverbend",
	"Oakdale", "Hillcrest", "Westfield", "Eastport", "Redstone",
	"Silverlake", "Pinemont", "Fairhaven", "Brookfield", "Clearwater",
}

var companyTrades = []string{
	"Trading", "Manufacturing", "Retail", "Distribution", "Supply",
	"Foods", "Apparel", "Electronics", "Hardware", "Outfitters",
	"Packaging", "Furnishings", "Pharmaceuticals", "Beverages", "Textiles",
}

var companySuffixes = []string{
	"Co.", "Inc.", "Group", "LLC", "Corp.", "Partners", "Holdings",
}

// Carrier name components - mark + fleet kind.
var carrierMarks = []string{
	"Blue Ridge", "Cascade", "Pioneer", "Atlas", "Falcon",
	"Horizon", "Keystone", "Granite", "Liberty", "Sierra",
	"Redline", "Northern Star", "Coastal", "Prairie", "Evergreen",
	"Ironclad", "Swift Current", "Highland", "Monarch", "Frontier",
}

var carrierKinds = []string{
	"Freight Lines", "Express", "Carriers", "Logistics", "Transport",
	"Haulage", "Shipping", "Trucking", "Cargo", "Delivery",
}
