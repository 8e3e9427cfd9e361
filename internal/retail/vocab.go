package retail

// Categories in the order products draw them from.
var categories = []string{"Electronics", "Groceries", "Clothing", "Home", "Toys"}

var productNames = map[string][]string{
	"Electronics": {"Smartphone", "Laptop", "Tablet", "Smartwatch", "Camera", "Headphones",
		"Bluetooth Speaker", "Television", "Monitor", "Gaming Console"},
	"Groceries": {"Milk", "Bread", "Eggs", "Butter", "Cheese", "Chicken Breast", "Ground Beef",
		"Apple", "Banana", "Orange"},
	"Clothing": {"T-Shirt", "Jeans", "Jacket", "Sweater", "Dress", "Skirt", "Shoes", "Sneakers",
		"Hat", "Socks"},
	"Home": {"Sofa", "Dining Table", "Chair", "Bed", "Wardrobe", "Lamp", "Curtains", "Carpet",
		"Cookware Set", "Coffee Maker"},
	"Toys": {"Lego Set", "Doll", "Action Figure", "Board Game", "Puzzle", "Toy Car",
		"Stuffed Animal", "Building Blocks", "Remote Control Car", "Bicycle"},
}

var brands = map[string][]string{
	"Electronics": {"Samsung", "Apple", "Sony", "LG", "Dell", "HP", "Bose", "Canon", "GoPro", "Microsoft"},
	"Groceries": {"Organic Valley", "Wonder Bread", "Land O'Lakes", "Sargento", "Tyson",
		"Johnsonville", "Chiquita", "Dole", "Sunkist", "Florida's Natural"},
	"Clothing": {"Nike", "Adidas", "Levi's", "North Face", "Gap", "Old Navy", "Puma",
		"Under Armour", "H&M", "Uniqlo"},
	"Home": {"Ikea", "Ashley", "La-Z-Boy", "Pottery Barn", "West Elm", "Bed Bath & Beyond",
		"Target", "Wayfair", "Williams-Sonoma", "Breville"},
	"Toys": {"Lego", "Mattel", "Hasbro", "Ravensburger", "Fisher-Price", "Hot Wheels", "Ty",
		"Melissa & Doug", "Nerf", "Schwinn"},
}

var firstNames = []string{"John", "Jane", "Chris", "Katie", "Michael", "Jessica", "Daniel",
	"Ashley", "David", "Emily"}

var lastNames = []string{"Smith", "Johnson", "Williams", "Jones", "Brown", "Davis", "Miller",
	"Wilson", "Moore", "Taylor"}

var emailDomains = []string{"example.com", "mail.com", "test.com", "demo.com"}

var streetNames = []string{"Main St", "Second St", "Third St", "Oak St", "Pine St"}

var genders = []string{"Male", "Female", "Other"}

var storeTypes = []string{"Warehouse", "Retail Outlet"}

// StoreLocations is the fixed list of "City, ST" locations used for
// stores, sales and customer addresses.
var StoreLocations = []string{
	"New York, NY", "Los Angeles, CA", "Chicago, IL", "Houston, TX",
	"Phoenix, AZ", "Philadelphia, PA", "San Antonio, TX", "San Diego, CA",
	"Dallas, TX", "San Jose, CA", "Austin, TX", "Jacksonville, FL",
	"Fort Worth, TX", "Columbus, OH", "San Francisco, CA", "Charlotte, NC",
	"Indianapolis, IN", "Seattle, WA", "Denver, CO", "Washington, DC",
	"Boston, MA", "El Paso, TX", "Detroit, MI", "Nashville, TN",
	"Portland, OR", "Memphis, TN", "Oklahoma City, OK", "Las Vegas, NV",
	"Louisville, KY", "Baltimore, MD", "Milwaukee, WI", "Albuquerque, NM",
	"Tucson, AZ", "Fresno, CA", "Sacramento, CA", "Long Beach, CA",
	"Kansas City, MO", "Mesa, AZ", "Virginia Beach, VA", "Atlanta, GA",
	"Colorado Springs, CO", "Omaha, NE", "Raleigh, NC", "Miami, FL",
	"Oakland, CA", "Minneapolis, MN", "Tulsa, OK", "Wichita, KS",
	"New Orleans, LA", "Arlington, TX",
}
