package catalog

// DemoProducts is the starter catalog loaded when seeding is enabled.
func DemoProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Dell XPS 13", Price: 25000000, Stock: 5, Category: "Laptop", Description: "Dell XPS 13 inch premium laptop"},
		{ID: 2, Name: "iPhone 15 Pro", Price: 28000000, Stock: 10, Category: "Smartphone", Description: "Latest iPhone 15 Pro"},
		{ID: 3, Name: "Samsung Galaxy S24", Price: 22000000, Stock: 8, Category: "Smartphone", Description: "Samsung Galaxy S24 phone"},
		{ID: 4, Name: "MacBook Air M2", Price: 30000000, Stock: 3, Category: "Laptop", Description: "MacBook Air with the M2 chip"},
		{ID: 5, Name: "AirPods Pro", Price: 6000000, Stock: 15, Category: "Accessories", Description: "AirPods Pro wireless earbuds"},
	}
}
