package wikipedia

const (
	// DefaultAPIURL is the MediaWiki action API endpoint.
	DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

	// ArticleBaseURL prefixes the canonical title to form the article link.
	ArticleBaseURL = "https://en.wikipedia.org/wiki/"

	// MinExtractLength is the floor below which extracts are treated as stubs.
	// An extract must be strictly longer than this, in characters.
	MinExtractLength = 100

	// MaxContentLength caps the document content, in characters.
	MaxContentLength = 3000
)

// DefaultTopics returns the e-commerce and customer service topics
// requested when no override is configured.
func DefaultTopics() []string {
	return []string{
		"E-commerce",
		"Customer_service",
		"Online_shopping",
		"Warranty",
		"Payment_system",
		"Shipping",
		"Customer_relationship_management",
		"Consumer_protection",
		"Supply_chain",
		"Inventory",
		"Retail",
		"Credit_card",
		"Refund",
		"Privacy_policy",
		"Product_return",
		"Customer_satisfaction",
		"Electronic_commerce",
		"Payment_gateway",
		"Consumer_behaviour",
		"Shopping_cart_software",
	}
}
