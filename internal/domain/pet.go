package domain

// Pet is a catalog entry. Age is free text ("4 months", "2 years").
type Pet struct {
	PetID string `json:"id" dynamodbav:"pet_id"`
	Name  string `json:"name" dynamodbav:"name"`
	Image string `json:"image" dynamodbav:"image"`
	Breed string `json:"breed" dynamodbav:"breed"`
	Age   string `json:"age" dynamodbav:"age"`
}
