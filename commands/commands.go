package commands

// Command is a request sent by a websocket client
type Command interface {
	Name() string
}

// ClassifyHand asks for the category of five cards, given as card labels
type ClassifyHand struct {
	RequestID string   `json:"requestId"`
	Cards     []string `json:"cards"`
}

func (c ClassifyHand) Name() string { return "CLASSIFY_HAND" }

// ListCategories asks for the category/score table
type ListCategories struct {
	RequestID string `json:"requestId"`
}

func (l ListCategories) Name() string { return "LIST_CATEGORIES" }

// DealHand asks the server to deal and classify five random cards
type DealHand struct {
	RequestID string `json:"requestId"`
}

func (d DealHand) Name() string { return "DEAL_HAND" }
