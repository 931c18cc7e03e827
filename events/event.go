package events

import "github.com/lazharichir/handscore/hands"

// Event is sent from the server to a websocket client
type Event interface {
	Name() string
}

type ClientConnected struct {
	ClientID string `json:"clientId"`
}

func (c ClientConnected) Name() string { return "CLIENT_CONNECTED" }

// HandClassified carries the category of a hand
type HandClassified struct {
	RequestID string         `json:"requestId,omitempty"`
	Cards     []string       `json:"cards"`
	Hand      string         `json:"hand"`
	Category  hands.Category `json:"category"`
	Score     int            `json:"score"`
}

func (h HandClassified) Name() string { return "HAND_CLASSIFIED" }

// CategoryScore is one row of the category table
type CategoryScore struct {
	Category hands.Category `json:"category"`
	Score    int            `json:"score"`
}

type CategoriesListed struct {
	RequestID  string          `json:"requestId,omitempty"`
	Categories []CategoryScore `json:"categories"`
}

func (c CategoriesListed) Name() string { return "CATEGORIES_LISTED" }

// CommandRejected is sent when a command could not be handled
type CommandRejected struct {
	RequestID string `json:"requestId,omitempty"`
	Command   string `json:"command,omitempty"`
	Error     string `json:"error"`
}

func (c CommandRejected) Name() string { return "COMMAND_REJECTED" }

// Classified builds a HandClassified event for h
func Classified(requestID string, h hands.Hand) HandClassified {
	category := hands.Classify(h)
	return HandClassified{
		RequestID: requestID,
		Cards:     h.Cards().Codes(),
		Hand:      h.String(),
		Category:  category,
		Score:     category.Score(),
	}
}

// CategoryTable lists every category with its score, strongest first
func CategoryTable(requestID string) CategoriesListed {
	rows := make([]CategoryScore, len(hands.Categories))
	for i, c := range hands.Categories {
		rows[i] = CategoryScore{Category: c, Score: c.Score()}
	}
	return CategoriesListed{RequestID: requestID, Categories: rows}
}
