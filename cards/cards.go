package cards

import "strings"

// Cards represents a collection of playing cards
type Cards []Card

func (cards Cards) String() string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.String()
	}
	return strings.Join(labels, " ")
}

// Codes returns the suit-then-rank label of every card
func (cards Cards) Codes() []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}

// ParseCards parses every label with Parse, stopping at the first error
func ParseCards(labels ...string) (Cards, error) {
	parsed := make(Cards, 0, len(labels))
	for _, label := range labels {
		c, err := Parse(label)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, c)
	}
	return parsed, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(labels ...string) Cards {
	parsed, err := ParseCards(labels...)
	if err != nil {
		panic(err)
	}
	return parsed
}
