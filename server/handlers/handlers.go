package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/lazharichir/handscore/cards"
	"github.com/lazharichir/handscore/commands"
	"github.com/lazharichir/handscore/events"
	"github.com/lazharichir/handscore/hands"
	serverevents "github.com/lazharichir/handscore/server/events"
)

// ErrUnknownCommand is returned for commands the router does not handle
var ErrUnknownCommand = errors.New("unknown command type")

// CommandRouter routes incoming commands to the appropriate handler
type CommandRouter struct {
	dispatcher *serverevents.Dispatcher
	rng        *rand.Rand
	rngMu      sync.Mutex
}

// NewCommandRouter creates a new command router. rng shuffles the deck for
// DEAL_HAND and is owned by the router from then on.
func NewCommandRouter(dispatcher *serverevents.Dispatcher, rng *rand.Rand) *CommandRouter {
	return &CommandRouter{
		dispatcher: dispatcher,
		rng:        rng,
	}
}

// HandleCommand processes an incoming command message. Commands that fail
// are answered with a COMMAND_REJECTED event and the error is returned.
func (r *CommandRouter) HandleCommand(clientID string, message []byte) error {
	var baseCmd struct {
		Name      string `json:"name"`
		RequestID string `json:"requestId"`
	}
	if err := json.Unmarshal(message, &baseCmd); err != nil {
		r.reject(clientID, "", "", err)
		return fmt.Errorf("decode command: %w", err)
	}

	err := r.route(clientID, baseCmd.Name, message)
	if err != nil {
		r.reject(clientID, baseCmd.RequestID, baseCmd.Name, err)
	}
	return err
}

func (r *CommandRouter) route(clientID, name string, message []byte) error {
	switch name {
	case commands.ClassifyHand{}.Name():
		var cmd commands.ClassifyHand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleClassifyHand(clientID, cmd)

	case commands.ListCategories{}.Name():
		var cmd commands.ListCategories
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		r.dispatcher.SendToClient(clientID, events.CategoryTable(cmd.RequestID))
		return nil

	case commands.DealHand{}.Name():
		var cmd commands.DealHand
		if err := json.Unmarshal(message, &cmd); err != nil {
			return err
		}
		return r.handleDealHand(clientID, cmd)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func (r *CommandRouter) handleClassifyHand(clientID string, cmd commands.ClassifyHand) error {
	h, err := hands.ParseHand(cmd.Cards...)
	if err != nil {
		return err
	}

	r.dispatcher.SendToClient(clientID, events.Classified(cmd.RequestID, h))
	return nil
}

func (r *CommandRouter) handleDealHand(clientID string, cmd commands.DealHand) error {
	r.rngMu.Lock()
	deck := cards.ShuffleDeckWith(r.rng, cards.NewDeck())
	r.rngMu.Unlock()

	dealt, _ := cards.DealCards(deck, hands.HandSize)
	h, err := hands.NewHand(dealt...)
	if err != nil {
		return err
	}

	r.dispatcher.SendToClient(clientID, events.Classified(cmd.RequestID, h))
	return nil
}

func (r *CommandRouter) reject(clientID, requestID, command string, err error) {
	r.dispatcher.SendToClient(clientID, events.CommandRejected{
		RequestID: requestID,
		Command:   command,
		Error:     err.Error(),
	})
}
