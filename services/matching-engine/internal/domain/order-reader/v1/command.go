package orderreaderv1

import (
	"github.com/muhammadchandra19/exchange/pkg/amount"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// Action is the operation a command asks for.
type Action string

const (
	ActionSubmit Action = "submit"
	ActionCancel Action = "cancel"
	ActionEdit   Action = "edit"
)

// Command is one inbound request for a pair. Amounts are decimal strings.
type Command struct {
	Pair    string          `json:"pair"`
	Action  Action          `json:"action"`
	Session authv1.Session  `json:"session"`
	OUID    string          `json:"ouid,omitempty"`
	Order   *OrderPayload   `json:"order,omitempty"`
	Updates *UpdatesPayload `json:"updates,omitempty"`
}

// OrderPayload is the wire form of a submission.
type OrderPayload struct {
	OUID            string                      `json:"ouid"`
	UUID            string                      `json:"uuid"`
	Price           string                      `json:"price,omitempty"`
	Quantity        string                      `json:"quantity"`
	MatchConstraint orderbookv1.MatchConstraint `json:"matchConstraint"`
	OrderType       orderbookv1.OrderType       `json:"orderType"`
	Direction       orderbookv1.Direction       `json:"direction"`
}

// UpdatesPayload is the wire form of an edit.
type UpdatesPayload struct {
	Price           *string                     `json:"price,omitempty"`
	Quantity        *string                     `json:"quantity,omitempty"`
	MatchConstraint orderbookv1.MatchConstraint `json:"matchConstraint,omitempty"`
	OrderType       orderbookv1.OrderType       `json:"orderType,omitempty"`
	Direction       orderbookv1.Direction       `json:"direction,omitempty"`
}

// Validate checks that the command carries what its action needs.
func (c *Command) Validate() error {
	if c.Pair == "" {
		return errors.New(errors.GeneralBadRequestError, "command has no pair", "pair")
	}
	switch c.Action {
	case ActionSubmit:
		if c.Order == nil {
			return errors.New(errors.GeneralBadRequestError, "submit command has no order", "order")
		}
	case ActionCancel:
		if c.OUID == "" {
			return errors.New(errors.GeneralBadRequestError, "cancel command has no ouid", "ouid")
		}
	case ActionEdit:
		if c.OUID == "" || c.Updates == nil {
			return errors.New(errors.GeneralBadRequestError, "edit command needs ouid and updates", "updates")
		}
	default:
		return errors.New(errors.GeneralBadRequestError, "unknown action: "+string(c.Action), "action")
	}
	return nil
}

// ToInput converts the payload to ticks using the pair's precisions.
func (p *OrderPayload) ToInput(price, qty amount.Converter) (orderbookv1.OrderInput, error) {
	priceTicks, err := price.ToTicks(p.Price)
	if err != nil {
		return orderbookv1.OrderInput{}, err
	}
	qtyTicks, err := qty.ToTicks(p.Quantity)
	if err != nil {
		return orderbookv1.OrderInput{}, err
	}

	return orderbookv1.OrderInput{
		OUID:            p.OUID,
		UUID:            p.UUID,
		Price:           priceTicks,
		Quantity:        qtyTicks,
		MatchConstraint: p.MatchConstraint,
		OrderType:       p.OrderType,
		Direction:       p.Direction,
	}, nil
}

// ToUpdates converts the payload to ticks using the pair's precisions.
func (p *UpdatesPayload) ToUpdates(price, qty amount.Converter) (orderbookv1.OrderUpdates, error) {
	updates := orderbookv1.OrderUpdates{
		MatchConstraint: p.MatchConstraint,
		OrderType:       p.OrderType,
		Direction:       p.Direction,
	}
	if p.Price != nil {
		ticks, err := price.ToTicks(*p.Price)
		if err != nil {
			return orderbookv1.OrderUpdates{}, err
		}
		updates.Price = &ticks
	}
	if p.Quantity != nil {
		ticks, err := qty.ToTicks(*p.Quantity)
		if err != nil {
			return orderbookv1.OrderUpdates{}, err
		}
		updates.Quantity = &ticks
	}
	return updates, nil
}
