package statemachine

import (
	"fmt"
	"strings"

	"delivery-app/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor models.UserRole    `json:"actor"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Restaurant accepts the order and starts cooking
	{From: models.StatusPending, To: models.StatusPreparing, Actor: models.RoleRestaurant},
	{From: models.StatusPending, To: models.StatusPreparing, Actor: models.RoleMaster},
	// Restaurant or master can cancel before the food is ready
	{From: models.StatusPending, To: models.StatusCancelled, Actor: models.RoleRestaurant},
	{From: models.StatusPending, To: models.StatusCancelled, Actor: models.RoleMaster},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleRestaurant},
	{From: models.StatusPreparing, To: models.StatusCancelled, Actor: models.RoleMaster},
	// Restaurant marks the order ready for a dispatcher
	{From: models.StatusPreparing, To: models.StatusReady, Actor: models.RoleRestaurant},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: models.RoleMaster},
	// Dispatcher takes the order out for delivery
	{From: models.StatusReady, To: models.StatusDelivery, Actor: models.RoleDispatcher},
	{From: models.StatusReady, To: models.StatusDelivery, Actor: models.RoleMaster},
	// Dispatcher hands it to the customer
	{From: models.StatusDelivery, To: models.StatusDelivered, Actor: models.RoleDispatcher},
	{From: models.StatusDelivery, To: models.StatusDelivered, Actor: models.RoleMaster},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

type edgeKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

var (
	transitionMap = map[transitionKey]bool{}
	edgeMap       = map[edgeKey]bool{}
)

func init() {
	for _, t := range validTransitions {
		transitionMap[transitionKey{t.From, t.To, t.Actor}] = true
		edgeMap[edgeKey{t.From, t.To}] = true
	}
}

// TransitionError is returned when a requested status change is not in the table.
// Actor is empty when the check was made without an actor.
type TransitionError struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("invalid transition: %s → %s", e.From, e.To)
	if e.Actor != "" {
		msg += fmt.Sprintf(" is not allowed for actor '%s'", e.Actor)
	}
	return msg + ". Valid transitions from " + string(e.From) + " are: " + describeValidFrom(e.From)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	nexts := []models.OrderStatus{}
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves status.
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanMove checks the edge from → to regardless of who requests it.
func CanMove(from, to models.OrderStatus) error {
	if edgeMap[edgeKey{from, to}] {
		return nil
	}
	return &TransitionError{From: from, To: to}
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if transitionMap[transitionKey{from, to, actor}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Actor: actor}
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return append([]Transition(nil), validTransitions...)
}
