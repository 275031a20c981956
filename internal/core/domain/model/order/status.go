package order

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned when a status value falls outside the closed
// ten-value set. It is fatal to the request and never retried.
var ErrUnknownStatus = errors.New("unknown order status")

// Status represents the lifecycle state of a parcel order.
// The normal business progression is linear:
//
//	created -> arrived_cn -> packed -> sent_to_kz -> in_transit
//	        -> arrived_branch -> ready_for_pickup -> issued
//
// issued, problem, and cancelled are terminal. problem is reachable from any
// non-terminal status as an escape hatch; only an admin override can leave it.
//
// Status values are persisted verbatim, so the constants double as wire/DB
// representation.
type Status string

const (
	Created        Status = "created"
	ArrivedCN      Status = "arrived_cn"
	Packed         Status = "packed"
	SentToKZ       Status = "sent_to_kz"
	InTransit      Status = "in_transit"
	ArrivedBranch  Status = "arrived_branch"
	ReadyForPickup Status = "ready_for_pickup"
	Issued         Status = "issued"
	Problem        Status = "problem"
	Cancelled      Status = "cancelled"
)

// transitions is the closed, total transition table. Every status has an
// entry; terminal statuses map to an empty set. The table never varies at
// runtime.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Created:        {ArrivedCN},
		ArrivedCN:      {Packed},
		Packed:         {SentToKZ},
		SentToKZ:       {InTransit},
		InTransit:      {ArrivedBranch},
		ArrivedBranch:  {ReadyForPickup},
		ReadyForPickup: {Issued},
		Issued:         {},
		Problem:        {},
		Cancelled:      {},
	}
}

// AllStatuses returns the full ten-value set in pipeline order.
func AllStatuses() []Status {
	return []Status{
		Created, ArrivedCN, Packed, SentToKZ, InTransit,
		ArrivedBranch, ReadyForPickup, Issued, Problem, Cancelled,
	}
}

// Validate checks membership in the closed status set.
// Any other value is a modeling error and fails fast with ErrUnknownStatus.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := transitions()[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether s -> target is structurally legal per the
// transition table. It is a pure set-membership lookup and does not consult
// any authorization policy.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses directly reachable from s under normal
// business progression. Terminal and unknown statuses yield an empty slice.
func (s Status) NextStatuses() []Status {
	next := transitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// String implements fmt.Stringer using the persisted representation.
func (s Status) String() string {
	return string(s)
}

// DisplayName returns the human-readable (Russian) status name used by the
// back-office UI. Presentation-only; unknown values are returned as-is.
func (s Status) DisplayName() string {
	names := map[Status]string{
		Created:        "Создан",
		ArrivedCN:      "Прибыл в Китай",
		Packed:         "Упакован",
		SentToKZ:       "Отправлен в Казахстан",
		InTransit:      "В пути",
		ArrivedBranch:  "Прибыл в филиал",
		ReadyForPickup: "Готов к выдаче",
		Issued:         "Выдан клиенту",
		Problem:        "Проблема",
		Cancelled:      "Отменён",
	}
	if name, ok := names[s]; ok {
		return name
	}
	return string(s)
}
