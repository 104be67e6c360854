package hub

import (
	"context"
	"time"

	"live-auction/internal/events"
	"live-auction/utils"
)

// NotifyAll queues ev for every connected party. It never waits: when the queue is
// full the event is dropped, and the next update or tick resynchronises the parties.
func (h *Hub) NotifyAll(ev events.Event) {
	h.enqueue(delivery{event: ev})
}

// NotifyOne queues ev for a single party. It is silently dropped if that party is gone.
func (h *Hub) NotifyOne(partyID string, ev events.Event) {
	if partyID == "" {
		return
	}
	h.enqueue(delivery{partyID: partyID, event: ev})
}

func (h *Hub) enqueue(d delivery) {
	select {
	case h.outbound <- d:
	default:
		h.dropped.Add(1)
		utils.Warn("Hub: outbound queue full, event dropped", map[string]any{
			"type":     string(d.event.Type),
			"party_id": d.partyID,
		})
	}
}

// PublishTicks broadcasts a timeSync for every tick until ticks closes or ctx is done.
func (h *Hub) PublishTicks(ctx context.Context, ticks <-chan time.Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-ticks:
			if !ok {
				return
			}
			h.NotifyAll(events.NewTimeSync(t))
		}
	}
}

// dispatch runs on the hub goroutine. A party that cannot keep up is disconnected.
func (h *Hub) dispatch(d delivery) {
	msg, err := d.event.Encode()
	if err != nil {
		utils.Error("Hub: failed to encode event", map[string]any{"type": string(d.event.Type), "error": err.Error()})
		return
	}

	if d.partyID != "" {
		p, ok := h.parties[d.partyID]
		if !ok {
			return
		}
		if !p.Deliver(msg) {
			h.dropSlow(p)
		}
		return
	}

	update, isUpdate := d.event.Data.(events.AuctionUpdate)
	for id, p := range h.parties {
		if isUpdate && h.coveredBySync(id, update) {
			continue
		}
		if !p.Deliver(msg) {
			h.dropSlow(p)
		}
	}
}

// coveredBySync reports whether the party's initialSync already held this update.
// Updates for one auction are queued in acceptance order, so the first newer one
// clears the mark for good.
func (h *Hub) coveredBySync(partyID string, update events.AuctionUpdate) bool {
	marks, ok := h.synced[partyID]
	if !ok {
		return false
	}
	seen, ok := marks[update.AuctionID]
	if !ok {
		return false
	}
	if len(update.BidHistory) <= seen {
		return true
	}
	delete(marks, update.AuctionID)
	if len(marks) == 0 {
		delete(h.synced, partyID)
	}
	return false
}

func (h *Hub) dropSlow(p Party) {
	utils.Warn("Hub: party too slow, disconnecting", map[string]any{"party_id": p.ID()})
	h.remove(p)
}
