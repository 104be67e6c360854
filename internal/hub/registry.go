package hub

import (
	"context"
	"sync/atomic"

	"live-auction/internal/clock"
	"live-auction/internal/events"
	model "live-auction/internal/models"
	"live-auction/utils"
)

// Party is one connected bidder or viewer.
// Deliver must not block; it returns false when the party cannot take more messages.
type Party interface {
	ID() string
	Deliver(msg []byte) bool
	Close()
}

// SnapshotSource hands out consistent copies of every auction
type SnapshotSource interface {
	Snapshots() []model.AuctionSnapshot
}

// SnapshotFunc adapts a function such as MemoryRepo.GetSnapshots to SnapshotSource
type SnapshotFunc func() []model.AuctionSnapshot

func (f SnapshotFunc) Snapshots() []model.AuctionSnapshot { return f() }

// delivery is an event addressed to one party, or to everyone when partyID is empty
type delivery struct {
	partyID string
	event   events.Event
}

// Hub tracks connected parties and fans events out to them. The party set is
// owned by the goroutine running Run; everything else talks to it over channels.
type Hub struct {
	source SnapshotSource
	clock  clock.Clock

	register   chan Party
	unregister chan string
	outbound   chan delivery
	stopped    chan struct{}

	parties map[string]Party
	// synced holds, per party, the history length of each auction in its initialSync.
	// Updates at or below that length were already covered by the snapshot.
	synced    map[string]map[int64]int
	connected atomic.Int64
	dropped   atomic.Int64
}

// NewHub creates a hub whose outbound queue holds up to buffer pending events
func NewHub(source SnapshotSource, clk clock.Clock, buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		source:     source,
		clock:      clk,
		register:   make(chan Party),
		unregister: make(chan string),
		outbound:   make(chan delivery, buffer),
		stopped:    make(chan struct{}),
		parties:    make(map[string]Party),
		synced:     make(map[string]map[int64]int),
	}
}

// Register adds a party. Its first message is an initialSync holding the current
// time and every auction; broadcasts follow from there.
func (h *Hub) Register(p Party) {
	select {
	case h.register <- p:
	case <-h.stopped:
		p.Close()
	}
}

// Unregister removes a party and closes it. Unknown ids are ignored.
func (h *Hub) Unregister(partyID string) {
	select {
	case h.unregister <- partyID:
	case <-h.stopped:
	}
}

// Connected returns the number of registered parties
func (h *Hub) Connected() int {
	return int(h.connected.Load())
}

// Dropped returns how many events were discarded because the outbound queue was full
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Run processes registrations and deliveries until ctx is done, then closes every party.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)

	for {
		select {
		case <-ctx.Done():
			for id, p := range h.parties {
				p.Close()
				delete(h.parties, id)
				delete(h.synced, id)
			}
			h.connected.Store(0)
			return

		case p := <-h.register:
			h.add(p)

		case id := <-h.unregister:
			if p, ok := h.parties[id]; ok {
				h.remove(p)
			}

		case d := <-h.outbound:
			h.dispatch(d)
		}
	}
}

// add runs on the hub goroutine, so no broadcast can slip between the snapshot and registration
func (h *Hub) add(p Party) {
	if old, ok := h.parties[p.ID()]; ok {
		h.remove(old)
	}

	auctions := h.source.Snapshots()
	msg, err := events.NewInitialSync(h.clock.Now(), auctions).Encode()
	if err != nil {
		utils.Error("Hub: failed to encode initial sync", map[string]any{"party_id": p.ID(), "error": err.Error()})
		p.Close()
		return
	}
	if !p.Deliver(msg) {
		p.Close()
		return
	}

	h.parties[p.ID()] = p
	marks := make(map[int64]int, len(auctions))
	for _, a := range auctions {
		marks[a.ID] = len(a.BidHistory)
	}
	h.synced[p.ID()] = marks
	h.connected.Store(int64(len(h.parties)))
	utils.Info("Hub: party registered", map[string]any{"party_id": p.ID(), "connected": len(h.parties)})
}

func (h *Hub) remove(p Party) {
	delete(h.parties, p.ID())
	delete(h.synced, p.ID())
	p.Close()
	h.connected.Store(int64(len(h.parties)))
	utils.Debug("Hub: party unregistered", map[string]any{"party_id": p.ID(), "connected": len(h.parties)})
}
