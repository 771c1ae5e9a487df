package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	var got []Event
	bus.Subscribe(CampagneActivated, func(e Event) error {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
		return nil
	})

	id := uuid.New()
	bus.Publish(Event{Name: CampagneActivated, Payload: CampagneActivatedEvent{CampagneID: id, Titre: "S1 2024"}})
	bus.Publish(Event{Name: CampagneClosed, Payload: CampagneClosedEvent{CampagneID: id}})
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected 1 delivered event, got %d", len(got))
	}
	p, ok := got[0].Payload.(CampagneActivatedEvent)
	if !ok {
		t.Fatalf("unexpected payload type %T", got[0].Payload)
	}
	if p.CampagneID != id {
		t.Errorf("campagne id = %s, want %s", p.CampagneID, id)
	}
}

func TestBusHandlerErrorDoesNotStopDispatch(t *testing.T) {
	bus := NewBus(16)

	var mu sync.Mutex
	count := 0
	bus.Subscribe(ReponseSubmitted, func(e Event) error {
		return errors.New("mailer down")
	})
	bus.Subscribe(ReponseSubmitted, func(e Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	for i := 0; i < 3; i++ {
		bus.Publish(Event{Name: ReponseSubmitted, Payload: ReponseSubmittedEvent{ReponseID: uuid.New()}})
	}
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if count != 3 {
		t.Fatalf("second handler ran %d times, want 3", count)
	}
}

func TestBusPublishDuringCloseDoesNotPanic(t *testing.T) {
	for i := 0; i < 50; i++ {
		bus := NewBus(1)
		bus.Subscribe(CampagneClosed, func(e Event) error {
			time.Sleep(time.Millisecond)
			return nil
		})

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				bus.Publish(Event{Name: CampagneClosed, Payload: CampagneClosedEvent{CampagneID: uuid.New()}})
			}
		}()
		go func() {
			defer wg.Done()
			bus.Close()
		}()
		wg.Wait()
	}
}

func TestBusPublishAfterCloseIsNoop(t *testing.T) {
	bus := NewBus(4)
	bus.Close()
	// must not panic or block
	done := make(chan struct{})
	go func() {
		bus.Publish(Event{Name: CampagneDeleted})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish after close blocked")
	}
}
