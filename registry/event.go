package registry

import (
	"encoding/json"
	"time"
)

const EventProviderRegistered = "provider.registered"

// Event is the announcement published for a registration.
type Event struct {
	V        int       `json:"v"`
	Type     string    `json:"type"`
	Seq      uint64    `json:"seq"`
	Address  string    `json:"address"`
	Name     string    `json:"name,omitempty"`
	Location string    `json:"location,omitempty"`
	At       time.Time `json:"at"`
}

func encodeEvent(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// DecodeEvent parses an outbox payload.
func DecodeEvent(b []byte) (Event, error) {
	var e Event
	err := json.Unmarshal(b, &e)
	return e, err
}
