package config

// StateID identifies a node of the game state machine.
type StateID int

const (
	StateNone StateID = iota - 1
	StateBoot
	StateLoad
	StateLoadWorld
	StateWorld
)

// StateNames maps each state to the key it is registered under.
var StateNames = map[StateID]string{
	StateBoot:      "boot",
	StateLoad:      "load",
	StateLoadWorld: "load-world",
	StateWorld:     "world",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}
