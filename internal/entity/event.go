package entity

type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerDown
	EventKeyDown
)

// Event is a single input from the window.
type Event struct {
	Kind EventKind
	X, Y int
	Key  string
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func PointerDownEvent(x, y int) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y}
}

func KeyDownEvent(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}
