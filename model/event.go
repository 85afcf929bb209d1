package model

import "github.com/fabceolin/airgap-json-formatter-sub000/parse"

type EventType int

const (
	// EventAboutToReset precedes every tree replacement.
	EventAboutToReset EventType = iota
	// EventReset follows every tree replacement, successful or not.
	EventReset
	// EventLoadFailed follows EventReset when a Load failed. Err is set.
	EventLoadFailed
)

func (t EventType) String() string {
	switch t {
	case EventAboutToReset:
		return "aboutToReset"
	case EventReset:
		return "reset"
	case EventLoadFailed:
		return "loadFailed"
	default:
		return "<unknown event>"
	}
}

type Event struct {
	Type EventType
	Err  *parse.Error
}
