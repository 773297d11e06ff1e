package algokit

import (
	"errors"
)

// Registry errors
var (
	// Topic registration errors
	ErrTopicNameEmpty         = errors.New("topic name cannot be empty")
	ErrTopicSummaryEmpty      = errors.New("topic summary cannot be empty")
	ErrTopicAlreadyRegistered = errors.New("topic already registered")
	ErrTopicNotFound          = errors.New("topic not found")

	// Symbol errors
	ErrSymbolNameEmpty   = errors.New("exported symbol name cannot be empty")
	ErrDuplicateSymbol   = errors.New("symbol declared more than once by topic")
	ErrSymbolCollision   = errors.New("symbol exported by more than one topic")
	ErrSymbolNotExported = errors.New("symbol not exported by any topic")

	// Observer errors
	ErrObserverNil       = errors.New("observer cannot be nil")
	ErrObserverIDEmpty   = errors.New("observer ID cannot be empty")
	ErrEventHandlerNil   = errors.New("event handler cannot be nil")
	ErrInvalidCloudEvent = errors.New("event does not conform to the CloudEvents specification")
)
