package algokit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTopic(name string, symbols ...string) Topic {
	return Topic{
		Name:    name,
		Summary: name + " test topic",
		Symbols: symbols,
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry(nil)

	err := reg.Register(testTopic("collections", "Stack"))
	require.NoError(t, err)

	topics := reg.Topics()
	require.Len(t, topics, 1)
	assert.Equal(t, "collections", topics[0].Name)
	assert.Equal(t, []string{"Stack"}, topics[0].Symbols)
}

func TestRegistryEmptyTopicIsValid(t *testing.T) {
	// A topic area can exist, build and register before exporting anything.
	reg := NewRegistry(nil)

	err := reg.Register(testTopic("placeholder"))
	require.NoError(t, err)

	topic, err := reg.Topic("placeholder")
	require.NoError(t, err)
	assert.Empty(t, topic.Symbols)
}

func TestRegistryValidation(t *testing.T) {
	reg := NewRegistry(nil)

	err := reg.Register(Topic{Summary: "no name"})
	assert.ErrorIs(t, err, ErrTopicNameEmpty)

	err = reg.Register(Topic{Name: "nosummary"})
	assert.ErrorIs(t, err, ErrTopicSummaryEmpty)

	err = reg.Register(testTopic("empty-symbol", ""))
	assert.ErrorIs(t, err, ErrSymbolNameEmpty)

	err = reg.Register(testTopic("dup-symbol", "Stack", "Stack"))
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
}

func TestRegistryDuplicateTopic(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Register(testTopic("collections", "Stack")))

	err := reg.Register(testTopic("collections", "Queue"))
	require.ErrorIs(t, err, ErrTopicAlreadyRegistered)
	assert.ErrorContains(t, err, "collections")
}

func TestRegistrySymbolCollision(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Register(testTopic("collections", "Stack")))

	err := reg.Register(testTopic("collections2", "Stack"))
	require.ErrorIs(t, err, ErrSymbolCollision)

	// The diagnostic must name the symbol and both topics.
	assert.ErrorContains(t, err, "Stack")
	assert.ErrorContains(t, err, "collections")
	assert.ErrorContains(t, err, "collections2")
}

func TestRegistryCollisionLeavesRegistryUnchanged(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Register(testTopic("collections", "Stack")))
	require.Error(t, reg.Register(testTopic("collections2", "Queue", "Stack")))

	// Nothing from the rejected topic may remain, not even its
	// non-colliding symbols.
	assert.Len(t, reg.Topics(), 1)
	_, err := reg.Lookup("Queue")
	assert.ErrorIs(t, err, ErrSymbolNotExported)
	_, err = reg.Topic("collections2")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Register(testTopic("collections", "Stack", "MinHeap")))
	require.NoError(t, reg.Register(testTopic("sortalgo", "Merge")))

	topic, err := reg.Lookup("Merge")
	require.NoError(t, err)
	assert.Equal(t, "sortalgo", topic.Name)

	_, err = reg.Lookup("Missing")
	assert.ErrorIs(t, err, ErrSymbolNotExported)
}

func TestRegistrySymbols(t *testing.T) {
	reg := NewRegistry(nil)

	require.NoError(t, reg.Register(testTopic("collections", "Stack", "MinHeap")))
	require.NoError(t, reg.Register(testTopic("sortalgo", "Merge")))

	assert.Equal(t, []string{"Merge", "MinHeap", "Stack"}, reg.Symbols())
}

func TestNewRegistersBuiltinTopics(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)

	topics := reg.Topics()
	require.Len(t, topics, 3)

	names := make([]string, len(topics))
	for i, topic := range topics {
		names[i] = topic.Name
	}
	assert.Equal(t, []string{"collections", "heapslice", "sortalgo"}, names)
}
