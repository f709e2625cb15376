package eventbus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Name string
}

func TestPublish_MatchingSubscriber(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	var got []string
	bus.Subscribe(func(e testEvent) {
		got = append(got, e.Name)
	})

	bus.Publish(testEvent{Name: "one"})
	bus.Publish(testEvent{Name: "two"})

	require.Equal(t, []string{"one", "two"}, got)
}

func TestPublish_NonMatchingSubscriberIgnored(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	called := false
	bus.Subscribe(func(e testEvent) { called = true })

	bus.Publish("not an event struct")

	require.False(t, called)
}

func TestUnsubscribe(t *testing.T) {
	bus := NewEventPublisher(logrus.New())

	calls := 0
	handler := func(e testEvent) { calls++ }
	bus.Subscribe(handler)
	require.Equal(t, 1, bus.SubscribersCount())

	bus.Publish(testEvent{})
	bus.Unsubscribe(handler)
	require.Equal(t, 0, bus.SubscribersCount())

	bus.Publish(testEvent{})
	require.Equal(t, 1, calls)
}

func TestMatchSignature(t *testing.T) {
	require.True(t, MatchSignature(func(e testEvent) {}, []interface{}{testEvent{}}))
	require.False(t, MatchSignature(func(e testEvent) {}, []interface{}{testEvent{}, 1}))
	require.False(t, MatchSignature("not a func", []interface{}{testEvent{}}))
}
