package event_test

import (
	"sync"
	"testing"

	"github.com/shashiranjanraj/vyapar/pkg/event"
	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversInOrder(t *testing.T) {
	bus := event.NewBus()

	var got []int
	bus.Subscribe("n", func(p any) { got = append(got, p.(int)*10) })
	bus.Subscribe("n", func(p any) { got = append(got, p.(int)*100) })

	bus.Publish("n", 1)
	bus.Publish("n", 2)

	assert.Equal(t, []int{10, 100, 20, 200}, got)
}

func TestPublishNoListeners(t *testing.T) {
	bus := event.NewBus()
	bus.Publish("nobody-home", "x")
}

func TestPublishAsyncDeliversAll(t *testing.T) {
	bus := event.NewBus()

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := map[string]bool{}

	for _, name := range []string{"a", "b"} {
		name := name
		wg.Add(1)
		bus.Subscribe("fan", func(p any) {
			defer wg.Done()
			mu.Lock()
			seen[name] = true
			mu.Unlock()
		})
	}

	bus.PublishAsync("fan", nil)
	wg.Wait()

	assert.True(t, seen["a"])
	assert.True(t, seen["b"])
}

func TestReset(t *testing.T) {
	bus := event.NewBus()

	calls := 0
	bus.Subscribe("n", func(any) { calls++ })
	bus.Reset()
	bus.Publish("n", nil)

	assert.Zero(t, calls)
}
