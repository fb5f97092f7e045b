package trainer

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_PreservesFirstSeenOrder(t *testing.T) {
	c := NewCollector()
	c.Add("Weak", "AA:00:00:00:00:01", -90)
	c.Add("Strong", "AA:00:00:00:00:02", -40)
	c.Add("Middle", "AA:00:00:00:00:03", -60)

	devices := c.Devices()
	require.Len(t, devices, 3)
	assert.Equal(t, "AA:00:00:00:00:01", devices[0].Address)
	assert.Equal(t, "AA:00:00:00:00:02", devices[1].Address)
	assert.Equal(t, "AA:00:00:00:00:03", devices[2].Address)
}

func TestCollector_DeduplicatesByAddress(t *testing.T) {
	c := NewCollector()
	c.Add("", "AA:BB:CC:DD:EE:FF", -80)
	c.Add("Trainer X", "AA:BB:CC:DD:EE:FF", -60)
	c.Add("Trainer X", "AA:BB:CC:DD:EE:FF", -75)

	devices := c.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, "Trainer X", devices[0].Name, "later sighting fills in the name")
	assert.Equal(t, -60, devices[0].RSSI, "strongest signal is kept")
}

func TestCollector_UnknownName(t *testing.T) {
	c := NewCollector()
	c.Add("", "11:22:33:44:55:66", -50)

	devices := c.Devices()
	require.Len(t, devices, 1)
	assert.Equal(t, UnknownName, devices[0].Name)
	assert.Equal(t, "11:22:33:44:55:66", devices[0].Address)
}

func TestCollector_IgnoresEmptyAddress(t *testing.T) {
	c := NewCollector()
	c.Add("Ghost", "", -10)
	assert.Empty(t, c.Devices())
}

func TestCollector_Concurrent(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add("T", fmt.Sprintf("AA:00:00:00:00:%02d", i%5), -i)
		}()
	}
	wg.Wait()
	assert.Len(t, c.Devices(), 5)
}
