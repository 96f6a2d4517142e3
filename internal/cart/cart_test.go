package cart_test

import (
	"fmt"
	"testing"

	"artshop/internal/cart"

	"github.com/stretchr/testify/assert"
)

// brokenSlot wraps a memory slot and can start rejecting saves.
type brokenSlot struct {
	cart.Slot
	failSaves bool
}

func (s *brokenSlot) Save(key, value string) error {
	if s.failSaves {
		return fmt.Errorf("slot unavailable")
	}
	return s.Slot.Save(key, value)
}

func TestCartAddRemoveClearTotal(t *testing.T) {
	c, err := cart.Open(cart.NewMemorySlot())
	assert.NoError(t, err)
	assert.Equal(t, float64(0), c.Total())

	a, err := c.Add(cart.Item{Title: "Sketch A", Price: 900})
	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)

	b, err := c.Add(cart.Item{Title: "Sketch B", Price: 350})
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, float64(1250), c.Total())

	assert.NoError(t, c.Remove(a.ID))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, float64(350), c.Total())

	// removing an unknown id is a no-op
	assert.NoError(t, c.Remove("does-not-exist"))
	assert.Equal(t, 1, c.Len())

	assert.NoError(t, c.Clear())
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, float64(0), c.Total())
}

func TestCartPersistsAcrossOpen(t *testing.T) {
	slot := cart.NewMemorySlot()

	c, err := cart.Open(slot)
	assert.NoError(t, err)
	_, err = c.Add(cart.Item{Title: "Sketch A", Price: 900})
	assert.NoError(t, err)
	assert.NoError(t, c.SetAppliedCoupon("OFF20"))
	assert.NoError(t, c.SetFinalTotal(980))

	// a new cart over the same slot sees the persisted state
	reopened, err := cart.Open(slot)
	assert.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
	assert.Equal(t, float64(900), reopened.Total())

	code, err := reopened.AppliedCoupon()
	assert.NoError(t, err)
	assert.Equal(t, "OFF20", code)

	total, err := reopened.FinalTotal()
	assert.NoError(t, err)
	assert.Equal(t, float64(980), total)
}

func TestCartClearDropsSessionExtras(t *testing.T) {
	slot := cart.NewMemorySlot()
	c, err := cart.Open(slot)
	assert.NoError(t, err)

	_, err = c.Add(cart.Item{Title: "Sketch A", Price: 900})
	assert.NoError(t, err)
	assert.NoError(t, c.SetAppliedCoupon("OFF20"))
	assert.NoError(t, c.SetFinalTotal(980))

	assert.NoError(t, c.Clear())

	code, err := c.AppliedCoupon()
	assert.NoError(t, err)
	assert.Empty(t, code)

	total, err := c.FinalTotal()
	assert.NoError(t, err)
	assert.Equal(t, float64(0), total)
}

func TestCartMutationsRollBackOnPersistFailure(t *testing.T) {
	slot := &brokenSlot{Slot: cart.NewMemorySlot()}
	c, err := cart.Open(slot)
	assert.NoError(t, err)

	a, err := c.Add(cart.Item{Title: "Sketch A", Price: 900})
	assert.NoError(t, err)
	_, err = c.Add(cart.Item{Title: "Sketch B", Price: 350})
	assert.NoError(t, err)

	slot.failSaves = true

	// a failed add leaves the cart as it was
	_, err = c.Add(cart.Item{Title: "Sketch C", Price: 100})
	assert.Error(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, float64(1250), c.Total())

	// a failed remove keeps the entry
	assert.Error(t, c.Remove(a.ID))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, float64(1250), c.Total())

	// a failed clear keeps everything
	assert.Error(t, c.Clear())
	assert.Equal(t, 2, c.Len())

	// the slot still holds the last persisted state
	slot.failSaves = false
	reopened, err := cart.Open(slot)
	assert.NoError(t, err)
	assert.Equal(t, 2, reopened.Len())
}

func TestCartFileSlot(t *testing.T) {
	dir := t.TempDir()
	slot, err := cart.NewFileSlot(dir)
	assert.NoError(t, err)

	c, err := cart.Open(slot)
	assert.NoError(t, err)
	_, err = c.Add(cart.Item{Title: "Sketch A", Price: 900})
	assert.NoError(t, err)

	reopened, err := cart.Open(slot)
	assert.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}
