package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-inmem-shop/internal/apperr"
)

func strp(s string) *string    { return &s }
func intp(n int) *int          { return &n }
func f64p(f float64) *float64 { return &f }

func TestCreateAssignsSequentialIDs(t *testing.T) {
	c := New()
	p1, err := c.Create(Draft{Name: strp("a"), Price: f64p(1), Stock: intp(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, "", p1.Category)
	assert.Equal(t, "", p1.Description)

	p2, err := c.Create(Draft{Name: strp("b"), Price: f64p(2), Stock: intp(2), Category: strp("x")})
	require.NoError(t, err)
	assert.Equal(t, 2, p2.ID)
	assert.Equal(t, "x", p2.Category)
}

func TestCreateUsesMaxIDAfterDelete(t *testing.T) {
	c := New(DemoProducts()...)
	c.Delete(2)
	p, err := c.Create(Draft{Name: strp("n"), Price: f64p(1), Stock: intp(1)})
	require.NoError(t, err)
	assert.Equal(t, 6, p.ID)

	c.Delete(6)
	c.Delete(5)
	p, err = c.Create(Draft{Name: strp("m"), Price: f64p(1), Stock: intp(1)})
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
}

func TestCreateRequiresFields(t *testing.T) {
	c := New()
	cases := map[string]Draft{
		"missing field name":  {Price: f64p(1), Stock: intp(1)},
		"missing field price": {Name: strp("a"), Stock: intp(1)},
		"missing field stock": {Name: strp("a"), Price: f64p(1)},
	}
	for msg, d := range cases {
		_, err := c.Create(d)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperr.ErrValidation))
		assert.EqualError(t, err, msg)
	}
	assert.Equal(t, 0, c.Len())
}

func TestGetNotFound(t *testing.T) {
	c := New(DemoProducts()...)
	_, err := c.Get(42)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	p, err := c.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "MacBook Air M2", p.Name)
}

func TestUpdateMergesFields(t *testing.T) {
	c := New(DemoProducts()...)
	p, err := c.Update(1, Patch{Price: f64p(10), Description: strp("d")})
	require.NoError(t, err)
	assert.Equal(t, "Laptop Dell XPS 13", p.Name)
	assert.Equal(t, 10.0, p.Price)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, "d", p.Description)

	_, err = c.Update(99, Patch{Name: strp("x")})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteIsIdempotent(t *testing.T) {
	c := New(DemoProducts()...)
	c.Delete(3)
	c.Delete(3)
	assert.Equal(t, 4, c.Len())
	_, err := c.Get(3)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListReturnsCopy(t *testing.T) {
	c := New(DemoProducts()...)
	list := c.List()
	list[0].Stock = 0
	p, _ := c.Get(1)
	assert.Equal(t, 5, p.Stock)
}

func TestDecrementStockAllOrNothing(t *testing.T) {
	c := New(DemoProducts()...)
	err := c.DecrementStock([]StockLine{
		{ProductID: 1, ProductName: "Laptop Dell XPS 13", Qty: 2},
		{ProductID: 4, ProductName: "MacBook Air M2", Qty: 4},
	})
	var se *StockError
	require.ErrorAs(t, err, &se)
	assert.True(t, errors.Is(err, apperr.ErrInsufficientStock))
	assert.Equal(t, 4, se.ProductID)
	assert.Equal(t, 4, se.Required)
	assert.Equal(t, 3, se.Available)

	p1, _ := c.Get(1)
	assert.Equal(t, 5, p1.Stock, "no partial decrement")

	require.NoError(t, c.DecrementStock([]StockLine{{ProductID: 1, Qty: 5}, {ProductID: 4, Qty: 1}}))
	p1, _ = c.Get(1)
	p4, _ := c.Get(4)
	assert.Equal(t, 0, p1.Stock)
	assert.Equal(t, 2, p4.Stock)
}

func TestDecrementStockMissingProduct(t *testing.T) {
	c := New(DemoProducts()...)
	err := c.DecrementStock([]StockLine{{ProductID: 9, ProductName: "gone", Qty: 1}})
	assert.True(t, errors.Is(err, apperr.ErrInsufficientStock))
	assert.Contains(t, err.Error(), "gone")
}

func TestDecrementStockConcurrentNeverOversells(t *testing.T) {
	c := New(Product{ID: 1, Name: "p", Price: 1, Stock: 10})
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.DecrementStock([]StockLine{{ProductID: 1, Qty: 1}}) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	p, _ := c.Get(1)
	assert.Equal(t, 10, ok)
	assert.Equal(t, 0, p.Stock)
}
