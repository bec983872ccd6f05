package cart_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/cart"
	"github.com/opst/foodfab/pkg/money"
)

func item(id ids.ID, name string, price string) restaurants.MenuItem {
	return restaurants.MenuItem{Id: id, Name: name, Price: money.MustParse(price)}
}

var (
	burger = item("1", "Burger", "9.99")
	fries  = item("2", "Fries", "3.50")
	soda   = item("3", "Soda", "1.25")
)

type line struct {
	Id       ids.ID
	Quantity int
}

func linesOf(c *cart.Cart) []line {
	ret := []line{}
	for _, l := range c.Lines() {
		ret = append(ret, line{Id: l.Item.Id, Quantity: l.Quantity})
	}
	return ret
}

func TestCart_Mutation(t *testing.T) {
	type Then struct {
		lines []line
	}
	theory := func(ops func(*cart.Cart), then Then) func(*testing.T) {
		return func(t *testing.T) {
			testee := cart.New("10")
			ops(testee)

			if diff := cmp.Diff(then.lines, linesOf(testee)); diff != "" {
				t.Errorf("lines: (-expected, +actual)\n%s", diff)
			}
			if testee.IsEmpty() != (len(then.lines) == 0) {
				t.Errorf("IsEmpty = %v, but lines = %v", testee.IsEmpty(), then.lines)
			}
		}
	}

	t.Run("when an item is added, it has a line with quantity 1", theory(
		func(c *cart.Cart) { c.AddItem(burger) },
		Then{lines: []line{{Id: "1", Quantity: 1}}},
	))

	t.Run("when an item is added twice, it has one line with quantity 2", theory(
		func(c *cart.Cart) { c.AddItem(burger); c.AddItem(burger) },
		Then{lines: []line{{Id: "1", Quantity: 2}}},
	))

	t.Run("when items are added, lines keep the first-added order", theory(
		func(c *cart.Cart) {
			c.AddItem(fries)
			c.AddItem(burger)
			c.AddItem(fries)
			c.AddItem(soda)
		},
		Then{lines: []line{{Id: "2", Quantity: 2}, {Id: "1", Quantity: 1}, {Id: "3", Quantity: 1}}},
	))

	t.Run("when an item with quantity 2 is decremented, it has quantity 1", theory(
		func(c *cart.Cart) { c.AddItem(burger); c.AddItem(burger); c.DecrementItem("1") },
		Then{lines: []line{{Id: "1", Quantity: 1}}},
	))

	t.Run("when an item with quantity 1 is decremented, the line is removed", theory(
		func(c *cart.Cart) { c.AddItem(burger); c.AddItem(fries); c.DecrementItem("1") },
		Then{lines: []line{{Id: "2", Quantity: 1}}},
	))

	t.Run("when an absent item is decremented, it does nothing", theory(
		func(c *cart.Cart) { c.AddItem(burger); c.DecrementItem("99") },
		Then{lines: []line{{Id: "1", Quantity: 1}}},
	))

	t.Run("when an item is removed, the line is removed regardless of quantity", theory(
		func(c *cart.Cart) {
			c.AddItem(burger)
			c.AddItem(burger)
			c.AddItem(soda)
			c.RemoveItem("1")
		},
		Then{lines: []line{{Id: "3", Quantity: 1}}},
	))

	t.Run("when an absent item is removed, it does nothing", theory(
		func(c *cart.Cart) { c.RemoveItem("1") },
		Then{lines: []line{}},
	))

	t.Run("when cleared, it is empty", theory(
		func(c *cart.Cart) { c.AddItem(burger); c.AddItem(fries); c.Clear() },
		Then{lines: []line{}},
	))
}

func TestCart_AddThenDecrement(t *testing.T) {
	for _, it := range []restaurants.MenuItem{burger, fries, soda} {
		testee := cart.New("10")
		testee.AddItem(burger)
		testee.AddItem(burger)
		testee.AddItem(soda)
		before := linesOf(testee)

		testee.AddItem(it)
		testee.DecrementItem(it.Id)

		if diff := cmp.Diff(before, linesOf(testee)); diff != "" {
			t.Errorf("add then decrement %s: (-before, +after)\n%s", it.Name, diff)
		}
	}
}

func TestCart_NoDuplicatedLines(t *testing.T) {
	testee := cart.New("10")
	sequence := []func(){
		func() { testee.AddItem(burger) },
		func() { testee.AddItem(fries) },
		func() { testee.DecrementItem("1") },
		func() { testee.AddItem(burger) },
		func() { testee.AddItem(burger) },
		func() { testee.RemoveItem("2") },
		func() { testee.AddItem(fries) },
		func() { testee.DecrementItem("2") },
		func() { testee.DecrementItem("2") },
		func() { testee.AddItem(soda) },
	}
	for n, op := range sequence {
		op()
		seen := map[ids.ID]bool{}
		for _, l := range testee.Lines() {
			if seen[l.Item.Id] {
				t.Fatalf("step %d: duplicated line for %s", n, l.Item.Id)
			}
			seen[l.Item.Id] = true
			if l.Quantity < 1 {
				t.Fatalf("step %d: line %s has quantity %d", n, l.Item.Id, l.Quantity)
			}
		}
	}

	if actual := testee.ItemCount(); actual != 3 {
		t.Errorf("ItemCount: (actual, expected) = (%d, %d)", actual, 3)
	}
	if actual := testee.Quantity("1"); actual != 2 {
		t.Errorf("Quantity(1): (actual, expected) = (%d, %d)", actual, 2)
	}
	if actual := testee.Quantity("2"); actual != 0 {
		t.Errorf("Quantity(2): (actual, expected) = (%d, %d)", actual, 0)
	}
}

func TestCart_Prices(t *testing.T) {
	type Then struct {
		subtotal string
		tax      string
		total    string
	}
	theory := func(items []restaurants.MenuItem, then Then) func(*testing.T) {
		return func(t *testing.T) {
			testee := cart.New("10")
			for _, it := range items {
				testee.AddItem(it)
			}

			summary := testee.Summary()
			for name, pair := range map[string][2]money.Amount{
				"subtotal": {testee.Subtotal(), money.MustParse(then.subtotal)},
				"fee":      {testee.DeliveryFee(), money.MustParse("2.99")},
				"tax":      {testee.Tax(), money.MustParse(then.tax)},
				"total":    {testee.Total(), money.MustParse(then.total)},
				"summary":  {summary.Total, money.MustParse(then.total)},
			} {
				if !pair[0].Equal(pair[1]) {
					t.Errorf("%s: (actual, expected) = (%s, %s)", name, pair[0].Exact(), pair[1].Exact())
				}
			}

			if !testee.Total().Equal(money.Sum(testee.Subtotal(), testee.DeliveryFee(), testee.Tax())) {
				t.Errorf("total != subtotal + fee + tax")
			}
		}
	}

	t.Run("when the cart is empty, subtotal is 0 and total is the delivery fee", theory(
		nil,
		Then{subtotal: "0", tax: "0", total: "2.99"},
	))

	t.Run("when the cart has items, it sums unit price x quantity exactly", theory(
		[]restaurants.MenuItem{burger, burger, fries},
		Then{subtotal: "23.48", tax: "1.8784", total: "28.3484"},
	))

	t.Run("when prices are not representable in binary, it keeps them exact", theory(
		[]restaurants.MenuItem{item("7", "Gum", "0.1"), item("7", "Gum", "0.1"), item("7", "Gum", "0.1")},
		Then{subtotal: "0.3", tax: "0.024", total: "3.314"},
	))
}

func TestCart_NoDrift(t *testing.T) {
	testee := cart.New("10")
	testee.AddItem(fries)
	expected := testee.Total()

	for range 500 {
		testee.AddItem(item("8", "Tea", "0.07"))
		testee.AddItem(burger)
		testee.DecrementItem("8")
		testee.DecrementItem("1")
	}

	if actual := testee.Total(); !actual.Equal(expected) {
		t.Errorf("(actual, expected) = (%s, %s)", actual.Exact(), expected.Exact())
	}
}

func TestCart_Notifier(t *testing.T) {
	messages := []string{}
	testee := cart.New("10", cart.WithNotifier(cart.NotifierFunc(func(m string) {
		messages = append(messages, m)
	})))

	testee.AddItem(burger)
	testee.AddItem(burger)
	testee.DecrementItem("1")

	expected := []string{"Burger added to cart!", "Burger added to cart!"}
	if diff := cmp.Diff(expected, messages); diff != "" {
		t.Errorf("messages: (-expected, +actual)\n%s", diff)
	}
}

func TestCart_Reset(t *testing.T) {
	testee := cart.New("10")
	testee.AddItem(burger)
	testee.Reset("20")

	if !testee.IsEmpty() {
		t.Errorf("cart is not empty after reset")
	}
	if testee.RestaurantId() != "20" {
		t.Errorf("RestaurantId: (actual, expected) = (%s, %s)", testee.RestaurantId(), "20")
	}
}

func TestCart_LineItems(t *testing.T) {
	testee := cart.New("10")
	testee.AddItem(fries)
	testee.AddItem(burger)
	testee.AddItem(fries)

	actual := testee.LineItems()
	expected := []orders.LineItem{
		{MenuItemId: "2", Quantity: 2, UnitPrice: money.MustParse("3.50")},
		{MenuItemId: "1", Quantity: 1, UnitPrice: money.MustParse("9.99")},
	}
	if !cmp.Equal(expected, actual) {
		t.Errorf("(actual, expected) = (%v, %v)", actual, expected)
	}
}
