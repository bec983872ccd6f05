package create

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/cart"
	"github.com/opst/foodfab/pkg/checkout"
	kflag "github.com/opst/foodfab/pkg/commandline/flag"
	"github.com/opst/foodfab/pkg/money"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

var (
	ErrUnknownMenuItem     = errors.New("menu item is not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

type Flags struct {
	Items        kflag.Items `flag:"item" alias:"i" metavar:"MENU_ITEM_ID[:QUANTITY]..." help:"menu item to order. Repeatable."`
	Address      string      `flag:"address" alias:"a" help:"delivery address. Defaults to \"address\" in foodenv."`
	Instructions string      `flag:"instructions" help:"special instructions. Defaults to \"instructions\" in foodenv."`
	DryRun       bool        `flag:"dry-run" alias:"n" help:"print the order and its price without placing it."`
}

// Preview is an order not placed yet, with its price.
type Preview struct {
	Draft       orders.Draft `json:"order"`
	Subtotal    money.Amount `json:"subtotal"`
	DeliveryFee money.Amount `json:"deliveryFee"`
	Tax         money.Amount `json:"tax"`
	Total       money.Amount `json:"total"`
}

// NewPreview prices the current cart of w.
func NewPreview(w *checkout.Workflow) Preview {
	s := w.Cart().Summary()
	return Preview{
		Draft:       w.Draft(),
		Subtotal:    s.Subtotal,
		DeliveryFee: s.DeliveryFee,
		Tax:         s.Tax,
		Total:       s.Total,
	}
}

// FillCart adds refs into c, resolving them with menu.
//
// Nothing is added when any of refs cannot be resolved.
func FillCart(c *cart.Cart, menu []restaurants.MenuItem, refs []kflag.ItemRef) error {
	resolved := make([]restaurants.MenuItem, 0, len(refs))
	for _, ref := range refs {
		item, err := Lookup(menu, ref.Id)
		if err != nil {
			return err
		}
		resolved = append(resolved, item)
	}
	for n, ref := range refs {
		for range ref.Quantity {
			c.AddItem(resolved[n])
		}
	}
	return nil
}

// Lookup finds an available menu item by id.
func Lookup(menu []restaurants.MenuItem, itemId ids.ID) (restaurants.MenuItem, error) {
	for _, m := range menu {
		if m.Id != itemId {
			continue
		}
		if !m.Available() {
			return restaurants.MenuItem{}, fmt.Errorf("%w: %s (%s)", ErrMenuItemUnavailable, m.Name, itemId)
		}
		return m, nil
	}
	return restaurants.MenuItem{}, fmt.Errorf("%w: %s", ErrUnknownMenuItem, itemId)
}

// Print writes v as indented JSON.
func Print(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Place an order to a restaurant.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to order from",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Place an order with the given menu items, and print the order as JSON.

    {{ .Command }} 2 --item 21:2 --item 23 --address "1 Main St"

Prices are shown with "--dry-run": subtotal, flat delivery fee 2.99 and 8% tax.
The backend decides the final total.
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		foodEnv env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		if err := sess.Require(); err != nil {
			return err
		}
		flags := cl.Flags()
		restaurantId := ids.ID(cl.Args()[ARG_RESTAURANT_ID][0])
		if len(flags.Items) == 0 {
			return fmt.Errorf("%w: no --item is given", flarc.ErrUsage)
		}

		menu, err := client.GetMenu(ctx, restaurantId)
		if err != nil {
			return fmt.Errorf("%w: Restaurant Id:%s", err, restaurantId)
		}

		c := cart.New(restaurantId)
		if err := FillCart(c, menu, flags.Items); err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		w := checkout.New(
			c, sess.User().Id, client,
			checkout.WithNavigator(func(orderId ids.ID) {
				logger.Printf("order is placed. Order Id:%s", orderId)
			}),
		)
		w.SetDeliveryAddress(foodEnv.AddressOr(flags.Address))
		w.SetSpecialInstructions(foodEnv.InstructionsOr(flags.Instructions))

		if flags.DryRun {
			if err := w.Validate(); err != nil {
				return errors.Join(flarc.ErrUsage, err)
			}
			return Print(cl.Stdout(), NewPreview(w))
		}

		created, err := w.Submit(ctx)
		if err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				return errors.Join(flarc.ErrUsage, err)
			}
			return err
		}
		return Print(cl.Stdout(), created)
	}
}
