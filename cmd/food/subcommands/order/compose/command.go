package compose

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/cart"
	"github.com/opst/foodfab/pkg/checkout"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

// ErrAborted is returned when the user quits without placing the order.
var ErrAborted = errors.New("order is not placed")

const help = `commands:
    menu                  show the menu
    add ITEM_ID [QTY]     add an item to the cart
    dec ITEM_ID           decrease quantity of an item by one
    rm ITEM_ID            remove an item from the cart
    cart                  show the cart and its price
    address TEXT          set the delivery address
    note TEXT             set special instructions
    submit                place the order
    quit                  quit without ordering
`

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Compose an order interactively.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to order from",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Compose an order line by line, reading commands from stdin.

`+help),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		foodEnv env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if err := sess.Require(); err != nil {
			return err
		}
		restaurantId := ids.ID(cl.Args()[ARG_RESTAURANT_ID][0])

		menu, err := client.GetMenu(ctx, restaurantId)
		if err != nil {
			return fmt.Errorf("%w: Restaurant Id:%s", err, restaurantId)
		}

		out := cl.Stdout()
		c := cart.New(restaurantId, cart.WithNotifier(cart.NotifierFunc(func(m string) {
			fmt.Fprintln(out, m)
		})))
		w := checkout.New(
			c, sess.User().Id, client,
			checkout.WithNavigator(func(orderId ids.ID) {
				logger.Printf("order is placed. Order Id:%s", orderId)
			}),
		)
		w.SetDeliveryAddress(foodEnv.Address)
		w.SetSpecialInstructions(foodEnv.Instructions)

		created, err := Run(ctx, cl.Stdin(), out, w, menu)
		if err != nil {
			return err
		}
		return order_create.Print(out, created)
	}
}

// Run reads commands from in until the order is placed or the user quits.
//
// Failures of each command are written to out and the loop continues,
// so the user can fix the order and submit again.
func Run(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	w *checkout.Workflow,
	menu []restaurants.MenuItem,
) (*orders.Detail, error) {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "type \"help\" for commands.\n> ")
	for scanner.Scan() {
		verb, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(verb) {
		case "":
		case "help", "?":
			fmt.Fprint(out, help)
		case "menu":
			printMenu(out, menu)
		case "add":
			id, qty, err := parseAdd(rest)
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			item, err := order_create.Lookup(menu, id)
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			for range qty {
				w.Cart().AddItem(item)
			}
		case "dec":
			w.Cart().DecrementItem(ids.ID(rest))
			printCart(out, w)
		case "rm":
			w.Cart().RemoveItem(ids.ID(rest))
			printCart(out, w)
		case "cart":
			printCart(out, w)
		case "address":
			w.SetDeliveryAddress(rest)
		case "note":
			w.SetSpecialInstructions(rest)
		case "submit":
			created, err := w.Submit(ctx)
			if err == nil {
				return created, nil
			}
			fmt.Fprintln(out, err)
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
		case "quit", "exit":
			return nil, ErrAborted
		default:
			fmt.Fprintf(out, "unknown command: %s\n", verb)
		}
		fmt.Fprint(out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, ErrAborted
}

func parseAdd(arg string) (ids.ID, int, error) {
	fields := strings.Fields(arg)
	switch len(fields) {
	case 1:
		return ids.ID(fields[0]), 1, nil
	case 2:
		qty, err := strconv.Atoi(fields[1])
		if err != nil || qty < 1 {
			return "", 0, fmt.Errorf("quantity should be a positive number: %s", fields[1])
		}
		return ids.ID(fields[0]), qty, nil
	default:
		return "", 0, errors.New("usage: add ITEM_ID [QTY]")
	}
}

func printMenu(out io.Writer, menu []restaurants.MenuItem) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, m := range menu {
		note := ""
		if !m.Available() {
			note = "(unavailable)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Id, m.Name, m.Price, note)
	}
	tw.Flush()
}

func printCart(out io.Writer, w *checkout.Workflow) {
	c := w.Cart()
	if c.IsEmpty() {
		fmt.Fprintln(out, "Your cart is empty")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, l := range c.Lines() {
		fmt.Fprintf(tw, "%s\t%s\tx%d\t%s\n", l.Item.Id, l.Item.Name, l.Quantity, l.Amount())
	}
	s := c.Summary()
	fmt.Fprintf(tw, "\tsubtotal\t\t%s\n", s.Subtotal)
	fmt.Fprintf(tw, "\tdelivery fee\t\t%s\n", s.DeliveryFee)
	fmt.Fprintf(tw, "\ttax\t\t%s\n", s.Tax)
	fmt.Fprintf(tw, "\ttotal\t\t%s\n", s.Total)
	tw.Flush()
	if a := w.DeliveryAddress(); a != "" {
		fmt.Fprintf(out, "deliver to: %s\n", a)
	}
}
