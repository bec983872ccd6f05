package flag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
)

// ItemRef is a menu item id with quantity, written as ID[:QTY].
type ItemRef struct {
	Id       ids.ID
	Quantity int
}

func (r ItemRef) String() string {
	return fmt.Sprintf("%s:%d", r.Id, r.Quantity)
}

// Parse reads ID[:QTY]. QTY defaults to 1 and must be positive.
func (r *ItemRef) Parse(v string) error {
	id, qty, hasQty := strings.Cut(strings.TrimSpace(v), ":")
	if id == "" {
		return fmt.Errorf("item id is empty: %q", v)
	}

	q := 1
	if hasQty {
		n, err := strconv.Atoi(qty)
		if err != nil {
			return fmt.Errorf("quantity is not a number: %q", v)
		}
		if n < 1 {
			return fmt.Errorf("quantity should be positive: %q", v)
		}
		q = n
	}

	r.Id = ids.ID(id)
	r.Quantity = q
	return nil
}

// Items is a repeatable flag of ItemRef.
type Items []ItemRef

func (i *Items) String() string {
	if i == nil || len(*i) == 0 {
		return ""
	}
	s := make([]string, 0, len(*i))
	for _, r := range *i {
		s = append(s, r.String())
	}
	return strings.Join(s, " ")
}

func (i *Items) Set(v string) error {
	var r ItemRef
	if err := r.Parse(v); err != nil {
		return err
	}
	*i = append(*i, r)
	return nil
}

// Rating is a minimum rating, or "all".
type Rating struct {
	v     float64
	isSet bool
}

func (r *Rating) String() string {
	if r == nil || !r.isSet {
		return "all"
	}
	return strconv.FormatFloat(r.v, 'f', -1, 64)
}

func (r *Rating) Set(v string) error {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, "all") {
		r.v = 0
		r.isSet = false
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("rating should be a number or \"all\": %q", v)
	}
	r.v = f
	r.isSet = true
	return nil
}

// Min is the minimum rating, or nil for "all".
func (r *Rating) Min() *float64 {
	if r == nil || !r.isSet {
		return nil
	}
	v := r.v
	return &v
}

// Status is an order status flag. Unknown statuses are rejected.
type Status orders.Status

func (s *Status) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

func (s *Status) Set(v string) error {
	st, err := orders.ParseStatus(v)
	if err != nil {
		return err
	}
	*s = Status(st)
	return nil
}
