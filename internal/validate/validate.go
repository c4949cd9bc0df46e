// Package validate checks inbound request payloads before they reach the
// services. The services themselves assume these preconditions hold.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"demo/ecommerce/internal/model"
)

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (m multiErr) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

func checkID(errs multiErr, field, id string) multiErr {
	if _, err := uuid.Parse(id); err != nil {
		errs = append(errs, fmt.Errorf("%s: must be a UUID", field))
	}
	return errs
}

// ID validates a single path identifier.
func ID(field, id string) error {
	var errs multiErr
	return checkID(errs, field, id).OrNil()
}

// CreateUser validates a user registration payload.
func CreateUser(email, password string) error {
	var errs multiErr
	if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, fmt.Errorf("email: invalid"))
	}
	if len(password) < 8 {
		errs = append(errs, fmt.Errorf("password: must be at least 8 characters"))
	}
	return errs.OrNil()
}

// CreateProduct validates a product creation payload.
func CreateProduct(name string, priceCents int64) error {
	var errs multiErr
	if strings.TrimSpace(name) == "" {
		errs = append(errs, fmt.Errorf("name: required"))
	}
	if priceCents < 0 {
		errs = append(errs, fmt.Errorf("price_cents: must be >= 0"))
	}
	return errs.OrNil()
}

// UpdateStatus validates an order status update payload.
func UpdateStatus(orderID string, status model.OrderStatus) error {
	var errs multiErr
	errs = checkID(errs, "order_id", orderID)
	if !model.ValidStatus(status) {
		errs = append(errs, fmt.Errorf("status: must be one of %v", model.Statuses()))
	}
	return errs.OrNil()
}

// CreateDetail validates an order detail creation payload. Quantity >= 1 is
// enforced here, not in the detail service.
func CreateDetail(orderID, productID string, quantity int) error {
	var errs multiErr
	errs = checkID(errs, "order_id", orderID)
	errs = checkID(errs, "product_id", productID)
	if quantity < 1 {
		errs = append(errs, fmt.Errorf("quantity: must be >= 1"))
	}
	return errs.OrNil()
}
