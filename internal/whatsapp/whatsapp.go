// Package whatsapp builds prefilled wa.me deep links for the
// cash-on-delivery order flow. There is no WhatsApp API involved: the
// customer opens the link and sends the message themselves.
package whatsapp

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultNumber is the TPH order line, international format without '+'.
const DefaultNumber = "923328888935"

// Order is a validated order form ready to be turned into a message.
type Order struct {
	ProductTitle string
	Name         string
	Phone        string
	Address      string
	City         string
	Quantity     int
	Total        int // rupees

	// Unit labels for the quantity line, e.g. Bottle/Bottles or
	// Month Pack/Months Pack.
	UnitSingular string
	UnitPlural   string

	// Reference is echoed in the message so the order can be matched
	// to the chat later. Optional.
	Reference string
}

func (o Order) unit() string {
	if o.Quantity == 1 {
		return o.UnitSingular
	}
	return o.UnitPlural
}

// Message renders the order request text sent to the shop.
func Message(o Order) string {
	var b strings.Builder
	b.WriteString("I would like to order " + o.ProductTitle + ".\n\n")
	b.WriteString("Name: " + o.Name + "\n")
	b.WriteString("Phone: " + o.Phone + "\n")
	b.WriteString("Address: " + o.Address + "\n")
	b.WriteString("City: " + o.City + "\n")
	b.WriteString("Quantity: " + strconv.Itoa(o.Quantity) + " " + o.unit() + "\n")
	b.WriteString("Total: Rs " + strconv.Itoa(o.Total) + "/-\n")
	if o.Reference != "" {
		b.WriteString("Order Ref: " + o.Reference + "\n")
	}
	b.WriteString("\nPlease confirm my order. Thank you!")
	return b.String()
}

// Link returns the wa.me deep link that opens a chat with the number
// and the order message prefilled.
func Link(number string, o Order) string {
	if number == "" {
		number = DefaultNumber
	}
	q := url.Values{"text": {Message(o)}}
	return "https://wa.me/" + number + "?" + q.Encode()
}
