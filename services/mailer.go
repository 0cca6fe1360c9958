package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"pizza-delivery-shop/config"
	"pizza-delivery-shop/models"
	"pizza-delivery-shop/utils"
)

// SMTPMailer sends plain-text order confirmations through the shop SMTP
// account.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	shop   config.ShopConfig
}

func NewSMTPMailer(mail config.MailConfig, shop config.ShopConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(mail.Host, mail.Port, mail.Username, mail.Password),
		from:   mail.From,
		shop:   shop,
	}
}

func (m *SMTPMailer) SendOrderConfirmation(order *models.Order, areaName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", order.CustomerEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Order Confirmation - #%d from %s", order.ID, m.shop.ShopName))
	msg.SetBody("text/plain", ConfirmationBody(order, areaName, m.shop))
	return m.dialer.DialAndSend(msg)
}

// ConfirmationBody renders the confirmation email text: itemized lines,
// subtotal, delivery charge when nonzero, grand total and any customer
// notes.
func ConfirmationBody(order *models.Order, areaName string, shop config.ShopConfig) string {
	var b strings.Builder
	symbol := shop.CurrencySymbol

	fmt.Fprintf(&b, "Dear %s,\n\n", order.CustomerName)
	b.WriteString("Thank you for your order! Here are the details:\n\n")
	fmt.Fprintf(&b, "Order ID: #%d\n", order.ID)
	fmt.Fprintf(&b, "Order Type: %s\n", titleCase(order.OrderType))

	if order.OrderType == models.OrderTypeDelivery {
		fmt.Fprintf(&b, "Delivery Area: %s\n", areaName)
		fmt.Fprintf(&b, "Delivery Address: %s\n", order.DeliveryAddress)
	}

	b.WriteString("\nOrder Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "- %s (%s) x%d = %s\n",
			item.Name, item.SizeType, item.Quantity, utils.FormatMoney(symbol, item.LineTotal))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", utils.FormatMoney(symbol, order.Subtotal))
	if order.DeliveryCharge > 0 {
		fmt.Fprintf(&b, "Delivery Charge: %s\n", utils.FormatMoney(symbol, order.DeliveryCharge))
	}
	fmt.Fprintf(&b, "Total: %s\n", utils.FormatMoney(symbol, order.TotalAmount))

	if order.Notes != "" {
		fmt.Fprintf(&b, "\nSpecial Instructions: %s\n", order.Notes)
	}

	b.WriteString("\nWe'll contact you shortly to confirm your order.\n\n")
	fmt.Fprintf(&b, "Thank you for choosing %s!\n", shop.ShopName)
	if shop.ShopPhone != "" {
		fmt.Fprintf(&b, "Contact us: %s\n", shop.ShopPhone)
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
