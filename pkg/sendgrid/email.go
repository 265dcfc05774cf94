package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/marketverse/storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) *EmailService {
	return &EmailService{client: sendgrid.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

// SendOrderConfirmation mails the buyer a summary of a freshly placed order.
func (e *EmailService) SendOrderConfirmation(ctx context.Context, to string, order *models.Order) error {

	from := mail.NewEmail(e.fromName, e.fromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewV3Mail()
	message.SetFrom(from)

	personalization := mail.NewPersonalization()
	personalization.AddTos(recipient)
	personalization.Subject = fmt.Sprintf("Order confirmation %s", order.ID)
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", plainTextSummary(order)))

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

func plainTextSummary(order *models.Order) string {

	var sb strings.Builder

	fmt.Fprintf(&sb, "Thank you for your order %s.\n\n", order.ID)

	for _, item := range order.Items {
		fmt.Fprintf(&sb, "%d x %s = %.2f\n", item.Quantity, item.ProductName, item.Total)
	}

	fmt.Fprintf(&sb, "\nTotal: %.2f\n", order.Total)
	fmt.Fprintf(&sb, "Shipping to: %s, %s, %s %s\n",
		order.ShippingAddress.FullName, order.ShippingAddress.Address,
		order.ShippingAddress.City, order.ShippingAddress.PostalCode)

	return sb.String()
}
