// server/internal/mailer/mailer.go
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"pharma-factory-api-server/config"
	"pharma-factory-api-server/internal/apperrors"
)

// Mailer sends reorder emails to suppliers through the configured SMTP
// relay. Failures surface as ExternalServiceError and are not retried.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func New(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendSupplyRequest emails a supplier asking for quantity units of the
// named product.
func (m *Mailer) SendSupplyRequest(to, supplierName, productName string, quantity int64) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Supply Request")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYou have a new supply request for %d units of %s.\n\nPharma Factory Back Office",
		supplierName, quantity, productName))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send supply request email",
			zap.String("to", to),
			zap.String("product", productName),
			zap.Error(err))
		return &apperrors.ExternalServiceError{Service: "smtp", Err: err}
	}

	m.logger.Info("supply request email sent",
		zap.String("to", to),
		zap.String("product", productName),
		zap.Int64("quantity", quantity))
	return nil
}
