package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type AppointmentConfirmation struct {
	ToEmail      string
	CustomerName string
	BusinessName string
	ServiceName  string
	StartTime    time.Time
	EndTime      time.Time
}

type IEmailService interface {
	SendAppointmentConfirmation(confirmation *AppointmentConfirmation) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendAppointmentConfirmation(c *AppointmentConfirmation) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, c.BusinessName)
	m.SetHeader("To", c.ToEmail)
	m.SetHeader("Subject", fmt.Sprintf("Appointment Confirmation - %s", c.BusinessName))

	date := c.StartTime.Format("Monday, January 2, 2006")
	start := c.StartTime.Format("3:04 PM")
	end := c.EndTime.Format("3:04 PM")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto;">
			<div style="background-color: #4f46e5; color: white; padding: 20px; text-align: center;">
				<h2>%s</h2>
			</div>
			<div style="padding: 20px;">
				<p>Hi %s,</p>
				<p>Your appointment has been confirmed. Here are the details:</p>
				<div style="background-color: #f9fafb; padding: 15px; border-radius: 5px; margin: 20px 0;">
					<p><strong>Service:</strong> %s</p>
					<p><strong>Date:</strong> %s</p>
					<p><strong>Time:</strong> %s - %s</p>
				</div>
				<p>If you need to reschedule or cancel, please contact us.</p>
			</div>
			<div style="text-align: center; font-size: 12px; color: #6b7280; padding: 20px;">
				<p>This confirmation was sent by %s.</p>
			</div>
		</div>
	`, c.BusinessName, c.CustomerName, c.ServiceName, date, start, end, c.BusinessName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send appointment confirmation to %s: %w", c.ToEmail, err)
	}
	return nil
}
