package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
)

// DispatchBookingNotifications fans out the post-commit notification
// channels for a freshly created booking: confirmation emails to customer
// and provider, a calendar invite, and an invoice. Each channel fails
// independently; failures are logged and never bubble up to the booking
// pipeline.
func DispatchBookingNotifications(bookingID uint) {
	var booking models.Booking
	if err := db.DB.Preload("User").Preload("Service").Preload("Provider.User").
		First(&booking, bookingID).Error; err != nil {
		log.Printf("Notification dispatch skipped, booking %d not found: %v", bookingID, err)
		return
	}

	if err := sendBookingConfirmation(&booking); err != nil {
		log.Printf("Error sending confirmation email for booking %d: %v", booking.ID, err)
	}
	if err := sendProviderNotification(&booking); err != nil {
		log.Printf("Error notifying provider for booking %d: %v", booking.ID, err)
	}
	if err := sendCalendarInvite(&booking); err != nil {
		log.Printf("Error sending calendar invite for booking %d: %v", booking.ID, err)
	}
	if err := sendInvoice(&booking); err != nil {
		log.Printf("Error generating invoice for booking %d: %v", booking.ID, err)
	}
}

func sendBookingConfirmation(booking *models.Booking) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been successfully created.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Status:</strong> %s</li>
			<li><strong>Total Price:</strong> %s</li>
		</ul>
		<p>Thank you for booking with us!</p>
	`, booking.User.FullName(), booking.Service.Name, booking.Provider.User.FullName(),
		booking.AppointmentTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"),
		booking.Status, booking.TotalPrice.StringFixed(2))

	return SendEmail(booking.User.Email, "Booking Confirmation", body)
}

func sendProviderNotification(booking *models.Booking) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new booking.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
	`, booking.Provider.User.FullName(), booking.Service.Name, booking.User.FullName(),
		booking.AppointmentTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"))

	return SendEmail(booking.Provider.User.Email, "New Booking Scheduled", body)
}

// sendCalendarInvite attaches a minimal iCalendar event for the booking.
func sendCalendarInvite(booking *models.Booking) error {
	ics := BuildCalendarEvent(booking)
	body := fmt.Sprintf("<p>Attached is the calendar invite for your %s booking.</p>", booking.Service.Name)
	return SendEmailWithAttachment(booking.User.Email, "Your Booking Calendar Invite", body,
		fmt.Sprintf("booking-%s.ics", booking.Reference), []byte(ics))
}

// BuildCalendarEvent renders the booking as a single-VEVENT iCalendar file.
func BuildCalendarEvent(booking *models.Booking) string {
	stamp := func(t time.Time) string { return t.UTC().Format("20060102T150405Z") }
	return fmt.Sprintf(
		"BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//servibook//booking-platform//EN\r\n"+
			"BEGIN:VEVENT\r\nUID:%s\r\nDTSTAMP:%s\r\nDTSTART:%s\r\nDTEND:%s\r\nSUMMARY:%s\r\n"+
			"END:VEVENT\r\nEND:VCALENDAR\r\n",
		booking.Reference, stamp(time.Now()), stamp(booking.AppointmentTime),
		stamp(booking.EndTime), booking.Service.Name)
}

func sendInvoice(booking *models.Booking) error {
	invoiceNumber := GenerateReference()
	body := fmt.Sprintf(`
		<p>Invoice %s for booking %s</p>
		<ul>
			<li><strong>Customer:</strong> %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Total Price:</strong> %s</li>
		</ul>
	`, invoiceNumber, booking.Reference, booking.User.FullName(), booking.Service.Name,
		booking.AppointmentTime.Format("2006-01-02"),
		booking.AppointmentTime.Format("15:04"),
		booking.TotalPrice.StringFixed(2))

	return SendEmail(booking.User.Email, fmt.Sprintf("Invoice for Booking %s", booking.Reference), body)
}
