package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/servibook/booking-platform/db"
	"github.com/servibook/booking-platform/models"
	"github.com/servibook/booking-platform/utils"
)

// StartCronJobs initializes and starts the cron scheduler for booking reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for booking reminders")
}

// sendBookingReminders checks for confirmed bookings starting in roughly an
// hour and emails the customer
func sendBookingReminders() {
	var bookings []models.Booking
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("User").Preload("Service").Preload("Provider.User").
		Where("status = ? AND appointment_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking); err != nil {
			log.Printf("Failed to send reminder for booking %d: %v", booking.ID, err)
			continue
		}
		log.Printf("Sent reminder for booking %d to %s", booking.ID, booking.User.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking) error {
	subject := fmt.Sprintf("Reminder: Upcoming Booking - %s", booking.Service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming booking scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Provider:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
	`, booking.User.FullName(), booking.Service.Name, booking.Provider.User.FullName(),
		booking.AppointmentTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"))

	return utils.SendEmail(booking.User.Email, subject, body)
}
