package notification

import (
	"fmt"

	"paquetes-elclub/httpServices/sms"
	"paquetes-elclub/logger"
	announcementModel "paquetes-elclub/models/announcement"
	notificationModel "paquetes-elclub/models/notification"
	parcelModel "paquetes-elclub/models/parcel"

	"gorm.io/gorm"
)

// Sender abstracts the SMS gateway so tests can run without the network
type Sender interface {
	Send(phone, message string) error
}

// Service dispatches customer notifications and records every attempt.
// All dispatch is best-effort: a gateway failure is logged on the record,
// never bubbled up to the request that triggered it.
type Service struct {
	DB  *gorm.DB
	SMS Sender
}

// NewService creates a new notification service
func NewService(db *gorm.DB, smsClient *sms.SMSClient) *Service {
	return &Service{
		DB:  db,
		SMS: smsClient,
	}
}

// AnnouncementCreated sends the confirmation SMS with the tracking code and
// queues an email record when the customer left an address.
func (s *Service) AnnouncementCreated(a *announcementModel.Announcement) {
	body := fmt.Sprintf(
		"Hola %s, recibimos el anuncio de tu paquete con guia %s. Consulta su estado con el codigo %s.",
		a.CustomerName, a.GuideNumber, a.TrackingCode,
	)
	s.dispatchSMS(a.ID, a.Phone, body)

	if a.Customer != nil && a.Customer.Email != nil {
		s.queueEmail(a.ID, *a.Customer.Email, body)
	}
}

// ParcelStatusChanged notifies the customer on meaningful lifecycle changes
func (s *Service) ParcelStatusChanged(p *parcelModel.Parcel, status parcelModel.ParcelStatus) {
	var body string
	switch status {
	case parcelModel.ParcelStatusReceived:
		body = fmt.Sprintf("Tu paquete con codigo %s llego a nuestras instalaciones.", p.Announcement.TrackingCode)
	case parcelModel.ParcelStatusDelivered:
		body = fmt.Sprintf("Tu paquete con codigo %s fue entregado. Gracias por usar Paquetes El Club.", p.Announcement.TrackingCode)
	default:
		return
	}
	s.dispatchSMS(p.AnnouncementID, p.Announcement.Phone, body)
}

func (s *Service) dispatchSMS(announcementID uint, phone, body string) {
	record := notificationModel.Notification{
		AnnouncementID: announcementID,
		Channel:        notificationModel.ChannelSMS,
		Recipient:      phone,
		Body:           body,
		Status:         notificationModel.StatusQueued,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		logger.Error("Failed to record SMS notification", err)
		return
	}

	if err := s.SMS.Send(phone, body); err != nil {
		logger.Error(fmt.Sprintf("Failed to send SMS to %s", phone), err)
		record.MarkFailed(err)
	} else {
		logger.Success(fmt.Sprintf("SMS sent to %s for announcement %d", phone, announcementID))
		record.MarkSent()
	}

	if err := s.DB.Save(&record).Error; err != nil {
		logger.Error("Failed to update SMS notification status", err)
	}
}

// queueEmail only records the message; actual SMTP delivery is handled by an
// external worker.
func (s *Service) queueEmail(announcementID uint, email, body string) {
	record := notificationModel.Notification{
		AnnouncementID: announcementID,
		Channel:        notificationModel.ChannelEmail,
		Recipient:      email,
		Body:           body,
		Status:         notificationModel.StatusQueued,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		logger.Error("Failed to queue email notification", err)
	}
}
