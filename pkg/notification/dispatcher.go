package notification

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"

	"GiveBridge-Backend/entities"
	"GiveBridge-Backend/internal/utils/mailing"
	"GiveBridge-Backend/internal/utils/sms"
)

type Event string

const (
	EventCreated       Event = "Created"
	EventStatusChanged Event = "StatusChanged"
)

type (
	// Dispatcher fans a lifecycle event out to donor and NGO over email and
	// SMS. The donation is already persisted when Notify runs; a channel
	// failure is logged and never propagated.
	Dispatcher interface {
		Notify(event Event, donation *entities.Donation, donor *entities.Donor, ngo *entities.NGO)
	}

	dispatcher struct {
		sendMail  func(toEmail string, subject string, body string) error
		smsSender sms.Sender
	}
)

func NewDispatcher(smsSender sms.Sender) Dispatcher {
	return &dispatcher{
		sendMail:  mailing.SendMail,
		smsSender: smsSender,
	}
}

func (d *dispatcher) Notify(event Event, donation *entities.Donation, donor *entities.Donor, ngo *entities.NGO) {
	subject, donorBody, ngoBody := buildMessages(event, donation, donor, ngo)

	if err := d.sendMail(donor.Email, subject, donorBody); err != nil {
		log.Errorf("donation %s: donor email failed: %v", donation.ID, err)
	}
	if err := d.sendMail(ngo.Email, subject, ngoBody); err != nil {
		log.Errorf("donation %s: ngo email failed: %v", donation.ID, err)
	}
	if err := d.smsSender.SendSMS(donor.PhoneNumber, stripTags(donorBody)); err != nil {
		log.Errorf("donation %s: donor sms failed: %v", donation.ID, err)
	}
	if err := d.smsSender.SendSMS(ngo.PhoneNumber, stripTags(ngoBody)); err != nil {
		log.Errorf("donation %s: ngo sms failed: %v", donation.ID, err)
	}
}

func buildMessages(event Event, donation *entities.Donation, donor *entities.Donor, ngo *entities.NGO) (subject, donorBody, ngoBody string) {
	itemLines := make([]string, 0, len(donation.Items))
	for _, item := range donation.Items {
		itemLines = append(itemLines, fmt.Sprintf("%s x%d", item.Category, item.Quantity))
	}
	itemList := strings.Join(itemLines, ", ")

	pickup := "as soon as possible"
	if donation.PickupOption == "scheduled" && donation.PickupDate != nil {
		pickup = fmt.Sprintf("%s (%s)", donation.PickupDate.Format("2 Jan 2006"), donation.PickupTime)
	}

	switch event {
	case EventCreated:
		subject = "New donation request"
		donorBody = fmt.Sprintf(
			"Hi %s,<br>Your donation (%s) to %s has been submitted. Pickup: %s at %s.",
			donor.Name, itemList, ngo.Name, pickup, donation.PickupAddress,
		)
		ngoBody = fmt.Sprintf(
			"Hi %s,<br>%s wants to donate %s. Pickup: %s at %s.",
			ngo.Name, donor.Name, itemList, pickup, donation.PickupAddress,
		)
	case EventStatusChanged:
		subject = fmt.Sprintf("Donation %s", strings.ToLower(donation.Status))
		detail := ""
		if donation.RejectionReason != "" {
			detail = fmt.Sprintf(" Reason: %s.", donation.RejectionReason)
		}
		donorBody = fmt.Sprintf(
			"Hi %s,<br>Your donation (%s) to %s is now %s.%s",
			donor.Name, itemList, ngo.Name, donation.Status, detail,
		)
		ngoBody = fmt.Sprintf(
			"Hi %s,<br>The donation from %s (%s) is now %s.%s",
			ngo.Name, donor.Name, itemList, donation.Status, detail,
		)
	}
	return subject, donorBody, ngoBody
}

func stripTags(body string) string {
	return strings.ReplaceAll(body, "<br>", " ")
}
