package notification

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GiveBridge-Backend/entities"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type recordingSMS struct {
	sent []sentMail
	err  error
}

func (r *recordingSMS) SendSMS(toNumber string, body string) error {
	r.sent = append(r.sent, sentMail{to: toNumber, body: body})
	return r.err
}

func fixtureParties() (*entities.Donation, *entities.Donor, *entities.NGO) {
	donor := &entities.Donor{
		ID:          uuid.New(),
		Name:        "Maya",
		Email:       "maya@example.com",
		PhoneNumber: "+15550100",
	}
	ngo := &entities.NGO{
		ID:          uuid.New(),
		Name:        "Helping Hands",
		Email:       "contact@helpinghands.org",
		PhoneNumber: "+15550200",
	}
	donation := &entities.Donation{
		ID:            uuid.New(),
		DonorID:       donor.ID,
		NGOID:         ngo.ID,
		PickupAddress: "12 Elm St",
		PickupOption:  "asap",
		Status:        "Pending",
		Items: []*entities.DonationItem{
			{Category: "Clothes", Quantity: 3},
			{Category: "Books", Quantity: 1},
		},
	}
	return donation, donor, ngo
}

func TestNotifyCreatedHitsAllChannels(t *testing.T) {
	donation, donor, ngo := fixtureParties()
	var mails []sentMail
	smsRec := &recordingSMS{}
	d := &dispatcher{
		sendMail: func(to, subject, body string) error {
			mails = append(mails, sentMail{to: to, subject: subject, body: body})
			return nil
		},
		smsSender: smsRec,
	}

	d.Notify(EventCreated, donation, donor, ngo)

	require.Len(t, mails, 2)
	assert.Equal(t, "maya@example.com", mails[0].to)
	assert.Equal(t, "contact@helpinghands.org", mails[1].to)
	assert.Equal(t, "New donation request", mails[0].subject)
	assert.Contains(t, mails[0].body, "Clothes x3, Books x1")
	assert.Contains(t, mails[0].body, "as soon as possible")
	assert.Contains(t, mails[1].body, "Maya wants to donate")

	require.Len(t, smsRec.sent, 2)
	assert.Equal(t, "+15550100", smsRec.sent[0].to)
	assert.Equal(t, "+15550200", smsRec.sent[1].to)
	assert.NotContains(t, smsRec.sent[0].body, "<br>")
}

func TestNotifyRejectionCarriesReason(t *testing.T) {
	donation, donor, ngo := fixtureParties()
	donation.Status = "Rejected"
	donation.RejectionReason = "Items not in working condition"

	var mails []sentMail
	d := &dispatcher{
		sendMail: func(to, subject, body string) error {
			mails = append(mails, sentMail{to: to, subject: subject, body: body})
			return nil
		},
		smsSender: &recordingSMS{},
	}

	d.Notify(EventStatusChanged, donation, donor, ngo)

	require.Len(t, mails, 2)
	assert.Equal(t, "Donation rejected", mails[0].subject)
	assert.Contains(t, mails[0].body, "Reason: Items not in working condition")
}

// One failing channel must not keep the others from being attempted.
func TestNotifyChannelFailureDoesNotShortCircuit(t *testing.T) {
	donation, donor, ngo := fixtureParties()
	smsRec := &recordingSMS{err: errors.New("twilio down")}
	mailCalls := 0
	d := &dispatcher{
		sendMail: func(string, string, string) error {
			mailCalls++
			return errors.New("smtp down")
		},
		smsSender: smsRec,
	}

	d.Notify(EventCreated, donation, donor, ngo)

	assert.Equal(t, 2, mailCalls)
	assert.Len(t, smsRec.sent, 2)
}
