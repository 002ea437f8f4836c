package sms

import (
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"GiveBridge-Backend/internal/utils"
)

type Sender interface {
	SendSMS(toNumber string, body string) error
}

type twilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioSender() Sender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: utils.GetConfig("TWILIO_ACCOUNT_SID"),
		Password: utils.GetConfig("TWILIO_AUTH_TOKEN"),
	})
	return &twilioSender{
		client:     client,
		fromNumber: utils.GetConfig("TWILIO_FROM_NUMBER"),
	}
}

func (t *twilioSender) SendSMS(toNumber string, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(t.fromNumber)
	params.SetBody(body)

	_, err := t.client.Api.CreateMessage(params)
	return err
}
