package whatsapp

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"dental-leads/pkg/logger"
)

const channelPrefix = "whatsapp:"

// Client defines the interface for sending WhatsApp messages through Twilio
type Client interface {
	SendMessage(to, body string) error
}

type clientImpl struct {
	client *twilio.RestClient
	from   string
}

// NewClient creates a new Twilio WhatsApp client
func NewClient(accountSid, authToken, from string) Client {
	return NewClientWithHTTPClient(accountSid, authToken, from, &http.Client{Timeout: 10 * time.Second})
}

// NewClientWithHTTPClient is NewClient with the transport used to reach the Twilio API
func NewClientWithHTTPClient(accountSid, authToken, from string, httpClient *http.Client) Client {
	base := &twclient.Client{
		Credentials: twclient.NewCredentials(accountSid, authToken),
		HTTPClient:  httpClient,
	}
	base.SetAccountSid(accountSid)

	return &clientImpl{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{Client: base}),
		from:   from,
	}
}

func (c *clientImpl) SendMessage(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(Address(to))
	params.SetFrom(Address(c.from))
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("error sending whatsapp message: %w", err)
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	logger.Info("whatsapp message queued", zap.String("sid", sid))
	return nil
}

// Address puts a phone number on the WhatsApp channel
func Address(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}
