package mailer

//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqsTypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"bootcamp-api/pkg/cerror"
	"bootcamp-api/pkg/config"
)

// Message is the body consumed by the email service listening on the queue.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type Mailer interface {
	Send(ctx context.Context, message *Message) error
}

type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type mailer struct {
	sqsClient   SQSClient
	emailConfig *config.EmailConfig
}

func NewMailer(sqsClient SQSClient, emailConfig *config.EmailConfig) Mailer {
	return &mailer{
		sqsClient:   sqsClient,
		emailConfig: emailConfig,
	}
}

func (m *mailer) Send(ctx context.Context, message *Message) error {
	if message.From == "" {
		message.From = fmt.Sprintf("%s <%s>", m.emailConfig.FromName, m.emailConfig.FromEmail)
	}

	messageBodyBytes, err := json.Marshal(message)
	if err != nil {
		return cerror.EmailDeliveryFailed().
			SetLogMessage("error occurred while marshal email message").
			WithFields(zap.Error(err))
	}

	_, err = m.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(m.emailConfig.QueueUrl),
		MessageBody: aws.String(string(messageBodyBytes)),
		MessageAttributes: map[string]sqsTypes.MessageAttributeValue{
			"From": {
				DataType:    aws.String("String"),
				StringValue: aws.String("BootcampAPI"),
			},
			"To": {
				DataType:    aws.String("String"),
				StringValue: aws.String("EmailAPI"),
			},
		},
	})
	if err != nil {
		return cerror.EmailDeliveryFailed().
			SetLogMessage("error occurred while send message to email queue").
			WithFields(zap.Error(err))
	}

	return nil
}
