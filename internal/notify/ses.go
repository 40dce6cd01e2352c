package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

// SESNotifier delivers notifications by email through AWS SESv2 to a fixed
// recipient list (team delegates, league admins).
type SESNotifier struct {
	client     *sesv2.Client
	sender     string
	recipients []string
}

// NewSESNotifier initializes an SES notifier using static credentials and region.
func NewSESNotifier(accessKeyID, secretAccessKey, region, sender string, recipients []string) (*SESNotifier, error) {
	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return nil, fmt.Errorf("ses credentials and region are required")
	}
	if sender == "" {
		return nil, fmt.Errorf("ses sender is required")
	}
	if len(recipients) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESNotifier{
		client:     sesv2.NewFromConfig(awsCfg),
		sender:     sender,
		recipients: recipients,
	}, nil
}

// Notify delivers a plain-text email to every configured recipient.
func (n *SESNotifier) Notify(ctx context.Context, subject, body string) error {
	if n == nil || n.client == nil {
		return fmt.Errorf("ses notifier is not initialized")
	}

	input := &sesv2.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: n.recipients,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
		FromEmailAddress: aws.String(n.sender),
	}

	if _, err := n.client.SendEmail(ctx, input); err != nil {
		log.Error().
			Err(err).
			Str("subject", subject).
			Time("timestamp", time.Now().UTC()).
			Msg("Failed to send SES email")
		return fmt.Errorf("send ses email: %w", err)
	}

	return nil
}
