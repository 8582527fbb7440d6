package events

import (
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/awssnssqs"
	_ "gocloud.dev/pubsub/mempubsub"
	"strings"
)

// Open opens the topic behind url. https urls are SQS queue urls, anything else goes
// through the gocloud url openers, mem://name is useful locally.
func Open(ctx context.Context, url string) (*pubsub.Topic, error) {
	if !strings.HasPrefix(url, "https://") {
		topic, err := pubsub.OpenTopic(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("could not open topic %s: %w", url, err)
		}
		return topic, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}
	return awssnssqs.OpenSQSTopicV2(ctx, sqs.NewFromConfig(cfg), url, nil), nil
}
