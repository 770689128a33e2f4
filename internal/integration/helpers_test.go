//go:build integration

package integration_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// observationFixtures are source-topic payloads with a known venue outcome.
var observationFixtures = []struct {
	key   string
	value string
	venue string
}{
	{
		key:   "riverside-track",
		value: `{"id":"obs-1","station":"riverside-track","observed_at":"2026-06-01T07:30:00Z","temperature":28,"humidity":65,"wind_speed":19,"uv_index":7,"precipitation":15,"air_quality":"Good"}`,
		venue: "Outdoor",
	},
	{
		key:   "harbour-pool",
		value: `{"id":"obs-2","station":"harbour-pool","observed_at":"2026-06-01T08:00:00Z","temperature":18,"humidity":90,"wind_speed":30,"uv_index":1,"precipitation":80,"air_quality":"Moderate","condition":"Rain"}`,
		venue: "Indoor",
	},
	{
		key:   "ridge-trail",
		value: `{"id":"obs-3","station":"ridge-trail","observed_at":"2026-06-01T09:00:00Z","units":"imperial","temperature":95,"humidity":30,"wind_speed":5,"uv_index":11,"precipitation":0,"air_quality":"Poor"}`,
		venue: "Indoor",
	},
	{
		key:   "city-park",
		value: `{"id":"obs-4","station":"city-park","observed_at":"2026-06-01T10:00:00Z","temperature":20,"humidity":50,"wind_speed":8,"uv_index":3,"precipitation":10}`,
		venue: "Outdoor",
	},
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startKafka runs a single-node Kafka container and returns its bootstrap address.
func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("athlete-advisory-test"),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err, "start kafka container")

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err, "resolve kafka brokers")
	require.NotEmpty(t, brokers)
	return brokers[0]
}

// createTopic creates a single-partition topic through the cluster controller.
func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err, "dial broker")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "find controller")

	ctrlConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err, "dial controller")
	defer ctrlConn.Close()

	require.NoError(t, ctrlConn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}), "create topic %s", topic)
}
