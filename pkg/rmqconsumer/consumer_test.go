package rmqconsumer

import (
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"customer-manager/config"
)

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		body       string
		wantAction string
		wantErr    bool
	}
	cases := []tc{
		{"POST -> CustomerCreated", "POST", `{"customer_id":1}`, ActionCreated, false},
		{"PUT -> CustomerUpdated", "PUT", `{"customer_id":2}`, ActionUpdated, false},
		{"DELETE -> CustomerDeleted", "DELETE", `{"customer_id":3}`, ActionDeleted, false},
		{"Unknown -> error", "PATCH", `{"customer_id":4}`, "", true},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			c := &Consumer{log: zap.New(core)}

			msg := amqp091.Delivery{
				RoutingKey: tt.routingKey,
				MessageId:  "m-1",
				Headers:    amqp091.Table{"customer_id": "7"},
				Body:       []byte(tt.body),
			}
			err := c.delivery(msg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, logs.Len())
				return
			}
			require.NoError(t, err)

			entries := logs.FilterMessage("customer change").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantAction, fields["action"])
			assert.Equal(t, "7", fields["customer_id"])
			assert.Equal(t, tt.body, fields["event"])
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}
