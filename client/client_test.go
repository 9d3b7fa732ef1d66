package client

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/request"
	"github.com/tevino/abool"
)

func TestClient_sendMessage(t *testing.T) {
	t.Parallel()

	type fields struct {
		id       int64
		cfg      *conf.Vault
		conn     *websocket.Conn
		sendCh   chan request.Msg
		ReadCh   chan []byte
		logger   *zerolog.Logger
		isClosed *abool.AtomicBool
	}

	type args struct {
		payload []byte
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr bool
	}{
		{
			name: "test 1",
			fields: fields{
				id:       0,
				cfg:      nil,
				conn:     &websocket.Conn{},
				sendCh:   make(chan request.Msg),
				ReadCh:   make(chan []byte),
				logger:   &zerolog.Logger{},
				isClosed: abool.New(),
			},
			args: args{
				payload: []byte(`{
					"id":"12342",
					"type":"transferIn",
					"asset":"REF",
					"from":"alice",
					"amount":"1000.000000",
					"externalId":"123e4567-e89b-12d3-a456-426614174000"
				}`),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt

		go func() {
			for range tt.fields.sendCh {
			}
		}()

		c := &Client{
			id:       tt.fields.id,
			cfg:      tt.fields.cfg,
			conn:     tt.fields.conn,
			sendCh:   tt.fields.sendCh,
			ReadCh:   tt.fields.ReadCh,
			logger:   tt.fields.logger,
			isClosed: tt.fields.isClosed,
			pending:  make(map[string]chan []byte),
		}

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := c.sendMessage(tt.args.payload); (err != nil) != tt.wantErr {
				t.Errorf("sendMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_deliverPending(t *testing.T) {
	t.Parallel()

	c := &Client{
		logger:   &zerolog.Logger{},
		isClosed: abool.New(),
		ReadCh:   make(chan []byte, 1),
		pending:  make(map[string]chan []byte),
	}

	respCh := make(chan []byte, 1)
	c.pending["7"] = respCh

	if !c.deliverPending([]byte(`{"id":"7","asset":"REF","total":"100.000000"}`)) {
		t.Fatal("correlated reply must be delivered to the waiting caller")
	}

	select {
	case msg := <-respCh:
		if len(msg) == 0 {
			t.Error("delivered message is empty")
		}
	default:
		t.Error("nothing delivered to the pending channel")
	}

	if c.deliverPending([]byte(`{"id":"8"}`)) {
		t.Error("uncorrelated reply must fall through to the stream")
	}

	if c.deliverPending([]byte(`{"op":"deposit"}`)) {
		t.Error("message without id must fall through to the stream")
	}
}

func BenchmarkClient_sendMessage(b *testing.B) {
	c := &Client{
		id:       0,
		cfg:      nil,
		conn:     &websocket.Conn{},
		sendCh:   make(chan request.Msg),
		ReadCh:   make(chan []byte),
		logger:   &zerolog.Logger{},
		isClosed: abool.New(),
		pending:  make(map[string]chan []byte),
	}

	go func() {
		for range c.sendCh {
		}
	}()

	payload := []byte(`{
		"id":"12342",
		"type":"transferIn",
		"asset":"REF",
		"from":"alice",
		"amount":"1000.000000",
		"externalId":"123e4567-e89b-12d3-a456-426614174000"
	}`)

	for i := 0; i < b.N; i++ {
		if err := c.sendMessage(payload); err != nil {
			b.Error(err)
			b.FailNow()
		}
	}
}
