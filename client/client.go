package client

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/mailru/easyjson"

	uuid "github.com/satori/go.uuid"

	"github.com/shopspring/decimal"

	"github.com/soulgarden/vaultd/response"

	"github.com/rs/zerolog"
	"github.com/soulgarden/vaultd/conf"
	"github.com/soulgarden/vaultd/dictionary"

	"github.com/gorilla/websocket"
	"github.com/soulgarden/vaultd/request"
	"github.com/tevino/abool"
)

const pingInterval = 15 * time.Second
const readChSize = 1024
const writeChSize = 1024
const readDeadline = 20 * time.Second
const eventSize = 32768
const callTimeout = 30 * time.Second

type Client struct {
	id        int64
	cfg       *conf.Vault
	conn      *websocket.Conn
	sendCh    chan request.Msg
	ReadCh    chan []byte
	logger    *zerolog.Logger
	isClosed  *abool.AtomicBool
	pendingMx sync.Mutex
	pending   map[string]chan []byte
}

func (c *Client) read(interrupt chan<- os.Signal) {
	for {
		c.conn.SetReadLimit(eventSize)

		err := c.conn.SetReadDeadline(time.Now().Add(readDeadline))
		if err != nil {
			c.logger.Err(err).Msg("set read deadline")

			interrupt <- syscall.SIGINT
		}

		c.conn.SetPongHandler(func(string) error {
			err = c.conn.SetReadDeadline(time.Now().Add(readDeadline))
			if err != nil {
				c.logger.Err(err).Msg("set read deadline")

				interrupt <- syscall.SIGINT
			}

			return nil
		})

		msgType, sourceMessage, err := c.conn.ReadMessage()
		c.logger.Debug().
			Int("type", msgType).
			Bytes("payload", sourceMessage).
			Msg("got message")

		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				c.logger.Warn().Err(err).Msg("unexpected close error")

				interrupt <- syscall.SIGINT
			} else if !websocket.IsCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				c.logger.Err(err).Msg("got error")

				interrupt <- syscall.SIGINT
			}

			return
		}

		if c.deliverPending(sourceMessage) {
			continue
		}

		if c.isClosed.IsNotSet() {
			c.ReadCh <- sourceMessage
		} else {
			c.logger.Warn().Bytes("payload", sourceMessage).Msg("got message, but read channel closed")
		}
	}
}

// deliverPending routes a correlated reply to the caller waiting on its id.
// Uncorrelated messages, stream updates included, fall through to ReadCh.
func (c *Client) deliverPending(msg []byte) bool {
	id := &response.ID{}

	if err := easyjson.Unmarshal(msg, id); err != nil || id.ID == "" {
		return false
	}

	c.pendingMx.Lock()
	ch, ok := c.pending[id.ID]
	if ok {
		delete(c.pending, id.ID)
	}
	c.pendingMx.Unlock()

	if !ok {
		return false
	}

	ch <- msg
	close(ch)

	return true
}

func (c *Client) write(interrupt chan<- os.Signal) {
	for {
		msg, ok := <-c.sendCh

		if !ok {
			return
		}

		err := c.conn.WriteMessage(msg.Type, msg.Payload)
		if err != nil {
			if websocket.IsUnexpectedCloseError(
				err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
			) {
				c.logger.Warn().Err(err).Msg("Unexpected close error")
			}

			if c.isClosed.IsNotSet() && msg.Type == websocket.PingMessage {
				c.logger.Err(err).
					Int("type", msg.Type).
					Bytes("body", msg.Payload).
					Msg("ping failed, interrupt")

				interrupt <- syscall.SIGINT
			}
		}
	}
}

func (c *Client) pinger() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		if c.isClosed.IsNotSet() {
			c.sendCh <- request.Msg{Type: websocket.PingMessage}
		}
	}
}

func (c *Client) Close() {
	if c.isClosed.IsSet() {
		return
	}

	c.isClosed.Set()

	c.sendCh <- request.Msg{
		Type:    websocket.CloseMessage,
		Payload: websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	}

	close(c.sendCh)
	close(c.ReadCh)
}

func (c *Client) nextID() (int64, string) {
	id := atomic.AddInt64(&c.id, 1)

	return id, strconv.FormatInt(id, dictionary.DefaultIntBase)
}

func (c *Client) call(ctx context.Context, reqID string, body []byte) ([]byte, error) {
	respCh := make(chan []byte, 1)

	c.pendingMx.Lock()
	c.pending[reqID] = respCh
	c.pendingMx.Unlock()

	if err := c.sendMessage(body); err != nil {
		c.pendingMx.Lock()
		delete(c.pending, reqID)
		c.pendingMx.Unlock()

		return nil, err
	}

	timer := time.NewTimer(callTimeout)
	defer timer.Stop()

	select {
	case msg, ok := <-respCh:
		if !ok {
			return nil, dictionary.ErrWsReadChannelClosed
		}

		return msg, nil
	case <-timer.C:
		c.pendingMx.Lock()
		delete(c.pending, reqID)
		c.pendingMx.Unlock()

		return nil, fmt.Errorf("%w: request %s", dictionary.ErrCallTimeout, reqID)
	case <-ctx.Done():
		c.pendingMx.Lock()
		delete(c.pending, reqID)
		c.pendingMx.Unlock()

		return nil, ctx.Err()
	}
}

func (c *Client) checkErrorResponse(msg []byte) error {
	er := &response.Error{}

	if err := easyjson.Unmarshal(msg, er); err != nil {
		c.logger.Err(err).Bytes("response", msg).Msg("unmarshall")

		return err
	}

	if er.Error != nil {
		err := fmt.Errorf("%w: %s", dictionary.ErrResponse, er.Error.Reason)
		c.logger.Err(err).Bytes("response", msg).Msg("router error")

		return err
	}

	return nil
}

func (c *Client) authorize(apiKey, apiKeyPass string) error {
	_, reqID := c.nextID()

	r := &request.Auth{
		ID:       reqID,
		Type:     dictionary.AuthType,
		APIKey:   apiKey,
		Password: apiKeyPass,
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	return c.sendMessage(body)
}

// Authorize bounds the amount of an asset the router may pull from custody.
// Passing a zero amount revokes the standing authorization.
func (c *Client) Authorize(ctx context.Context, asset string, amount decimal.Decimal) error {
	_, reqID := c.nextID()

	r := &request.AuthorizeSpend{
		ID:     reqID,
		Type:   dictionary.AuthorizeSpend,
		Asset:  asset,
		Amount: amount.StringFixed(dictionary.AmountScale),
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	msg, err := c.call(ctx, reqID, body)
	if err != nil {
		return err
	}

	return c.checkErrorResponse(msg)
}

func (c *Client) Swap(
	ctx context.Context,
	amountIn, minAmountOut decimal.Decimal,
	route []string,
	recipient string,
	deadline time.Time,
) error {
	_, reqID := c.nextID()

	r := &request.ExecuteSwap{
		ID:           reqID,
		Type:         dictionary.ExecuteSwap,
		AmountIn:     amountIn.StringFixed(dictionary.AmountScale),
		MinAmountOut: minAmountOut.StringFixed(dictionary.AmountScale),
		Route:        route,
		Recipient:    recipient,
		Deadline:     deadline.Unix(),
		ExternalID:   uuid.NewV4().String(),
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	msg, err := c.call(ctx, reqID, body)
	if err != nil {
		return err
	}

	return c.checkErrorResponse(msg)
}

func (c *Client) CustodyBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	_, reqID := c.nextID()

	r := &request.GetCustodyBalance{
		ID:    reqID,
		Type:  dictionary.GetCustodyBalance,
		Asset: asset,
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return dictionary.ZeroAmount, err
	}

	msg, err := c.call(ctx, reqID, body)
	if err != nil {
		return dictionary.ZeroAmount, err
	}

	if err := c.checkErrorResponse(msg); err != nil {
		return dictionary.ZeroAmount, err
	}

	balance := &response.Balance{}

	if err := easyjson.Unmarshal(msg, balance); err != nil {
		c.logger.Err(err).Bytes("response", msg).Msg("unmarshall")

		return dictionary.ZeroAmount, err
	}

	total, err := decimal.NewFromString(balance.Total)
	if err != nil {
		return dictionary.ZeroAmount, fmt.Errorf("%w: %q", dictionary.ErrParseAmount, balance.Total)
	}

	return total, nil
}

func (c *Client) TransferIn(ctx context.Context, asset, from string, amount decimal.Decimal) error {
	_, reqID := c.nextID()

	r := &request.Transfer{
		ID:         reqID,
		Type:       dictionary.TransferIn,
		Asset:      asset,
		From:       from,
		Amount:     amount.StringFixed(dictionary.AmountScale),
		ExternalID: uuid.NewV4().String(),
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	msg, err := c.call(ctx, reqID, body)
	if err != nil {
		return err
	}

	return c.checkErrorResponse(msg)
}

func (c *Client) TransferOut(ctx context.Context, asset, to string, amount decimal.Decimal) error {
	_, reqID := c.nextID()

	r := &request.Transfer{
		ID:         reqID,
		Type:       dictionary.TransferOut,
		Asset:      asset,
		To:         to,
		Amount:     amount.StringFixed(dictionary.AmountScale),
		ExternalID: uuid.NewV4().String(),
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	msg, err := c.call(ctx, reqID, body)
	if err != nil {
		return err
	}

	return c.checkErrorResponse(msg)
}

func (c *Client) GetPairsAndSubscribe() (int64, error) {
	id, reqID := c.nextID()

	r := &request.Subscribe{
		ID:   reqID,
		Type: dictionary.GetPairsAndSubscribe,
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return id, err
	}

	return id, c.sendMessage(body)
}

func (c *Client) SubscribeOperations() (int64, error) {
	id, reqID := c.nextID()

	r := &request.Subscribe{
		ID:   reqID,
		Type: dictionary.SubscribeOperations,
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return id, err
	}

	return id, c.sendMessage(body)
}

func (c *Client) SendOperationResult(operationID, status, amountIn, amountOut, reason string) error {
	_, reqID := c.nextID()

	r := &request.OperationResult{
		ID:          reqID,
		Type:        dictionary.OperationResult,
		OperationID: operationID,
		Status:      status,
		AmountIn:    amountIn,
		AmountOut:   amountOut,
		Reason:      reason,
	}

	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	return c.sendMessage(body)
}

func (c *Client) sendMessage(body []byte) error {
	c.logger.Debug().Int("type", websocket.TextMessage).Bytes("body", body).Msg("send message")

	if c.isClosed.IsNotSet() {
		c.sendCh <- request.Msg{Type: websocket.TextMessage, Payload: body}
	} else {
		c.logger.Warn().
			Int("type", websocket.TextMessage).
			Bytes("body", body).
			Msg("got message for sending, but write channel closed")
	}

	return nil
}

func (c *Client) Auth() error {
	err := c.authorize(c.cfg.Router.APIKey, c.cfg.Router.APIKeyPass)
	if err != nil {
		c.logger.Err(err).Msg("authorization")

		return err
	}

	msg, ok := <-c.ReadCh
	if !ok {
		return dictionary.ErrWsReadChannelClosed
	}

	c.logger.Debug().
		Bytes("body", msg).
		Msg("got auth message")

	return c.checkErrorResponse(msg)
}

func newConnection(cfg *conf.Vault, logger *zerolog.Logger) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(
		(&url.URL{Scheme: cfg.Router.Scheme, Host: cfg.Router.DefaultAddr, Path: "/ws"}).String(),
		nil,
	)
	if err != nil {
		logger.Err(err).Msg("Dial error")

		return nil, err
	}

	logger.Debug().Msg("New connection established")

	cli := &Client{
		cfg:      cfg,
		conn:     conn,
		sendCh:   make(chan request.Msg, writeChSize),
		ReadCh:   make(chan []byte, readChSize),
		logger:   logger,
		isClosed: abool.New(),
		pending:  make(map[string]chan []byte),
	}

	return cli, err
}

func NewWsCli(cfg *conf.Vault, interrupt chan<- os.Signal, logger *zerolog.Logger) (*Client, error) {
	cli, err := newConnection(
		cfg,
		logger,
	)
	if err != nil {
		logger.Err(err).Msg("connection error")

		return nil, err
	}

	go cli.read(interrupt)
	go cli.write(interrupt)
	go cli.pinger()

	return cli, nil
}
