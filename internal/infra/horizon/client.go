// Package horizon adapts the Stellar SDK horizon client to the lumen network
// ports. It maps horizon failures onto domain error kinds so that the core
// never sees SDK error types.
package horizon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/stellar/go/clients/horizonclient"
	hProtocol "github.com/stellar/go/protocols/horizon"

	"github.com/aalvaropc/lumen/internal/domain"
	"github.com/aalvaropc/lumen/internal/ports"
)

type Client struct {
	hc  *horizonclient.Client
	log *slog.Logger
}

type Option func(*Client)

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithAppName tags requests with the X-App-Name/X-App-Version headers.
func WithAppName(name, version string) Option {
	return func(c *Client) {
		c.hc.AppName = name
		c.hc.AppVersion = version
	}
}

func New(horizonURL string, httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		hc: &horizonclient.Client{
			HorizonURL: horizonURL,
			HTTP:       httpClient,
		},
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ ports.AccountDirectory     = (*Client)(nil)
	_ ports.FeeSource            = (*Client)(nil)
	_ ports.TransactionSubmitter = (*Client)(nil)
)

func (c *Client) LoadAccount(ctx context.Context, accountID string) (domain.Account, error) {
	const op = "horizon.load_account"
	if err := ctx.Err(); err != nil {
		return domain.Account{}, &domain.OpError{Op: op, Kind: domain.KindTransport, Path: accountID, Err: err}
	}

	acc, err := c.hc.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		cerr := classify(op, accountID, err)
		c.log.Debug("horizon.load_account.failed", "account", accountID, "err", cerr)
		return domain.Account{}, cerr
	}

	seq, err := acc.GetSequenceNumber()
	if err != nil {
		return domain.Account{}, &domain.OpError{Op: op, Kind: domain.KindBadResponse, Path: accountID, Err: err}
	}

	return domain.Account{
		ID:       acc.AccountID,
		Sequence: seq,
		Balances: mapBalances(acc.Balances),
	}, nil
}

func (c *Client) FetchBaseFee(ctx context.Context) (int64, error) {
	const op = "horizon.fetch_base_fee"
	if err := ctx.Err(); err != nil {
		return 0, &domain.OpError{Op: op, Kind: domain.KindTransport, Err: err}
	}

	fee, err := c.hc.FetchBaseFee()
	if err != nil {
		return 0, classify(op, "", err)
	}
	return fee, nil
}

func (c *Client) Submit(ctx context.Context, env domain.SignedEnvelope) (string, error) {
	const op = "horizon.submit"
	if err := ctx.Err(); err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindTransport, Path: env.Hash, Err: err}
	}

	tx, err := c.hc.SubmitTransactionXDR(env.XDR)
	if err != nil {
		if codes := resultCodes(err); codes != "" {
			err = fmt.Errorf("%s: %w", codes, err)
		}
		return "", classify(op, env.Hash, err)
	}

	if tx.Hash == "" {
		return env.Hash, nil
	}
	return tx.Hash, nil
}

func mapBalances(in []hProtocol.Balance) []domain.RawBalance {
	out := make([]domain.RawBalance, 0, len(in))
	for _, b := range in {
		out = append(out, domain.RawBalance{
			AssetType:       domain.AssetType(b.Asset.Type),
			Balance:         b.Balance,
			AssetCode:       b.Asset.Code,
			AssetIssuer:     b.Asset.Issuer,
			LiquidityPoolID: b.LiquidityPoolId,
		})
	}
	return out
}

// classify maps horizon client errors onto domain kinds:
// 404 -> not_found, any other horizon problem or undecodable body ->
// bad_response, everything else (dial, TLS, timeout) -> transport.
func classify(op, path string, err error) error {
	kind := domain.KindTransport

	var herr *horizonclient.Error
	switch {
	case horizonclient.IsNotFoundError(err):
		kind = domain.KindNotFound
	case errors.As(err, &herr):
		kind = domain.KindBadResponse
		if herr.Response != nil && herr.Response.StatusCode == http.StatusNotFound {
			kind = domain.KindNotFound
		}
	case strings.Contains(err.Error(), "error decoding"):
		kind = domain.KindBadResponse
	}

	return &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
}

func resultCodes(err error) string {
	var herr *horizonclient.Error
	if !errors.As(err, &herr) {
		return ""
	}
	codes, cerr := herr.ResultCodes()
	if cerr != nil || codes == nil {
		return ""
	}

	parts := []string{}
	if codes.TransactionCode != "" {
		parts = append(parts, codes.TransactionCode)
	}
	parts = append(parts, codes.OperationCodes...)
	return strings.Join(parts, ", ")
}
