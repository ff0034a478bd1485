// Package blockchain implements the chain gateway over the settlement node's
// JSON-RPC endpoint and the sponsorship relay's HTTP API.
package blockchain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/waveline-inc/waveline/internal/application/payment/chain"
	vo "github.com/waveline-inc/waveline/internal/domain/invoice/valueobjects"
	sharedConfig "github.com/waveline-inc/waveline/internal/shared/config"
	"github.com/waveline-inc/waveline/internal/shared/logger"
)

const (
	defaultRequestTimeout = 30 * time.Second
	// Maximum response body size (1MB)
	maxChainResponseSize = 1 << 20
)

// RPCClient talks to the settlement node. Regular transfers go through the
// node's JSON-RPC endpoint; sponsored transfers go through the relay, which
// fronts the gas and settles against the payee's sponsorship budget.
type RPCClient struct {
	rpcURL      string
	relayURL    string
	relayAPIKey string
	httpClient  *http.Client
	logger      logger.Interface
}

var _ chain.Client = (*RPCClient)(nil)

func NewRPCClient(cfg sharedConfig.ChainConfig, logger logger.Interface) *RPCClient {
	timeout := defaultRequestTimeout
	if cfg.RequestTimeout > 0 {
		timeout = time.Duration(cfg.RequestTimeout) * time.Second
	}

	return &RPCClient{
		rpcURL:      cfg.RPCURL,
		relayURL:    cfg.RelayURL,
		relayAPIKey: cfg.RelayAPIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type transferParams struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Token  string `json:"token"`
}

func (c *RPCClient) GetBalance(ctx context.Context, address string, token vo.Token) (decimal.Decimal, error) {
	var result struct {
		Balance string `json:"balance"`
	}

	params := map[string]string{"address": address, "token": token.String()}
	if err := c.call(ctx, "wallet_getBalance", params, &result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to query balance: %w", err)
	}

	balance, err := decimal.NewFromString(result.Balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid balance %q: %w", result.Balance, err)
	}

	return balance, nil
}

func (c *RPCClient) Transfer(ctx context.Context, req chain.TransferRequest) (*chain.TransferResult, error) {
	var result struct {
		TxHash string `json:"txHash"`
	}

	params := transferParams{
		From:   req.From,
		To:     req.To,
		Amount: req.Amount.String(),
		Token:  req.Token.String(),
	}
	if err := c.call(ctx, "wallet_transfer", params, &result); err != nil {
		return nil, fmt.Errorf("transfer failed: %w", err)
	}
	if result.TxHash == "" {
		return nil, fmt.Errorf("transfer returned no transaction hash")
	}

	c.logger.Infow("transfer confirmed",
		"tx_hash", result.TxHash,
		"token", req.Token,
		"amount", req.Amount,
	)

	return &chain.TransferResult{TxHash: result.TxHash}, nil
}

// SponsoredTransfer submits the transfer through the relay. The relay rejects
// the request when the payee has no budget left; callers fall back to a
// regular transfer on any error here.
func (c *RPCClient) SponsoredTransfer(ctx context.Context, req chain.TransferRequest) (*chain.TransferResult, error) {
	if c.relayURL == "" {
		return nil, fmt.Errorf("sponsorship relay not configured")
	}

	body, err := json.Marshal(transferParams{
		From:   req.From,
		To:     req.To,
		Amount: req.Amount.String(),
		Token:  req.Token.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode relay request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL+"/v1/transfers", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create relay request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.relayAPIKey != "" {
		httpReq.Header.Set("X-API-Key", c.relayAPIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxChainResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read relay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var relayErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &relayErr) == nil && relayErr.Error != "" {
			return nil, fmt.Errorf("relay rejected transfer: %s", relayErr.Error)
		}
		return nil, fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	var result struct {
		TxHash string `json:"txHash"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode relay response: %w", err)
	}
	if result.TxHash == "" {
		return nil, fmt.Errorf("relay returned no transaction hash")
	}

	c.logger.Infow("sponsored transfer confirmed",
		"tx_hash", result.TxHash,
		"token", req.Token,
		"amount", req.Amount,
	)

	return &chain.TransferResult{TxHash: result.TxHash}, nil
}

func (c *RPCClient) call(ctx context.Context, method string, params, result any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return fmt.Errorf("failed to encode rpc request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create rpc request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rpc request failed: %w", err)
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxChainResponseSize)).Decode(&rpcResp); err != nil {
		return fmt.Errorf("failed to decode rpc response: %w", err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("failed to decode rpc result: %w", err)
	}

	return nil
}
