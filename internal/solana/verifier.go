package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"go.uber.org/zap"
)

const DefaultNetwork = "devnet"

const requestTimeout = 10 * time.Second

var networkEndpoints = map[string]string{
	"devnet":       "https://api.devnet.solana.com",
	"testnet":      "https://api.testnet.solana.com",
	"mainnet-beta": "https://api.mainnet-beta.solana.com",
}

// Verifier confirms submitted payment signatures against a Solana cluster.
type Verifier struct {
	logs   *zap.SugaredLogger
	client HTTPClient
}

func NewVerifier(logger *zap.SugaredLogger, client HTTPClient) *Verifier {
	return &Verifier{
		logs:   logger,
		client: client,
	}
}

// VerifySignature fetches the transaction for the given signature and reports
// whether it exists, succeeded on chain and references the expected accounts.
// Every failure mode collapses to false: verification is fail-closed and the
// caller retries later via re-verification when confirmation is merely delayed.
func (v *Verifier) VerifySignature(ctx context.Context, network, signature, expectedWallet, expectedTreasury string) bool {
	endpoint, ok := networkEndpoints[network]
	if !ok {
		endpoint = networkEndpoints[DefaultNetwork]
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body, err := json.Marshal(rpcRequest{
		Jsonrpc: "2.0",
		ID:      1,
		Method:  "getTransaction",
		Params:  []any{signature, map[string]string{"encoding": "json"}},
	})
	if err != nil {
		v.logs.Errorw("failed to marshal rpc request", "error", err, "signature", signature)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		v.logs.Errorw("failed to build rpc request", "error", err, "endpoint", endpoint)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		v.logs.Errorw("rpc request failed", "error", err, "endpoint", endpoint, "signature", signature)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.logs.Errorw("rpc request returned non-ok status", "status", resp.StatusCode, "endpoint", endpoint, "signature", signature)
		return false
	}

	var out rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		v.logs.Errorw("failed to decode rpc response", "error", err, "signature", signature)
		return false
	}

	if out.Result == nil {
		v.logs.Infow("transaction not found on chain", "network", network, "signature", signature)
		return false
	}

	if out.Result.Meta != nil && out.Result.Meta.Err != nil {
		v.logs.Infow("transaction failed on chain", "network", network, "signature", signature)
		return false
	}

	accountKeys := out.Result.Transaction.Message.AccountKeys
	if expectedWallet != "" && !slices.Contains(accountKeys, expectedWallet) {
		v.logs.Infow("wallet not referenced by transaction", "wallet", expectedWallet, "signature", signature)
		return false
	}
	if expectedTreasury != "" && !slices.Contains(accountKeys, expectedTreasury) {
		v.logs.Infow("treasury not referenced by transaction", "treasury", expectedTreasury, "signature", signature)
		return false
	}

	return true
}
