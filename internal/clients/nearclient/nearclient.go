package nearclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/sudostake/vault-indexer/internal/clients/client"
	"github.com/sudostake/vault-indexer/internal/config"
	"github.com/sudostake/vault-indexer/internal/vault"
)

type NearClient struct {
	httpClient *http.Client
	rpcOrigin  string
	cfg        *config.NearConfig
}

func NewNearClient(rpcOrigin string, cfg *config.NearConfig) *NearClient {
	return &NearClient{
		httpClient: &http.Client{},
		rpcOrigin:  rpcOrigin,
		cfg:        cfg,
	}
}

func (c *NearClient) GetBaseURL() string {
	return c.rpcOrigin
}

func (c *NearClient) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *NearClient) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *NearClient) GetVaultState(ctx context.Context, vaultID string) (*vault.RawVaultState, error) {
	params := &callFunctionParams{
		RequestType: requestTypeCallFunction,
		Finality:    finalityFinal,
		AccountID:   vaultID,
		MethodName:  viewGetVaultState,
		ArgsBase64:  emptyArgsBase64,
	}

	result, err := callWithRetry(ctx, c, methodQuery, params, func(r *callFunctionResult) (*vault.RawVaultState, error) {
		if r.Error != "" {
			return nil, retry.Unrecoverable(fmt.Errorf("get_vault_state failed on %s: %s", vaultID, r.Error))
		}

		payload, err := r.bytes()
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}

		var state vault.RawVaultState
		if err := json.Unmarshal(payload, &state); err != nil {
			return nil, retry.Unrecoverable(fmt.Errorf("failed to decode vault state of %s: %w", vaultID, err))
		}
		return &state, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get vault state of %s: %w", vaultID, err)
	}

	return result, nil
}

func (c *NearClient) GetEpochHeight(ctx context.Context) (int64, error) {
	// [null] asks for the validators of the latest block
	params := []any{nil}

	height, err := callWithRetry(ctx, c, methodValidators, params, func(r *validatorsResult) (int64, error) {
		return r.EpochHeight, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get epoch height: %w", err)
	}

	return height, nil
}

// callWithRetry sends a json-rpc request and converts its result with decode.
// Transport failures, 429/5xx responses and non handler rpc errors are retried.
func callWithRetry[R any, T any](
	ctx context.Context,
	c *NearClient,
	method string,
	params any,
	decode func(*R) (T, error),
) (T, error) {
	opts := &client.HttpClientOptions{
		Path:         "",
		TemplatePath: "/" + method,
	}

	call := func() (T, error) {
		var zero T

		resp, err := client.SendRequest[rpcRequest, rpcResponse[R]](
			ctx, c, http.MethodPost, opts, newRPCRequest(method, params),
		)
		if err != nil {
			return zero, err
		}

		if resp.Error != nil {
			if resp.Error.isUnknownAccount() {
				return zero, retry.Unrecoverable(fmt.Errorf("%w: %s", ErrUnknownAccount, resp.Error.Error()))
			}
			return zero, resp.Error
		}

		if resp.Result == nil {
			return zero, fmt.Errorf("empty result for %s", method)
		}

		return decode(resp.Result)
	}

	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetryTimes),
		retry.Delay(c.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", c.cfg.MaxRetryTimes).
				Str("method", method).
				Err(err).
				Msg("failed to call near rpc, retrying")
		}),
	)
}

func isRetryable(err error) bool {
	var httpErr *client.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}

	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Retryable()
	}

	return true
}
