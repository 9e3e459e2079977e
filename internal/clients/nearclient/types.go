package nearclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	jsonRPCVersion = "2.0"
	jsonRPCID      = "dontcare"

	methodQuery      = "query"
	methodValidators = "validators"

	requestTypeCallFunction = "call_function"
	finalityFinal           = "final"
	viewGetVaultState       = "get_vault_state"

	// base64 of "{}"
	emptyArgsBase64 = "e30="
)

var ErrUnknownAccount = errors.New("unknown account")

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

func newRPCRequest(method string, params any) *rpcRequest {
	return &rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      jsonRPCID,
		Method:  method,
		Params:  params,
	}
}

type callFunctionParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
	MethodName  string `json:"method_name"`
	ArgsBase64  string `json:"args_base64"`
}

type rpcResponse[R any] struct {
	Result *R        `json:"result"`
	Error  *RPCError `json:"error"`
}

// RPCError is the error object of a json-rpc response.
type RPCError struct {
	Name    string          `json:"name"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Cause   *struct {
		Name string          `json:"name"`
		Info json.RawMessage `json:"info"`
	} `json:"cause"`
}

func (e *RPCError) Error() string {
	cause := ""
	if e.Cause != nil {
		cause = e.Cause.Name
	}
	return fmt.Sprintf("near rpc error %d %s (%s): %s", e.Code, e.Name, cause, e.Message)
}

// Retryable is false for handler and request validation errors, retrying them gives the same answer.
func (e *RPCError) Retryable() bool {
	return e.Name != "HANDLER_ERROR" && e.Name != "REQUEST_VALIDATION_ERROR"
}

func (e *RPCError) isUnknownAccount() bool {
	return e.Cause != nil && e.Cause.Name == "UNKNOWN_ACCOUNT"
}

type callFunctionResult struct {
	// RawResult holds the bytes returned by the view as a json array of numbers
	RawResult   []int    `json:"result"`
	Logs        []string `json:"logs"`
	BlockHeight uint64   `json:"block_height"`
	BlockHash   string   `json:"block_hash"`
	// Error is set by older nodes when the contract call fails
	Error string `json:"error"`
}

// bytes converts the json array of numbers into the returned bytes.
func (r *callFunctionResult) bytes() ([]byte, error) {
	out := make([]byte, len(r.RawResult))
	for i, b := range r.RawResult {
		if b < 0 || b > 255 {
			return nil, fmt.Errorf("invalid byte %d at position %d", b, i)
		}
		out[i] = byte(b)
	}
	return out, nil
}

type validatorsResult struct {
	EpochHeight int64 `json:"epoch_height"`
}
