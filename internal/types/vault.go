package types

import "time"

// LiquidityRequest is an outstanding or accepted borrowing request.
// Amounts are minimal unit integers kept as strings.
type LiquidityRequest struct {
	Token      string `bson:"token" json:"token"`
	Amount     string `bson:"amount" json:"amount"`
	Interest   string `bson:"interest" json:"interest"`
	Collateral string `bson:"collateral" json:"collateral"`
	// Duration in seconds
	Duration int64 `bson:"duration" json:"duration"`
}

type AcceptedOffer struct {
	Lender     string    `bson:"lender" json:"lender"`
	AcceptedAt time.Time `bson:"accepted_at" json:"accepted_at"`
}

type Liquidation struct {
	Liquidated string `bson:"liquidated" json:"liquidated"`
}

type UnstakeEntry struct {
	Validator string `json:"validator"`
	Amount    string `json:"amount"`
	Epoch     int64  `json:"epoch"`
}

// VaultRecord is the normalized view of a vault. State must only be set through DeriveVaultState.
type VaultRecord struct {
	Owner            string            `bson:"owner" json:"owner"`
	State            VaultState        `bson:"state" json:"state"`
	LiquidityRequest *LiquidityRequest `bson:"liquidity_request" json:"liquidity_request,omitempty"`
	AcceptedOffer    *AcceptedOffer    `bson:"accepted_offer" json:"accepted_offer,omitempty"`
	Liquidation      *Liquidation      `bson:"liquidation" json:"liquidation,omitempty"`
}
