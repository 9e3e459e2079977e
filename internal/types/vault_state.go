package types

// VaultState is the lifecycle label of a vault. It is always derived from
// the presence of the liquidity request and the accepted offer.
type VaultState string

const (
	VaultStateIdle    VaultState = "idle"
	VaultStatePending VaultState = "pending"
	VaultStateActive  VaultState = "active"
)

func (s VaultState) String() string {
	return string(s)
}

// DeriveVaultState maps presence of the optional vault fields to a state label.
// An accepted offer makes the vault active regardless of the request.
func DeriveVaultState(hasLiquidityRequest, hasAcceptedOffer bool) VaultState {
	switch {
	case hasAcceptedOffer:
		return VaultStateActive
	case hasLiquidityRequest:
		return VaultStatePending
	default:
		return VaultStateIdle
	}
}
