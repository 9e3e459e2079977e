package vault

import "github.com/sudostake/vault-indexer/internal/types"

// DefaultEpochsToUnlock is the number of epochs the staking pool holds unstaked funds.
const DefaultEpochsToUnlock int64 = 4

type UnstakeAnalysis struct {
	UnstakeEpoch int64 `json:"unstake_epoch"`
	UnlockEpoch  int64 `json:"unlock_epoch"`
	// Remaining is nil while the current epoch is unknown
	Remaining *int64 `json:"remaining"`
	Matured   bool   `json:"matured"`
	Unbonding bool   `json:"unbonding"`
}

// AnalyzeUnstakeEntry computes when an unstake entry becomes claimable.
// Funds unlock at unlock epoch inclusive. Without a current epoch the entry is reported as unbonding.
func AnalyzeUnstakeEntry(entryEpoch int64, currentEpoch *int64, epochsToUnlock int64) UnstakeAnalysis {
	unstakeEpoch := max(0, entryEpoch)
	analysis := UnstakeAnalysis{
		UnstakeEpoch: unstakeEpoch,
		UnlockEpoch:  unstakeEpoch + epochsToUnlock,
	}

	if currentEpoch == nil {
		analysis.Unbonding = true
		return analysis
	}

	current := *currentEpoch
	remaining := max(0, analysis.UnlockEpoch-current)
	analysis.Remaining = &remaining
	analysis.Matured = current >= analysis.UnlockEpoch
	analysis.Unbonding = current < analysis.UnlockEpoch

	return analysis
}

type UnstakeEntryAnalysis struct {
	types.UnstakeEntry
	UnstakeAnalysis
}

func AnalyzeUnstakeEntries(
	entries []types.UnstakeEntry, currentEpoch *int64, epochsToUnlock int64,
) []UnstakeEntryAnalysis {
	result := make([]UnstakeEntryAnalysis, 0, len(entries))
	for _, entry := range entries {
		result = append(result, UnstakeEntryAnalysis{
			UnstakeEntry:    entry,
			UnstakeAnalysis: AnalyzeUnstakeEntry(entry.Epoch, currentEpoch, epochsToUnlock),
		})
	}
	return result
}
