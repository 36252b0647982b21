package domain

import (
	"cmp"
	"slices"
)

// AssetType mirrors horizon's asset_type values for balance lines.
type AssetType string

const (
	AssetNative              AssetType = "native"
	AssetCreditAlphanum4     AssetType = "credit_alphanum4"
	AssetCreditAlphanum12    AssetType = "credit_alphanum12"
	AssetLiquidityPoolShares AssetType = "liquidity_pool_shares"
)

const (
	NativeDisplayCode     = "XLM"
	PoolSharesDisplayCode = "Pool Shares"
)

// Sort ranks: lower renders first.
const (
	RankNative = iota
	RankCredit
	RankPoolShares
	RankUnknown
)

// RawBalance is a balance line as reported by the network. It is untrusted:
// any field may be empty.
type RawBalance struct {
	AssetType       AssetType
	Balance         string
	AssetCode       string
	AssetIssuer     string
	LiquidityPoolID string
}

// Balance is a normalized, presentable balance line.
type Balance struct {
	AssetType       AssetType `json:"asset_type"`
	Balance         string    `json:"balance"`
	DisplayCode     string    `json:"display_code"`
	AssetIssuer     string    `json:"asset_issuer,omitempty"`
	LiquidityPoolID string    `json:"liquidity_pool_id,omitempty"`
	SortRank        int       `json:"-"`
}

// Raw converts a normalized balance back into the raw shape, so that
// normalization can be re-applied to its own output.
func (b Balance) Raw() RawBalance {
	raw := RawBalance{
		AssetType:       b.AssetType,
		Balance:         b.Balance,
		AssetIssuer:     b.AssetIssuer,
		LiquidityPoolID: b.LiquidityPoolID,
	}
	if b.SortRank == RankCredit || b.SortRank == RankUnknown {
		raw.AssetCode = b.DisplayCode
	}
	return raw
}

// BalanceReport is what a balance check hands to the surfaces.
type BalanceReport struct {
	AccountID string    `json:"account_id"`
	KeyKind   KeyKind   `json:"key_kind"`
	Balances  []Balance `json:"balances"`
}

// AssetRank returns the precedence of an asset type.
func AssetRank(t AssetType) int {
	switch t {
	case AssetNative:
		return RankNative
	case AssetCreditAlphanum4, AssetCreditAlphanum12:
		return RankCredit
	case AssetLiquidityPoolShares:
		return RankPoolShares
	default:
		return RankUnknown
	}
}

// NormalizeBalance labels a single raw balance line.
func NormalizeBalance(raw RawBalance) Balance {
	out := Balance{
		AssetType: raw.AssetType,
		Balance:   raw.Balance,
		SortRank:  AssetRank(raw.AssetType),
	}
	if out.Balance == "" {
		out.Balance = "0"
	}

	switch out.SortRank {
	case RankNative:
		out.DisplayCode = NativeDisplayCode
	case RankPoolShares:
		out.DisplayCode = PoolSharesDisplayCode
		out.LiquidityPoolID = raw.LiquidityPoolID
	default:
		out.DisplayCode = raw.AssetCode
		out.AssetIssuer = raw.AssetIssuer
	}
	return out
}

// NormalizeBalances labels every line and orders them by asset precedence
// (native, credit, pool shares, unknown), then by display code. Equal keys
// keep their input order. The result is never nil.
func NormalizeBalances(raw []RawBalance) []Balance {
	out := make([]Balance, 0, len(raw))
	for _, r := range raw {
		out = append(out, NormalizeBalance(r))
	}

	slices.SortStableFunc(out, func(a, b Balance) int {
		if c := cmp.Compare(a.SortRank, b.SortRank); c != 0 {
			return c
		}
		return cmp.Compare(a.DisplayCode, b.DisplayCode)
	})
	return out
}
