package knowledge

import "context"

// SeedDocuments is the investment-education corpus loaded at startup.
var SeedDocuments = []string{
	"Diversification is a strategy that mixes a wide variety of investments within a portfolio.",
	"Risk tolerance is the degree of variability in investment returns that an investor is willing to withstand.",
	"Bitcoin is often seen as digital gold and a store of value.",
	"Ethereum is a decentralized, open-source blockchain with smart contract functionality.",
	"Solana is a high-performance blockchain supporting builders around the world.",
}

// Seed loads SeedDocuments into an index.
func Seed(ctx context.Context, idx *Index) error {
	return idx.Add(ctx, SeedDocuments...)
}
