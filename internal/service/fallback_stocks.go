package service

import "github.com/insiderpocket/backend/internal/model"

// fallbackStocks is the static local list the search endpoint falls
// back to when the upstream search is unavailable.
var fallbackStocks = []model.SearchResult{
	// US tech
	{Symbol: "TSLA", ShortName: "Tesla, Inc.", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "AAPL", ShortName: "Apple Inc.", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "MSFT", ShortName: "Microsoft Corporation", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "NVDA", ShortName: "NVIDIA Corporation", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "AMZN", ShortName: "Amazon.com, Inc.", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "GOOGL", ShortName: "Alphabet Inc.", Exchange: "NAS", TypeDisp: "Equity"},
	{Symbol: "META", ShortName: "Meta Platforms, Inc.", Exchange: "NAS", TypeDisp: "Equity"},

	// Stockholm large cap
	{Symbol: "INVE-B.ST", ShortName: "Investor AB ser. B", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "VOLV-B.ST", ShortName: "Volvo, AB ser. B", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "ERIC-B.ST", ShortName: "Telefonaktiebolaget LM Ericsson", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "HM-B.ST", ShortName: "H & M Hennes & Mauritz AB", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "AZN.ST", ShortName: "AstraZeneca PLC", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "ABB.ST", ShortName: "ABB Ltd", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "SEB-A.ST", ShortName: "Skandinaviska Enskilda Banken AB", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "SWED-A.ST", ShortName: "Swedbank AB ser A", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "SAND.ST", ShortName: "Sandvik AB", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "ATCO-A.ST", ShortName: "Atlas Copco AB ser. A", Exchange: "STO", TypeDisp: "Equity"},
	{Symbol: "EQT.ST", ShortName: "EQT AB", Exchange: "STO", TypeDisp: "Equity"},

	// Crypto
	{Symbol: "BTC-USD", ShortName: "Bitcoin USD", Exchange: "CCC", TypeDisp: "Cryptocurrency"},
	{Symbol: "ETH-USD", ShortName: "Ethereum USD", Exchange: "CCC", TypeDisp: "Cryptocurrency"},

	// Indices
	{Symbol: "^OMX", ShortName: "OMX Stockholm 30", Exchange: "STO", TypeDisp: "Index"},
	{Symbol: "^GSPC", ShortName: "S&P 500", Exchange: "SNP", TypeDisp: "Index"},
}
