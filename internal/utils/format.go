package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var coinPrinter = message.NewPrinter(language.English)

// FormatCoins renders a coin amount with thousands separators, e.g. 1,500 coins
func FormatCoins(amount int) string {
	if amount == 1 || amount == -1 {
		return coinPrinter.Sprintf("%d coin", amount)
	}
	return coinPrinter.Sprintf("%d coins", amount)
}
