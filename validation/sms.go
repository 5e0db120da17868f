// Package validation applies the SMS acceptance rules: a hard character
// budget and an emoji policy, both decided per candidate message.
package validation

import (
	"fmt"

	"github.com/promoforge/promoforge/types"
)

const (
	// MaxLenPlain is the character budget for messages without emojis.
	MaxLenPlain = 128
	// MaxLenEmoji is the tighter budget applied when emojis are requested.
	MaxLenEmoji = 40
)

// emojiRanges is the fixed table of Unicode code-point ranges counted as
// emoji. The boundaries are part of the validation contract; widening or
// narrowing them changes which historical messages pass.
var emojiRanges = [...][2]rune{
	{0x1F300, 0x1F9FF}, // misc symbols and pictographs through supplemental
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F000, 0x1F02F}, // mahjong/domino tiles
	{0x1F0A0, 0x1F0FF}, // playing cards
	{0x1F100, 0x1F64F}, // enclosed alphanumerics through emoticons
	{0x1F680, 0x1F6FF}, // transport and map symbols
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended-A
}

// CountEmojis returns how many code points in s fall inside the emoji table.
// Each matching code point counts once.
func CountEmojis(s string) int {
	count := 0
	for _, r := range s {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				count++
				break
			}
		}
	}
	return count
}

// CharCount measures s in UTF-16 code units, so astral code points (which
// include every emoji in the table above 0xFFFF) count as 2. This matches
// how carrier-facing tooling measures SMS length and is intentionally not
// adjusted for emoji-occupied units.
func CharCount(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// ValidateSMS checks one candidate message against the length and emoji
// rules. Pure function: same input, same result.
//
// With useEmojis, the budget is MaxLenEmoji and exactly one emoji must be
// present. Without, the budget is MaxLenPlain and no emoji may appear.
func ValidateSMS(message string, useEmojis bool) types.ValidationResult {
	emojiCount := CountEmojis(message)
	charCount := CharCount(message)

	maxLength := MaxLenPlain
	if useEmojis {
		maxLength = MaxLenEmoji
	}

	var errs []string
	if charCount > maxLength {
		errs = append(errs, fmt.Sprintf("Message exceeds %d character limit (current: %d)", maxLength, charCount))
	}
	if useEmojis && emojiCount != 1 {
		errs = append(errs, fmt.Sprintf("Expected exactly 1 emoji, found %d", emojiCount))
	}
	if !useEmojis && emojiCount > 0 {
		errs = append(errs, fmt.Sprintf("No emojis allowed, found %d", emojiCount))
	}

	return types.ValidationResult{
		Valid:      len(errs) == 0,
		Errors:     errs,
		CharCount:  charCount,
		EmojiCount: emojiCount,
	}
}
