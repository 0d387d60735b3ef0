package registry

import (
	"fmt"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

// RoomArt is the two-part background of a puzzle room.
type RoomArt struct {
	Top    string
	Bottom string
}

var (
	roomDefault = RoomArt{Top: "room_depression_top.png", Bottom: "room_depression_bottom.png"}
	roomManic   = RoomArt{Top: "room_manic_top.png", Bottom: "room_manic_bottom.png"}
	roomRooftop = RoomArt{Top: "room_roof_top.png", Bottom: "room_roof_bottom.png"}
)

// GiftPalette is the reward wrapping rotation, indexed by day mod len.
var GiftPalette = []string{"gift_yellow.png", "gift_red.png", "gift_blue.png", "gift_green.png", "gift_purple.png", "gift_pink.png"}

const finalGift = "gift_red.png"

// RoomArtFor maps the mood arc onto room backgrounds: manic rooms for 6-10 and
// 16-20, the rooftop for 24, the default room otherwise.
func RoomArtFor(day int) RoomArt {
	switch {
	case (day >= 6 && day <= 10) || (day >= 16 && day <= 20):
		return roomManic
	case day == engine.LastDay:
		return roomRooftop
	}
	return roomDefault
}

// RewardArt returns the gift asset for day; day 24 is always red.
func RewardArt(day int) string {
	if day == engine.LastDay {
		return finalGift
	}
	i := day % len(GiftPalette)
	if i < 0 {
		i += len(GiftPalette)
	}
	return GiftPalette[i]
}

// IsWideLayout is false for days 1 and 24, otherwise (day*7) mod 3 == 0.
func IsWideLayout(day int) bool {
	if day == engine.FirstDay || day == engine.LastDay {
		return false
	}
	return (day*7)%3 == 0
}

// MoodFor returns the narrative mood of a day.
func MoodFor(day int) engine.Mood {
	switch {
	case day <= 5:
		return engine.MoodGrief
	case day <= 10:
		return engine.MoodMania
	case day <= 15:
		return engine.MoodDepression
	case day <= 20:
		return engine.MoodManiaII
	}
	return engine.MoodHealing
}

// CardArt is the front of the reward card. Day 15 has one card per character.
func CardArt(day int, id engine.CharacterID) string {
	if day == 15 {
		if id == engine.CharacterParssa {
			return "card_15_p.png"
		}
		return "card_15_l.png"
	}
	return fmt.Sprintf("card_%02d.png", day)
}

// CardBack is the face-down side of every reward card.
const CardBack = "card_backside.png"
