package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaanHessen/santa-exe/internal/engine"
)

func TestEmbeddedContentComplete(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	for d := engine.FirstDay; d <= engine.LastDay; d++ {
		desc, err := r.Describe(d)
		require.NoError(t, err, "day %d", d)
		require.NotNil(t, desc, "day %d", d)
	}
	for _, d := range []int{0, -3, 25, 100} {
		_, err := r.Describe(d)
		assert.ErrorIs(t, err, engine.ErrDayOutOfRange, "day %d", d)
	}
}

func TestEmbeddedContentKinds(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	want := map[int]Kind{1: KindStory, 2: KindCode, 3: KindWordGuess, 4: KindMemory, 10: KindRiddle, 11: KindLetter, 12: KindQuiz, 18: KindPartnerQuiz, 24: KindFinal}
	for day, kind := range want {
		desc, _ := r.Describe(day)
		assert.Equal(t, kind, desc.Kind(), "day %d", day)
	}
	final, _ := r.Describe(24)
	assert.Contains(t, final.(Final).Text("Juna"), "bitten Sie Juna um Hilfe")
	assert.Equal(t, "XMAS", final.(Final).Solution)

	wg, _ := r.Describe(3)
	assert.Equal(t, 5, wg.(WordGuess).MaxAttempts)
}

func TestMissingDayIsConfigError(t *testing.T) {
	content := strings.Replace(string(defaultContent), "  - day: 22\n", "  - day: 99\n", 1)
	_, err := Parse([]byte(content))
	var cerr ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 99, cerr.Day)

	content = strings.Replace(string(defaultContent), "  - day: 22\n", "  - day: 21\n", 1)
	_, err = Parse([]byte(content))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 21, cerr.Day)
	assert.Contains(t, cerr.Reason, "duplicate")
}

func TestUnknownKindRejected(t *testing.T) {
	content := strings.Replace(string(defaultContent), "kind: riddle", "kind: maze", 1)
	_, err := Parse([]byte(content))
	assert.ErrorContains(t, err, `unknown kind "maze"`)
}

func TestFirstDayMustBeStory(t *testing.T) {
	content := strings.Replace(string(defaultContent), "  - day: 1\n    kind: story", "  - day: 1\n    kind: search", 1)
	require.NotEqual(t, string(defaultContent), content)
	_, err := Parse([]byte(content))
	var cerr ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, engine.FirstDay, cerr.Day)
	assert.Contains(t, cerr.Reason, "story")
}

func TestDialogueTemplating(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	lines := r.Dialogue("Linuël")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0].Text, "dass du da bist, Linuël.")
	for _, l := range lines {
		assert.NotContains(t, l.Text, "{player}")
	}
	assert.Equal(t, "Ihr Scheidungsanwalt", r.LawLetter().Sender)
}

func TestProfiles(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	require.Len(t, r.Characters(), 2)
	p, ok := r.Profile(engine.CharacterParssa)
	require.True(t, ok)
	assert.Equal(t, "Parssicle", p.DisplayName)
	assert.Equal(t, "Johanna", p.Partner)
	assert.Len(t, p.Trivia, 5)
}

func TestRoomArt(t *testing.T) {
	for d := engine.FirstDay; d <= engine.LastDay; d++ {
		got := RoomArtFor(d)
		switch {
		case d >= 6 && d <= 10, d >= 16 && d <= 20:
			assert.Equal(t, roomManic, got, "day %d", d)
		case d == 24:
			assert.Equal(t, roomRooftop, got, "day %d", d)
		default:
			assert.Equal(t, roomDefault, got, "day %d", d)
		}
	}
}

func TestRewardArt(t *testing.T) {
	assert.Equal(t, "gift_red.png", RewardArt(1))
	assert.Equal(t, "gift_yellow.png", RewardArt(6))
	assert.Equal(t, "gift_pink.png", RewardArt(23))
	assert.Equal(t, "gift_red.png", RewardArt(24), "day 24 pinned")
	assert.Equal(t, "gift_yellow.png", RewardArt(18))
}

func TestIsWideLayout(t *testing.T) {
	assert.False(t, IsWideLayout(1))
	assert.False(t, IsWideLayout(24), "24*7 is divisible by 3 but day 24 is special")
	assert.False(t, IsWideLayout(7), "49 mod 3 == 1")
	assert.True(t, IsWideLayout(3))
	assert.True(t, IsWideLayout(21))
	for d := 2; d <= 23; d++ {
		assert.Equal(t, d%3 == 0, IsWideLayout(d), "day %d", d)
	}
}

func TestMoodAndCards(t *testing.T) {
	assert.Equal(t, engine.MoodGrief, MoodFor(5))
	assert.Equal(t, engine.MoodMania, MoodFor(6))
	assert.Equal(t, engine.MoodDepression, MoodFor(15))
	assert.Equal(t, engine.MoodManiaII, MoodFor(20))
	assert.Equal(t, engine.MoodHealing, MoodFor(21))
	assert.Equal(t, "card_03.png", CardArt(3, engine.CharacterLinus))
	assert.Equal(t, "card_15_p.png", CardArt(15, engine.CharacterParssa))
	assert.Equal(t, "card_15_l.png", CardArt(15, engine.CharacterLinus))
}

func TestCodeParts(t *testing.T) {
	before, after := Code{Snippet: "return _____; // x", Solution: "void"}.Parts()
	assert.Equal(t, "return ", before)
	assert.Equal(t, "; // x", after)
	before, after = Code{Snippet: "return 7 * 3;"}.Parts()
	assert.Equal(t, "return 7 * 3;", before)
	assert.Empty(t, after)
}
