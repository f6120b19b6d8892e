package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStructuredJSON(t *testing.T) {
	raw := `{"items":[{"category":"필기시험","details":["60점 이상"]}]}`

	got := Decode(raw)

	require.True(t, got.Structured)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "필기시험", got.Items[0].Category)
	assert.Equal(t, []string{"60점 이상"}, got.Items[0].Details)
	assert.Equal(t, raw, got.Raw)
}

func TestDecodeLegacyText(t *testing.T) {
	raw := "필기시험: 과목당 60점 이상\n실기시험: 합격 판정"

	got := Decode(raw)

	require.False(t, got.Structured)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "필기시험", got.Items[0].Category)
	assert.Equal(t, []string{"과목당 60점 이상"}, got.Items[0].Details)
	assert.Equal(t, "실기시험", got.Items[1].Category)
	assert.Equal(t, []string{"합격 판정"}, got.Items[1].Details)
}

func TestDecodeLegacyGroupsRepeatedCategories(t *testing.T) {
	raw := "필기시험: 평균 60점 이상\n필기시험: 과락 40점 미만 불합격\n실기시험: 합격"

	got := Decode(raw)

	require.Len(t, got.Items, 2)
	assert.Equal(t, []string{"평균 60점 이상", "과락 40점 미만 불합격"}, got.Items[0].Details)
}

func TestDecodeVerbatimFallback(t *testing.T) {
	for _, raw := range []string{
		"시험 합격 기준은 별도 공지 참조",
		"{not actually json",
		"",
	} {
		got := Decode(raw)
		assert.False(t, got.Structured, raw)
		assert.Nil(t, got.Items, raw)
		assert.Equal(t, raw, got.Raw, raw)
	}
}

// Both encodings of the same criteria must decode to the same item list.
func TestRoundTripBothEncodings(t *testing.T) {
	items := []Item{
		{Category: "필기시험", Details: []string{"60점 이상"}},
		{Category: "실기시험", Details: []string{"합격"}},
	}

	encoded, err := EncodeStructured(items)
	require.NoError(t, err)
	fromJSON := Decode(encoded)

	legacy := "필기시험: 60점 이상\n실기시험: 합격"
	fromText := Decode(legacy)

	assert.Equal(t, items, fromJSON.Items)
	assert.Equal(t, items, fromText.Items)
}

func TestDecodeIgnoresUnknownLegacyLines(t *testing.T) {
	raw := "비고: 기타 안내\n필기시험: 60점 이상"

	got := Decode(raw)

	require.Len(t, got.Items, 1)
	assert.Equal(t, "필기시험", got.Items[0].Category)
}
