package engine

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nineWords = "I am a developer who likes building small tools"

const fifteenWords = "I am a backend developer from Berlin who enjoys building small tools and distributed systems"

func TestValidateBioShortRejected(t *testing.T) {
	res := validateBio(nineWords)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Feedback)
	assert.Contains(t, res.Suggestions, "Continue anyway")
}

func TestValidateBioBypassAcceptsAnyLength(t *testing.T) {
	res := validateBio(nineWords + " continue anyway")
	require.True(t, res.Valid)
	// The bypass phrase is stripped from the stored bio.
	assert.Equal(t, nineWords, res.Bio)
}

func TestValidateBioFifteenWordsAccepted(t *testing.T) {
	res := validateBio(fifteenWords)
	require.True(t, res.Valid)
	assert.Equal(t, fifteenWords, res.Bio)
}

func TestValidateBioBypassHandlesNonASCIIText(t *testing.T) {
	// Lowercasing resizes these runes (Ⱥ grows a byte, İ shrinks one), so
	// the strip offsets must come from the original text.
	for _, prefix := range []string{
		strings.Repeat("Ⱥ", 8),
		strings.Repeat("İ", 8),
		"Łukasz, développeur à Kraków",
	} {
		res := validateBio(prefix + " continue anyway")
		require.True(t, res.Valid, "input %q", prefix)
		assert.Equal(t, prefix, res.Bio)
		assert.True(t, utf8.ValidString(res.Bio))
	}
}

func TestValidateBioBypassIsCaseInsensitive(t *testing.T) {
	res := validateBio(nineWords + " CONTINUE ANYWAY")
	require.True(t, res.Valid)
	assert.Equal(t, nineWords, res.Bio)
}

func TestValidateBioBypassNeedsWholeWords(t *testing.T) {
	// "continued" and "skipping" embed bypass tokens but are ordinary
	// words; they must neither accept the bio nor get excised from it.
	res := validateBio("I have continued building tools after skipping college")
	assert.False(t, res.Valid)
	assert.Contains(t, res.Suggestions, "Continue anyway")
}

func TestValidateBioMidRangeStillRejected(t *testing.T) {
	// 13 words: above the hard floor but below the accept threshold.
	res := validateBio("I am a developer who likes building small tools for other busy people")
	assert.False(t, res.Valid)
	assert.Contains(t, res.Suggestions, "Continue anyway")
}

func TestValidateSkills(t *testing.T) {
	res := validateSkills("a, b")
	assert.False(t, res.Valid)

	res = validateSkills("a, b, c")
	require.True(t, res.Valid)
	assert.Equal(t, []string{"a", "b", "c"}, res.Skills)

	res = validateSkills(" , ,, ")
	assert.False(t, res.Valid)

	res = validateSkills("Go , SQL,  Docker , Kubernetes")
	require.True(t, res.Valid)
	assert.Equal(t, []string{"Go", "SQL", "Docker", "Kubernetes"}, res.Skills)
}

func TestValidateProjectEntry(t *testing.T) {
	res := validateProject("Title|This description has at least twenty characters", 0)
	require.True(t, res.Valid)
	require.NotNil(t, res.Project)
	assert.Equal(t, "Title", res.Project.Title)
	assert.NotEmpty(t, res.Project.Image)

	res = validateProject("no separator here", 0)
	assert.False(t, res.Valid)

	res = validateProject("ab|This description has at least twenty characters", 0)
	assert.False(t, res.Valid)

	res = validateProject("Title|too short", 0)
	assert.False(t, res.Valid)
}

func TestValidateProjectDoneNeedsOneStored(t *testing.T) {
	res := validateProject("done", 0)
	assert.False(t, res.Valid)

	res = validateProject("DONE", 1)
	require.True(t, res.Valid)
	assert.True(t, res.Done)
}

func TestValidateExperienceEntry(t *testing.T) {
	res := validateExperience("Backend Engineer | Acme Corp | 2021-2024 | Built the billing pipeline")
	require.True(t, res.Valid)
	require.NotNil(t, res.Experience)
	assert.Equal(t, "Acme Corp", res.Experience.Company)

	res = validateExperience("Engineer | Acme | 2021")
	assert.False(t, res.Valid)

	res = validateExperience("Engineer | Acme | 2021 | ")
	assert.False(t, res.Valid)
}

func TestValidateExperienceDoneAlwaysAccepted(t *testing.T) {
	res := validateExperience("done")
	require.True(t, res.Valid)
	assert.True(t, res.Done)
}

func TestValidUsername(t *testing.T) {
	assert.True(t, validUsername("octocat"))
	assert.True(t, validUsername("oct.o_cat-42"))
	assert.False(t, validUsername(""))
	assert.False(t, validUsername("has space"))
	assert.False(t, validUsername("semi;colon"))
}
