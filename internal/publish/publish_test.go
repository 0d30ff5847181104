package publish

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabin/rashifal-bot/internal/zodiac"
)

func mustSign(t *testing.T, english string) zodiac.Sign {
	t.Helper()
	sign, ok := zodiac.ByEnglish(english)
	require.True(t, ok)
	return sign
}

func TestFormatPost_PrefixesAndCapitalizes(t *testing.T) {
	sign := mustSign(t, "Aries")

	post, err := FormatPost(sign, "trust yourself today")
	require.NoError(t, err)
	assert.Equal(t, "Meṣa, Trust yourself today.", post)
}

func TestFormatPost_ExistingPrefixNotDoubled(t *testing.T) {
	sign := mustSign(t, "Aries")

	post, err := FormatPost(sign, "Meṣa, trust yourself today.")
	require.NoError(t, err)
	assert.Equal(t, "Meṣa, Trust yourself today.", post)
	assert.Equal(t, 1, strings.Count(post, "Meṣa"))
}

func TestFormatPost_KeepsExistingPunctuation(t *testing.T) {
	sign := mustSign(t, "Libra")

	post, err := FormatPost(sign, "why are you still waiting?")
	require.NoError(t, err)
	assert.Equal(t, "Tulā, Why are you still waiting?", post)
}

func TestFormatPost_CleansResidualArtifacts(t *testing.T) {
	sign := mustSign(t, "Leo")

	// English name and dash sneaking through generation are cleaned here
	// one more time before the post is assembled.
	post, err := FormatPost(sign, "Leo — trust your gut")
	require.NoError(t, err)
	assert.NotContains(t, post, "Leo")
	assert.NotContains(t, post, "—")
	assert.True(t, strings.HasPrefix(post, "Siṃha, "))
	assert.True(t, strings.HasSuffix(post, "."))
}

func TestFormatPost_EmptyMessage(t *testing.T) {
	sign := mustSign(t, "Aries")

	_, err := FormatPost(sign, "Meṣa, ")
	require.Error(t, err)
}

func TestFormatPost_OverLengthLimit(t *testing.T) {
	sign := mustSign(t, "Aries")

	_, err := FormatPost(sign, strings.Repeat("trust yourself ", 30))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "280")
}

type fakePoster struct {
	posted []string
	id     string
	err    error
}

func (f *fakePoster) CreatePost(_ context.Context, text string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.posted = append(f.posted, text)
	return f.id, nil
}

func (f *fakePoster) VerifyCredentials(context.Context) (string, error) {
	return "rashifal", nil
}

func TestPost_Success(t *testing.T) {
	sign := mustSign(t, "Capricorn")
	poster := &fakePoster{id: "98765"}

	result, err := Post(context.Background(), poster, sign, "slow down and breathe")
	require.NoError(t, err)
	assert.Equal(t, "Makara, Slow down and breathe.", result.Text)
	assert.Equal(t, "98765", result.ID)
	require.Len(t, poster.posted, 1)
	assert.Equal(t, result.Text, poster.posted[0])
}

func TestPost_SubmissionFailureNotRetried(t *testing.T) {
	sign := mustSign(t, "Capricorn")
	poster := &fakePoster{err: errors.New("503 service unavailable")}

	_, err := Post(context.Background(), poster, sign, "slow down and breathe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "posting failed")
}

func TestPost_FormatFailureSkipsSubmission(t *testing.T) {
	sign := mustSign(t, "Capricorn")
	poster := &fakePoster{id: "1"}

	_, err := Post(context.Background(), poster, sign, "   ")
	require.Error(t, err)
	assert.Empty(t, poster.posted)
}
