package narrative

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootedIntro(t *testing.T) *Intro {
	t.Helper()
	in := NewIntro(DefaultIntroConfig())
	in.Update(10 * time.Second)
	require.Equal(t, IntroWarning, in.Phase())
	return in
}

func TestIntroBootSequence(t *testing.T) {
	in := NewIntro(DefaultIntroConfig())
	assert.Equal(t, BootMessages[:1], in.BootLines())

	in.Update(800 * time.Millisecond)
	assert.Len(t, in.BootLines(), 2)

	in.Update(4800 * time.Millisecond) // 5.6s
	assert.Len(t, in.BootLines(), len(BootMessages))
	assert.False(t, in.BootComplete())

	in.Update(1299 * time.Millisecond) // 6.899s
	assert.False(t, in.BootComplete())
	in.Update(time.Millisecond)
	assert.True(t, in.BootComplete())
	assert.Equal(t, IntroBoot, in.Phase())

	in.Update(time.Second) // 7.9s
	assert.Equal(t, IntroWarning, in.Phase())
}

func TestIntroIgnoresSubmitDuringBoot(t *testing.T) {
	in := NewIntro(DefaultIntroConfig())
	assert.Equal(t, SubmitIgnored, in.Submit("qualquer"))
	assert.Equal(t, IntroBoot, in.Phase())
}

func TestIntroAcceptsLongCodes(t *testing.T) {
	in := bootedIntro(t)
	assert.Equal(t, SubmitAccepted, in.Submit("abc"))
	assert.True(t, in.Done())
}

func TestIntroRejectsShortCodes(t *testing.T) {
	in := bootedIntro(t)

	assert.Equal(t, SubmitRejected, in.Submit("ab"))
	assert.True(t, in.AccessError())
	assert.False(t, in.Done())

	in.Update(999 * time.Millisecond)
	assert.True(t, in.AccessError())
	in.Update(time.Millisecond)
	assert.False(t, in.AccessError())
}

func TestIntroSecretCode(t *testing.T) {
	in := bootedIntro(t)

	assert.Equal(t, SubmitSecret, in.Submit("meme"))
	assert.True(t, in.ShowingSecret())
	assert.False(t, in.Done())
	assert.Equal(t, SubmitIgnored, in.Submit("outro"))

	in.Update(2 * time.Second)
	assert.False(t, in.ShowingSecret())
	assert.True(t, in.Done())
}

func TestIntroCountsRunes(t *testing.T) {
	in := bootedIntro(t)
	assert.Equal(t, SubmitRejected, in.Submit("çã"))
	assert.Equal(t, SubmitAccepted, in.Submit("ção"))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "MEME", NormalizeCode("meme"))
	assert.Equal(t, "AÇÃO", NormalizeCode("ação"))
}
