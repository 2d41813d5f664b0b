package narrative

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"ERRO: Sobrecarga de nostalgia digital", KindError},
		{"ERROR: fallback", KindError},
		{"[ERRO] Desfragmentação falhou", KindError},
		{"AVISO: Referência cultural não catalogada", KindWarning},
		{"[ALERTA] Conteúdo classificado", KindWarning},
		{LogRestorePart, KindResult},
		{LogKonami, KindSecret},
		{LogDefragStart, KindProcess},
		{"[SISTEMA] Interface de restauração inicializada", KindInfo},
		{LogAnalyzeStart, KindInfo},
		// errors win over every later marker
		{"[PROCESSO] ERRO no RESULTADO", KindError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.text), tt.text)
	}
}

func TestTerminalLogKeepsRecentLines(t *testing.T) {
	log := NewTerminalLog(fixedClock, SeedLog...)
	require.Equal(t, len(SeedLog), log.Len())

	for i := 0; i < 80; i++ {
		log.Add(fmt.Sprintf("[DADOS] linha %d", i))
	}

	assert.Equal(t, DefaultLogLimit+1, log.Len())
	entries := log.Entries()
	assert.Equal(t, "[DADOS] linha 79", entries[len(entries)-1].Text)
	assert.Equal(t, "[DADOS] linha 29", entries[0].Text)
	assert.Equal(t, "21:07:05", entries[0].Stamp())
	assert.Len(t, log.Tail(3), 3)
	assert.Len(t, log.Tail(500), DefaultLogLimit+1)
}

func TestKonami(t *testing.T) {
	var k Konami
	for _, key := range []Key{KeyA, KeyUp, KeyOther} {
		assert.False(t, k.Push(key))
	}
	for i, key := range KonamiSequence {
		done := k.Push(key)
		assert.Equal(t, i == len(KonamiSequence)-1, done)
	}

	var wrong Konami
	seq := append([]Key(nil), KonamiSequence...)
	seq[8], seq[9] = KeyA, KeyB
	for _, key := range seq {
		assert.False(t, wrong.Push(key))
	}
}
