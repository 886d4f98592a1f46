package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON_ObjetoLimpio(t *testing.T) {
	got := extractJSON(`{"insights": []}`)
	assert.Equal(t, `{"insights": []}`, got)
}

func TestExtractJSON_BloqueMarkdownConLenguaje(t *testing.T) {
	in := "```json\n{\"insights\": [{\"title\": \"x\"}]}\n```"
	assert.Equal(t, `{"insights": [{"title": "x"}]}`, extractJSON(in))
}

func TestExtractJSON_BloqueMarkdownSinLenguaje(t *testing.T) {
	in := "```\n{\"answer\": \"ok\"}\n```"
	assert.Equal(t, `{"answer": "ok"}`, extractJSON(in))
}

func TestExtractJSON_TextoAlrededorDelObjeto(t *testing.T) {
	// Claude a veces antepone una frase aunque se le pida JSON puro.
	in := `Here is the analysis you requested: {"insights": []} Hope it helps!`
	assert.Equal(t, `{"insights": []}`, extractJSON(in),
		"la regex captura desde la primera llave hasta la última")
}

func TestExtractJSON_SinJSONDevuelveVacio(t *testing.T) {
	assert.Empty(t, extractJSON("no hay nada estructurado acá"))
}
