package ports

import (
	"context"
	"encoding/json"
)

// LLMService define el puerto de salida para el modelo de lenguaje.
// Cualquier adaptador (Anthropic, Gemini, mock determinista en tests) debe
// implementar esta interfaz. Siguiendo el principio de inversión de dependencias
// (DIP), la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Invoke envía un prompt junto con el JSON Schema que la respuesta debe
	// cumplir y devuelve el JSON crudo del modelo. El adaptador es responsable
	// de extraer el JSON de la respuesta (bloques markdown incluidos); el caller
	// es responsable de decodificar y validar contra su schema.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Invoke(ctx context.Context, prompt string, responseSchema json.RawMessage) (json.RawMessage, error)
}
