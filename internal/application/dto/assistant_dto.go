package dto

// AssistantRequest payload de POST /api/assistant: una pregunta libre sobre el
// negocio.
type AssistantRequest struct {
	Question string `json:"question"`
}

// AssistantResponse respuesta del asistente.
type AssistantResponse struct {
	Answer string `json:"answer"`
}
