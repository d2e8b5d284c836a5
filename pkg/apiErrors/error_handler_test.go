package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Erro de schema", code: ErrSchema, wantStatus: http.StatusUnprocessableEntity},
		{name: "ACOS alvo inválido", code: ErrInvalidTargetAcos, wantStatus: http.StatusBadRequest},
		{name: "Arquivo ilegível", code: ErrUnreadableFile, wantStatus: http.StatusBadRequest},
		{name: "Código desconhecido", code: "XXX_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "Entity"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, map[string]any{"field": "Entity"}, body.Details)
		})
	}
}
