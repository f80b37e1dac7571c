package app_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Riaraujo/testecrud/internal/app"
	"github.com/Riaraujo/testecrud/internal/config"
	"github.com/Riaraujo/testecrud/internal/repository"
	"github.com/Riaraujo/testecrud/pkg/cache"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0", Mode: "test"},
		Database: config.DatabaseConfig{Driver: "memory"},
		Storage:  config.StorageConfig{Type: "local", LocalPath: t.TempDir(), MaxUploadMB: 1},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"https://riaraujo.github.io"}},
		RateLimit: config.RateLimitConfig{
			MaxRequests:   1000,
			WindowMinutes: 1,
		},
		Provisioning: config.ProvisioningConfig{
			FolderTemplate:     "ENEM {ano}",
			ExamTemplate:       "ENEM {ano} - {dia}º Dia",
			SecondDayThreshold: 90,
		},
	}
	return app.NewWithStore(cfg, repository.NewMemory(), cache.Nop{})
}

func do(t *testing.T, a *app.App, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestStatus(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "online", body["status"])
	require.Equal(t, "mock", body["database"])
	require.NotEmpty(t, body["timestamp"])

	w = do(t, a, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Contains(t, w.Body.String(), "/api/status")
}

func TestPastaCRUD(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"descricao": "sem nome"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	require.Equal(t, "Erro de validação", body["error"])
	details := body["details"].([]interface{})
	require.Equal(t, "nome", details[0].(map[string]interface{})["field"])

	w = do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"nome": "ENEM 2023", "descricao": "Questões do ENEM 2023"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["_id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "ENEM 2023", created["nome"])

	w = do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"nome": "ENEM 2023"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, a, http.MethodGet, "/api/pastas/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	require.Equal(t, "Questões do ENEM 2023", got["descricao"])
	require.Equal(t, []interface{}{}, got["provas"])

	w = do(t, a, http.MethodPut, "/api/pastas/"+id, map[string]interface{}{"descricao": "atualizada"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	require.Equal(t, "ENEM 2023", updated["nome"])
	require.Equal(t, "atualizada", updated["descricao"])

	w = do(t, a, http.MethodDelete, "/api/pastas/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Pasta excluída com sucesso", decode(t, w)["message"])

	w = do(t, a, http.MethodGet, "/api/pastas/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Pasta não encontrada", decode(t, w)["error"])
}

func TestPastaMove(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"nome": "pai"})
	require.Equal(t, http.StatusCreated, w.Code)
	pai := decode(t, w)["_id"].(string)
	w = do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"nome": "filha", "pastaPai": pai})
	require.Equal(t, http.StatusCreated, w.Code)
	filha := decode(t, w)["_id"].(string)

	w = do(t, a, http.MethodPut, "/api/pastas/"+pai+"/mover", map[string]interface{}{"pastaPai": filha})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodPut, "/api/pastas/"+filha+"/mover", map[string]interface{}{"pastaPai": nil})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, decode(t, w)["pastaPai"])

	w = do(t, a, http.MethodGet, "/api/pastas/"+pai, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode(t, w)["subpastas"])
}

func TestProvaCRUD(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/provas", map[string]interface{}{"titulo": "Matemática", "pasta": "missing"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, a, http.MethodPost, "/api/pastas", map[string]interface{}{"nome": "ENEM 2023"})
	pasta := decode(t, w)["_id"].(string)

	w = do(t, a, http.MethodPost, "/api/provas", map[string]interface{}{"titulo": "Matemática", "pasta": pasta})
	require.Equal(t, http.StatusCreated, w.Code)
	prova := decode(t, w)["_id"].(string)

	w = do(t, a, http.MethodGet, "/api/provas/"+prova, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	require.Equal(t, "Matemática", got["titulo"])
	require.Equal(t, pasta, got["pasta"].(map[string]interface{})["_id"])

	w = do(t, a, http.MethodGet, "/api/pastas/"+pasta, nil)
	provas := decode(t, w)["provas"].([]interface{})
	require.Len(t, provas, 1)
	require.Equal(t, prova, provas[0].(map[string]interface{})["_id"])

	w = do(t, a, http.MethodDelete, "/api/provas/"+prova, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodGet, "/api/pastas/"+pasta, nil)
	require.Empty(t, decode(t, w)["provas"])
	w = do(t, a, http.MethodDelete, "/api/provas/"+prova, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func questao(extra map[string]interface{}) map[string]interface{} {
	q := map[string]interface{}{
		"disciplina":   "Matemática",
		"materia":      "Álgebra",
		"enunciado":    "<p>Resolva 2x + 4 = 10</p>",
		"alternativas": []string{"A) x = 1", "B) x = 2", "C) x = 3", "D) x = 4", "E) x = 5"},
		"resposta":     "c",
	}
	for k, v := range extra {
		q[k] = v
	}
	return q
}

func TestQuestaoProvisioning(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 2023, "indice": 10}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	first := decode(t, w)
	require.Equal(t, "C", first["resposta"])
	alts := first["alternativas"].([]interface{})
	require.Len(t, alts, 5)
	third := alts[2].(map[string]interface{})
	require.Equal(t, "C", third["letra"])
	require.Equal(t, "x = 3", third["texto"])
	require.Equal(t, true, third["correta"])

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 2023, "indice": 80}))
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode(t, w)
	require.Equal(t, first["prova"], second["prova"])

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 2023, "indice": 120}))
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotEqual(t, first["prova"], decode(t, w)["prova"])

	w = do(t, a, http.MethodGet, "/api/pastas", nil)
	pastas := decodeList(t, w)
	require.Len(t, pastas, 1)
	require.Equal(t, "ENEM 2023", pastas[0]["nome"])

	w = do(t, a, http.MethodGet, "/api/provas", nil)
	provas := decodeList(t, w)
	require.Len(t, provas, 2)
	require.Equal(t, "ENEM 2023 - 2º Dia", provas[0]["titulo"])
	require.Equal(t, "ENEM 2023 - 1º Dia", provas[1]["titulo"])

	w = do(t, a, http.MethodGet, "/api/questoes/"+first["_id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
	populated := decode(t, w)
	require.Equal(t, "ENEM 2023 - 1º Dia", populated["prova"].(map[string]interface{})["titulo"])

	w = do(t, a, http.MethodGet, "/api/questoes", nil)
	require.Len(t, decodeList(t, w), 3)
}

func TestQuestaoValidation(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"resposta": "F", "ano": 2023, "indice": 1}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	details := decode(t, w)["details"].([]interface{})
	require.Equal(t, "resposta", details[0].(map[string]interface{})["field"])

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"enunciado": ""}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodPost, "/api/questoes", questao(nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
	details = decode(t, w)["details"].([]interface{})
	require.Equal(t, "ano", details[0].(map[string]interface{})["field"])

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 1500, "indice": 1}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, a, http.MethodPost, "/api/questoes", `{"disciplina": `)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "JSON inválido", decode(t, w)["error"])

	w = do(t, a, http.MethodGet, "/api/questoes/unknown", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Questão não encontrada", decode(t, w)["error"])
}

func TestQuestaoUpdateAndDelete(t *testing.T) {
	a := newTestApp(t)

	w := do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 2022, "indice": 5}))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["_id"].(string)
	prova := created["prova"].(string)

	w = do(t, a, http.MethodPut, "/api/questoes/"+id, map[string]interface{}{"assunto": "Equações"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)
	require.Equal(t, "Equações", updated["assunto"])
	require.Equal(t, "Álgebra", updated["materia"])
	require.Equal(t, "C", updated["resposta"])

	w = do(t, a, http.MethodDelete, "/api/questoes/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, a, http.MethodGet, "/api/provas/"+prova, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decode(t, w)["questoes"])
}

func TestUpload(t *testing.T) {
	a := newTestApp(t)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	w := upload(t, a, "figura.png", png)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	url := decode(t, w)["url"].(string)
	require.Contains(t, url, "/uploads/questoes/")
	require.Contains(t, url, ".png")

	w = upload(t, a, "notas.png", []byte("apenas texto"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = upload(t, a, "script.sh", []byte("#!/bin/sh"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
	w = httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func upload(t *testing.T, a *app.App, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestCORSReload(t *testing.T) {
	a := newTestApp(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/pastas", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://riaraujo.github.io")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://riaraujo.github.io", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example")
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	reloaded := *a.Config
	reloaded.CORS.AllowedOrigins = []string{"https://evil.example"}
	reloaded.Provisioning.SecondDayThreshold = 5
	a.ApplyConfig(&reloaded)

	w = preflight("https://evil.example")
	require.Equal(t, "https://evil.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{"ano": 2021, "indice": 6}))
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, a, http.MethodGet, "/api/provas", nil)
	require.Equal(t, "ENEM 2021 - 2º Dia", decodeList(t, w)[0]["titulo"])
}

func TestConhecimentos(t *testing.T) {
	a := newTestApp(t)

	for _, tags := range [][]string{{"Álgebra", "equações"}, {"álgebra"}, {"Geometria"}} {
		w := do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{
			"ano":           2023,
			"indice":        1,
			"conhecimentos": tags,
		}))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, a, http.MethodGet, "/api/conhecimentos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tags := decodeList(t, w)
	require.Len(t, tags, 3)
	require.Equal(t, "álgebra", tags[0]["nome"])
	require.EqualValues(t, 2, tags[0]["questoes"])
	require.Equal(t, "equações", tags[1]["nome"])
	require.Equal(t, "geometria", tags[2]["nome"])

	w = do(t, a, http.MethodPost, "/api/questoes", questao(map[string]interface{}{
		"disciplina":    "Física",
		"ano":           2023,
		"indice":        100,
		"conhecimentos": []string{"Cinemática"},
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, a, http.MethodGet, "/api/conhecimentos?disciplina=f%C3%ADsica", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tags = decodeList(t, w)
	require.Len(t, tags, 1)
	require.Equal(t, "cinemática", tags[0]["nome"])
}

func TestRateLimitReload(t *testing.T) {
	a := newTestApp(t)

	reloaded := *a.Config
	reloaded.RateLimit = config.RateLimitConfig{MaxRequests: 2, WindowMinutes: 1}
	a.ApplyConfig(&reloaded)

	for i := 0; i < 2; i++ {
		w := do(t, a, http.MethodGet, "/api/status", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(t, a, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "30", w.Header().Get("Retry-After"))

	reloaded.RateLimit = config.RateLimitConfig{}
	a.ApplyConfig(&reloaded)
	w = do(t, a, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
