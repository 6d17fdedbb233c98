package handlers_test

import (
	"VeriUser/internal/model"
	"VeriUser/internal/repo/repotest"
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func recordForm() url.Values {
	return url.Values{
		"name":     {"Иван Иванов"},
		"username": {"@ivan"},
		"channel":  {"@ivan_channel"},
		"age":      {"25"},
		"patent":   {"Пользователю Иван принадлежит @ivan", ""},
		"status":   {"verified"},
	}
}

func firstRecord(t *testing.T, h http.Handler) model.Record {
	t.Helper()
	var list []model.Record
	require.NoError(t, json.Unmarshal(get(h, "/api/records").Body.Bytes(), &list))
	require.NotEmpty(t, list)
	return list[0]
}

func TestPages_IndexEmpty(t *testing.T) {
	router := newTestRouter(t)
	rr := get(router, "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "Верифицирован")
	assert.Contains(t, rr.Body.String(), "Мошенник")
}

func TestPages_CreateRedirectsAndLists(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(router, "/records", recordForm())
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?notice=created", rr.Header().Get("Location"))

	rec := firstRecord(t, router)
	assert.Equal(t, "ivan", rec.Username)
	assert.Equal(t, []string{"Пользователю Иван принадлежит @ivan"}, rec.Patents)

	rr = get(router, "/?notice=created")
	assert.Contains(t, rr.Body.String(), "Запись добавлена в базу данных")
	assert.Contains(t, rr.Body.String(), "/certificate/"+rec.ID)
}

func TestPages_CreateInvalidShowsErrors(t *testing.T) {
	router := newTestRouter(t)
	form := recordForm()
	form.Set("age", "")
	form["patent"] = []string{" "}

	rr := postForm(router, "/records", form)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "Возраст (число)")
	assert.Contains(t, rr.Body.String(), "Патент (хотя бы один)")
	assert.JSONEq(t, `[]`, get(router, "/api/records").Body.String())
}

func TestPages_EditUpdateDelete(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusSeeOther, postForm(router, "/records", recordForm()).Code)
	rec := firstRecord(t, router)

	rr := get(router, "/records/"+rec.ID+"/edit")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Иван Иванов")

	form := recordForm()
	form.Set("status", "fraud")
	rr = postForm(router, "/records/"+rec.ID, form)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "fraud", firstRecord(t, router).Status)

	rr = postForm(router, "/records/"+rec.ID+"/delete", url.Values{})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.JSONEq(t, `[]`, get(router, "/api/records").Body.String())

	assert.Equal(t, http.StatusNotFound, get(router, "/records/"+rec.ID+"/edit").Code)
	assert.Equal(t, http.StatusNotFound, postForm(router, "/records/"+rec.ID+"/delete", url.Values{}).Code)
}

func TestPages_Certificate(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusSeeOther, postForm(router, "/records", recordForm()).Code)
	rec := firstRecord(t, router)

	rr := get(router, "/certificate/"+rec.ID)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Верифицирован")
	assert.Contains(t, body, "18 октября 2026 г.")
	assert.Contains(t, body, "17 ноября 2026 г.")
	assert.NotContains(t, body, "window.print()")

	rr = get(router, "/records/"+rec.ID+"/print")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "window.print()")
}

func TestPages_CertificateNotFound(t *testing.T) {
	router := newTestRouter(t)
	rr := get(router, "/certificate/missing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Сертификат не найден")
}

func TestPages_Registries(t *testing.T) {
	router := newTestRouter(t)

	rr := postForm(router, "/statuses/verified/delete", url.Values{})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "Этот статус нельзя удалить")

	rr = postForm(router, "/statuses", url.Values{"name": {"VIP"}, "color": {"#111111"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	rr = postForm(router, "/categories", url.Values{"name": {"Блогер"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	rr = postForm(router, "/reasons", url.Values{"reason": {"Скам"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	body := get(router, "/").Body.String()
	assert.Contains(t, body, "VIP")
	assert.Contains(t, body, "Блогер")
	assert.Contains(t, body, "Скам")

	rr = postForm(router, "/reasons/delete", url.Values{"reason": {"Скам"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.JSONEq(t, `[]`, get(router, "/api/reasons").Body.String())

	rr = postForm(router, "/categories", url.Values{"name": {""}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func multipartImport(t *testing.T, h http.Handler, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "dump.json")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPages_ImportFile(t *testing.T) {
	src := newTestRouter(t)
	require.Equal(t, http.StatusSeeOther, postForm(src, "/records", recordForm()).Code)
	exported := get(src, "/export").Body.Bytes()

	dst := newTestRouter(t)
	rr := multipartImport(t, dst, exported)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?notice=imported", rr.Header().Get("Location"))
	assert.Equal(t, "ivan", firstRecord(t, dst).Username)

	rr = multipartImport(t, dst, append(exported, []byte(" garbage")...))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Ошибка импорта: некорректный файл")
}

func TestPages_ImportTooLarge(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusSeeOther, postForm(router, "/records", recordForm()).Code)

	// лимит в тестовом конфиге 1 МБ
	rr := multipartImport(t, router, []byte("["+strings.Repeat(" ", 2<<20)+"]"))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, rr.Body.String(), "Файл слишком большой (максимум 1 МБ)")
	assert.NotContains(t, rr.Body.String(), "Выберите файл для импорта")
	assert.Equal(t, "ivan", firstRecord(t, router).Username)
}

func TestPages_ImportMissingFile(t *testing.T) {
	router := newTestRouter(t)
	rr := postForm(router, "/import", url.Values{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Выберите файл для импорта")
}

func TestPages_RegistryStorageFailure(t *testing.T) {
	kv := repotest.NewMemKV()
	router := newTestRouterWith(t, kv)
	require.Equal(t, http.StatusSeeOther, postForm(router, "/reasons", url.Values{"reason": {"Скам"}}).Code)
	kv.FailPuts(errors.New("disk full"))

	rr := postForm(router, "/categories", url.Values{"name": {"Блогер"}})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Внутренняя ошибка")

	rr = postForm(router, "/reasons/delete", url.Values{"reason": {"Скам"}})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `["Скам"]`, get(router, "/api/reasons").Body.String())

	// проверки ввода важнее сбоя хранилища
	rr = postForm(router, "/statuses/fraud/delete", url.Values{})
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = postForm(router, "/statuses", url.Values{"name": {" "}})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
