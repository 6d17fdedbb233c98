package service

import (
	"VeriUser/internal/expiry"
	"VeriUser/internal/model"
	"VeriUser/internal/store"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordService_CreateSetsExpiry(t *testing.T) {
	svc, _, _ := newTestServices(t)

	r, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, fixedNow, r.CreatedAt)
	assert.Equal(t, r.CreatedAt.Add(30*24*time.Hour), r.ExpiresAt)
	assert.Equal(t, []string{"Пользователю Иван принадлежит @ivan"}, r.Patents)
	assert.Len(t, svc.List(), 1)
}

func TestRecordService_CreateNormalizes(t *testing.T) {
	svc, _, _ := newTestServices(t)
	in := validInput()
	in.Username = "  @ivan "
	in.Status = ""
	in.Patents = []string{"  ", "first", "", " second "}

	r, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "ivan", r.Username)
	assert.Equal(t, model.StatusVerified, r.Status)
	assert.Equal(t, []string{"first", "second"}, r.Patents)
}

func TestRecordService_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecordInput)
		field  string
	}{
		{"blank patents", func(in *RecordInput) { in.Patents = []string{" ", "\t", ""} }, "patents"},
		{"no patents", func(in *RecordInput) { in.Patents = nil }, "patents"},
		{"missing name", func(in *RecordInput) { in.Name = "  " }, "name"},
		{"missing username", func(in *RecordInput) { in.Username = "@" }, "username"},
		{"missing channel", func(in *RecordInput) { in.Channel = "" }, "channel"},
		{"missing age", func(in *RecordInput) { in.Age = "" }, "age"},
		{"age not a number", func(in *RecordInput) { in.Age = "двадцать" }, "age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestServices(t)
			_, err := svc.Create(context.Background(), validInput())
			require.NoError(t, err)
			before := len(svc.List())

			in := validInput()
			tt.mutate(&in)
			_, err = svc.Create(context.Background(), in)

			require.ErrorIs(t, err, ErrValidation)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.field)
			assert.Len(t, svc.List(), before)
		})
	}
}

func TestRecordService_OptionalFieldsMayBeEmpty(t *testing.T) {
	svc, _, _ := newTestServices(t)
	in := validInput()
	in.Category, in.Reason, in.SocialNetworks = "", "", ""
	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestRecordService_UpdateKeepsIdentityAndExpiry(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	svc.WithClock(func() time.Time { return fixedNow.Add(10 * 24 * time.Hour) })
	in := validInput()
	in.Name = "Пётр"
	in.Status = model.StatusFraud
	updated, err := svc.Update(ctx, created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, created.ExpiresAt, updated.ExpiresAt)
	assert.Equal(t, "Пётр", updated.Name)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRecordService_UpdateErrors(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", validInput())
	assert.ErrorIs(t, err, store.ErrNotFound)

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	bad := validInput()
	bad.Patents = []string{""}
	_, err = svc.Update(ctx, created.ID, bad)
	assert.ErrorIs(t, err, ErrValidation)

	got, _ := svc.Get(created.ID)
	assert.Equal(t, created, got)
}

func TestRecordService_Delete(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	r, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, r.ID))
	assert.Empty(t, svc.List())
	assert.ErrorIs(t, svc.Delete(ctx, r.ID), store.ErrNotFound)
}

func TestRecordService_FilterAndStats(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	for _, u := range []struct{ name, status string }{
		{"IvanPetrov", model.StatusVerified},
		{"ivan_scam", model.StatusFraud},
		{"Мария", model.StatusVerified},
	} {
		in := validInput()
		in.Username = u.name
		in.Status = u.status
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	usernames := func(rs []model.Record) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.Username)
		}
		return out
	}

	assert.Equal(t, []string{"IvanPetrov", "ivan_scam", "Мария"}, usernames(svc.Filter("", FilterAll)))
	assert.Equal(t, []string{"IvanPetrov", "ivan_scam"}, usernames(svc.Filter("IVAN", FilterAll)))
	assert.Equal(t, []string{"ivan_scam"}, usernames(svc.Filter("ivan", model.StatusFraud)))
	assert.Equal(t, []string{"Мария"}, usernames(svc.Filter("МАР", "")))
	assert.Empty(t, svc.Filter("nobody", FilterAll))

	st := svc.Stats()
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.ByStatus[model.StatusVerified])
	assert.Equal(t, 1, st.ByStatus[model.StatusFraud])
}

func TestRecordService_CertificateScenario(t *testing.T) {
	svc, reg, _ := newTestServices(t)
	ctx := context.Background()
	cat, err := reg.AddCategory(ctx, "Блогер")
	require.NoError(t, err)

	in := validInput()
	in.Category = cat.ID
	r, err := svc.Create(ctx, in)
	require.NoError(t, err)

	// за 3 дня до истечения
	svc.WithClock(func() time.Time { return r.ExpiresAt.Add(-3 * 24 * time.Hour) })
	doc, err := svc.Certificate(r.ID)
	require.NoError(t, err)
	assert.Equal(t, expiry.TierWarning, doc.Expiry.Tier)
	assert.Equal(t, "Верифицирован", doc.StatusName)
	assert.Equal(t, "#22c55e", doc.StatusColor)
	assert.Equal(t, "Действителен ещё 3 дня", doc.Expiry.Message)
	assert.Equal(t, "Блогер", doc.Category)

	// удаление категории не трогает запись
	require.NoError(t, reg.RemoveCategory(ctx, cat.ID))
	got, err := svc.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.Category)
	doc, err = svc.Certificate(r.ID)
	require.NoError(t, err)
	assert.Equal(t, cat.ID, doc.Category)

	_, err = svc.Certificate("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
