package registry

import (
	"encoding/json"
	"testing"

	"github.com/keetool/kee/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "/home/tester"

func TestLoadMissingFileYieldsDefault(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), home)

	state := store.Load()
	assert.Equal(t, 0, state.Accounts.Len())
	assert.Nil(t, state.CurrentAccount)
}

func TestLoadCorruptFileYieldsDefault(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "invalid json content"},
		{"wrong shape", `{"accounts": ["list","not","object"]}`},
		{"truncated", `{"accounts": {"a": {"profile_name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			store := NewStore(fs, home)
			require.NoError(t, afero.WriteFile(fs, store.Path(), []byte(tt.content), 0o644))

			state := store.Load()
			assert.Equal(t, 0, state.Accounts.Len())
			assert.Nil(t, state.CurrentAccount)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), home)

	state := models.NewRegistryState()
	state.Accounts.Set("work", models.AccountRecord{
		ProfileName:  "work",
		SSOStartURL:  "https://example.awsapps.com/start",
		SSORegion:    "us-east-1",
		SSOAccountID: "123456789012",
		SSORoleName:  "AdminRole",
		SessionName:  "company",
	})
	state.Accounts.Set("play", models.AccountRecord{
		ProfileName:  "play",
		SSOAccountID: "unknown",
		SSORoleName:  "unknown",
	})
	state.SetCurrent("work")

	require.NoError(t, store.Save(state))

	loaded := store.Load()
	assert.Equal(t, []string{"work", "play"}, loaded.Accounts.Names())
	assert.Equal(t, "work", loaded.CurrentName())

	rec, ok := loaded.Accounts.Get("work")
	require.True(t, ok)
	assert.Equal(t, "company", rec.SessionName)
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, home)

	state := models.NewRegistryState()
	state.Accounts.Set("acct", models.AccountRecord{ProfileName: "acct"})
	require.NoError(t, store.Save(state))

	data, err := afero.ReadFile(fs, store.Path())
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
	assert.Contains(t, string(data), "\n  \"accounts\"")
}

func TestSaveIsFullOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, home)

	state := models.NewRegistryState()
	state.Accounts.Set("first", models.AccountRecord{ProfileName: "first"})
	require.NoError(t, store.Save(state))

	state = models.NewRegistryState()
	state.Accounts.Set("second", models.AccountRecord{ProfileName: "second"})
	require.NoError(t, store.Save(state))

	loaded := store.Load()
	assert.Equal(t, []string{"second"}, loaded.Accounts.Names())
}

func TestSaveFailsOnReadOnlyFilesystem(t *testing.T) {
	store := NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), home)

	state := models.NewRegistryState()
	assert.Error(t, store.Save(state))
}
