package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsPreservesInsertionOrder(t *testing.T) {
	accounts := NewAccounts()
	accounts.Set("prod", AccountRecord{ProfileName: "prod"})
	accounts.Set("staging", AccountRecord{ProfileName: "staging"})
	accounts.Set("dev", AccountRecord{ProfileName: "dev"})

	assert.Equal(t, []string{"prod", "staging", "dev"}, accounts.Names())

	t.Run("overwrite keeps position", func(t *testing.T) {
		accounts.Set("staging", AccountRecord{ProfileName: "staging", SSORoleName: "Admin"})
		assert.Equal(t, []string{"prod", "staging", "dev"}, accounts.Names())

		rec, ok := accounts.Get("staging")
		require.True(t, ok)
		assert.Equal(t, "Admin", rec.SSORoleName)
	})

	t.Run("delete removes from order", func(t *testing.T) {
		accounts.Delete("staging")
		assert.Equal(t, []string{"prod", "dev"}, accounts.Names())
		assert.Equal(t, 2, accounts.Len())
	})

	t.Run("delete unknown is a no-op", func(t *testing.T) {
		accounts.Delete("nope")
		assert.Equal(t, []string{"prod", "dev"}, accounts.Names())
	})
}

func TestAccountsJSONRoundTrip(t *testing.T) {
	accounts := NewAccounts()
	accounts.Set("b-account", AccountRecord{ProfileName: "b-account", SSOAccountID: "111111111111"})
	accounts.Set("a-account", AccountRecord{ProfileName: "a-account", SSOAccountID: "222222222222"})

	data, err := json.Marshal(accounts)
	require.NoError(t, err)

	var decoded Accounts
	require.NoError(t, json.Unmarshal(data, &decoded))

	// order survives even when it differs from lexical order
	assert.Equal(t, []string{"b-account", "a-account"}, decoded.Names())

	rec, ok := decoded.Get("a-account")
	require.True(t, ok)
	assert.Equal(t, "222222222222", rec.SSOAccountID)

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestAccountsUnmarshalRejectsNonObject(t *testing.T) {
	var accounts Accounts
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &accounts))
}

func TestRegistryStateCurrentPointer(t *testing.T) {
	state := NewRegistryState()
	assert.Equal(t, "", state.CurrentName())

	state.SetCurrent("prod")
	assert.Equal(t, "prod", state.CurrentName())

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_account":"prod"`)

	state.ClearCurrent()
	assert.Equal(t, "", state.CurrentName())

	data, err = json.Marshal(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_account":null`)
}
