package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Accounts maps account names to records while preserving insertion order.
// A plain map would lose the order across save/load; listing must follow the
// order accounts were added in.
type Accounts struct {
	order []string
	items map[string]AccountRecord
}

// NewAccounts returns an empty, ready-to-use Accounts value.
func NewAccounts() Accounts {
	return Accounts{items: make(map[string]AccountRecord)}
}

// Get returns the record stored under name.
func (a *Accounts) Get(name string) (AccountRecord, bool) {
	rec, ok := a.items[name]
	return rec, ok
}

// Set stores a record under name. Re-adding an existing name overwrites the
// record in place and keeps its original position.
func (a *Accounts) Set(name string, rec AccountRecord) {
	if a.items == nil {
		a.items = make(map[string]AccountRecord)
	}
	if _, exists := a.items[name]; !exists {
		a.order = append(a.order, name)
	}
	a.items[name] = rec
}

// Delete removes the record stored under name, if any.
func (a *Accounts) Delete(name string) {
	if _, exists := a.items[name]; !exists {
		return
	}
	delete(a.items, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Names returns the account names in insertion order.
func (a *Accounts) Names() []string {
	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// Len returns the number of stored accounts.
func (a *Accounts) Len() int {
	return len(a.items)
}

// MarshalJSON emits the accounts as a JSON object in insertion order.
func (a Accounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range a.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(a.items[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, recording keys in the order they appear.
func (a *Accounts) UnmarshalJSON(data []byte) error {
	a.order = nil
	a.items = make(map[string]AccountRecord)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("accounts: expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("accounts: expected string key, got %v", tok)
		}
		var rec AccountRecord
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		a.Set(name, rec)
	}

	// consume closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
