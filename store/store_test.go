package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestBoltStoreRoundTrip(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer st.Close()

	var out []payload
	found, err := st.Get("cart", &out)
	require.NoError(t, err)
	require.False(t, found, "absent key reads as not found")

	in := []payload{{Name: "Shampoo", Count: 2}}
	require.NoError(t, st.Set("cart", in))

	found, err = st.Get("cart", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestBoltStoreOverwrite(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Set("cart", []payload{{Name: "a", Count: 1}}))
	require.NoError(t, st.Set("cart", []payload{}))

	var out []payload
	found, err := st.Get("cart", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, out)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	st, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, st.Set("appointments", []payload{{Name: "Haircut", Count: 1}}))
	require.NoError(t, st.Close())

	st, err = OpenBolt(path)
	require.NoError(t, err)
	defer st.Close()

	var out []payload
	found, err := st.Get("appointments", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, out, 1)
}

func TestBoltStoreMalformedValue(t *testing.T) {
	st, err := OpenBolt(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer st.Close()

	err = st.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte("cart"), []byte("{not json"))
	})
	require.NoError(t, err)

	var out []payload
	_, err = st.Get("cart", &out)
	require.Error(t, err, "malformed stored value surfaces as an error")
}

func TestMemoryStore(t *testing.T) {
	st := NewMemory()

	var out payload
	found, err := st.Get("missing", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, st.Set("k", payload{Name: "x", Count: 3}))
	found, err = st.Get("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, payload{Name: "x", Count: 3}, out)

	st.data["bad"] = []byte("]")
	_, err = st.Get("bad", &out)
	require.Error(t, err)
}
