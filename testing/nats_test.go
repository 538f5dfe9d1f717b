package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartEmbeddedNATS(t *testing.T) {
	ns, nc := StartEmbeddedNATS(t)

	require.True(t, nc.IsConnected())
	require.True(t, ns.ReadyForConnections(time.Second))
	require.True(t, ns.JetStreamEnabled())
}

// TestStartEmbeddedNATS_Isolated verifies that parallel servers do not share state.
func TestStartEmbeddedNATS_Isolated(t *testing.T) {
	t.Parallel()

	for range 2 {
		t.Run("server", func(t *testing.T) {
			t.Parallel()

			_, nc := StartEmbeddedNATS(t)
			kv := CreateJetStreamKV(t, nc, "xcbalance-report")

			_, err := kv.Create(t.Context(), "summary.rank-0", []byte(`{"rank":0}`))
			require.NoError(t, err, "key must not exist on a fresh server")
		})
	}
}

func TestCreateJetStreamKV(t *testing.T) {
	_, nc := StartEmbeddedNATS(t)

	kv := CreateJetStreamKV(t, nc, "xcbalance-report")
	require.Equal(t, "xcbalance-report", kv.Bucket())

	_, err := kv.Put(t.Context(), "summary.rank-1", []byte(`{"rank":1}`))
	require.NoError(t, err)

	entry, err := kv.Get(t.Context(), "summary.rank-1")
	require.NoError(t, err)
	require.JSONEq(t, `{"rank":1}`, string(entry.Value()))
}
